package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"empregoja-backend/analyzer"
	"empregoja-backend/config"
	"empregoja-backend/handlers"
	"empregoja-backend/mailer"
	"empregoja-backend/store"
	"empregoja-backend/telemetry"
)

func main() {
	// .env is optional in containers; real env vars win either way.
	_ = godotenv.Load()

	if err := telemetry.Init(); err != nil {
		panic(err)
	}
	defer telemetry.Logger.Sync()

	// Amounts go over the wire as plain JSON numbers, like the apps expect.
	decimal.MarshalJSONWithoutQuotes = true

	ledger, err := openLedger()
	if err != nil {
		telemetry.Logger.Fatal("falha ao abrir o livro de pagamentos", zap.Error(err))
	}

	adminHash, err := handlers.AdminHashFromEnv()
	if err != nil {
		telemetry.Logger.Fatal("falha ao preparar a credencial do admin", zap.Error(err))
	}

	h := handlers.New(
		ledger,
		config.NewStore(config.Default()),
		analyzer.NewGemini(),
		mailer.New(),
		adminHash,
	)

	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	handlers.Register(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		telemetry.Logger.Info("servidor Emprego Já a arrancar", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("a encerrar o servidor")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("encerramento forçado", zap.Error(err))
	}
	telemetry.Logger.Info("servidor terminado")
}

// openLedger picks the ledger backing: in-memory by default, sqlite when
// LEDGER_DB points at a file path.
func openLedger() (store.Ledger, error) {
	if path := os.Getenv("LEDGER_DB"); path != "" {
		telemetry.Logger.Info("livro de pagamentos persistente", zap.String("path", path))
		return store.NewSQLite(path)
	}
	return store.NewMemory(), nil
}
