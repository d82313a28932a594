package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"empregoja-backend/analyzer"
	"empregoja-backend/config"
	"empregoja-backend/middleware"
	"empregoja-backend/store"
)

// Notifier is the outbound email side channel. Implementations are
// best-effort and must never fail the request that triggered them.
type Notifier interface {
	AnalysisReady(to string)
}

type Handler struct {
	Ledger    store.Ledger
	Config    *config.Store
	AI        analyzer.Analyzer
	Mail      Notifier
	AdminHash []byte
}

func New(ledger store.Ledger, cfg *config.Store, ai analyzer.Analyzer, mail Notifier, adminHash []byte) *Handler {
	return &Handler{
		Ledger:    ledger,
		Config:    cfg,
		AI:        ai,
		Mail:      mail,
		AdminHash: adminHash,
	}
}

// Register mounts every route on the engine. /admin/* (except login) sits
// behind the bearer-token middleware.
func Register(r *gin.Engine, h *Handler) {
	r.GET("/teste", h.Teste)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/analisar", h.Analisar)
	r.POST("/analisar-web", h.AnalisarWeb)

	r.POST("/iniciar-pagamento", h.IniciarPagamento)
	r.POST("/pagamento/comprovativo", h.EnviarComprovativo)

	r.POST("/admin/login", h.AdminLogin)

	admin := r.Group("/admin", middleware.AdminAuth())
	{
		admin.GET("/pagamentos", h.ListarPagamentos)
		admin.POST("/aprovar-pagamento", h.AprovarPagamento)
		admin.POST("/config", h.AtualizarConfig)
		admin.POST("/levantar", h.Levantar)
		admin.GET("/estatisticas", h.Estatisticas)
		admin.GET("/exportar", h.ExportarPagamentos)
	}
}

func (h *Handler) Teste(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Servidor Emprego Já operacional",
		"data":     time.Now().UTC().Format(time.RFC3339),
	})
}

func erro(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"sucesso": false, "erro": msg})
}
