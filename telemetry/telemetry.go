package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Logger is the process-wide structured logger. It defaults to a no-op so
// packages can log from tests without initialization.
var Logger = zap.NewNop()

func Init() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}

var (
	PaymentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "empregoja_payments_created_total",
		Help: "Payment records created.",
	})
	PaymentsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "empregoja_payments_confirmed_total",
		Help: "Payment records confirmed by the admin.",
	})
	Analyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "empregoja_analyses_total",
		Help: "Résumé analyses by outcome.",
	}, []string{"outcome"})
)
