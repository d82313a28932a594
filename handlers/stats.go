package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Estatisticas summarizes confirmed sales for the current day and month.
func (h *Handler) Estatisticas(c *gin.Context) {
	todos, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		erro(c, http.StatusInternalServerError, "Falha ao consultar o livro de pagamentos")
		return
	}

	now := time.Now()
	inicioDia := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		vendasHoje, vendasMes, confirmados int
		valorHoje, valorMes, valorTotal    = decimal.Zero, decimal.Zero, decimal.Zero
	)
	for _, p := range todos {
		if p.ConfirmedAt == nil {
			continue
		}
		confirmados++
		valorTotal = valorTotal.Add(p.Valor)
		if !p.ConfirmedAt.Before(inicioMes) {
			vendasMes++
			valorMes = valorMes.Add(p.Valor)
		}
		if !p.ConfirmedAt.Before(inicioDia) {
			vendasHoje++
			valorHoje = valorHoje.Add(p.Valor)
		}
	}

	media := decimal.Zero
	if confirmados > 0 {
		media = valorTotal.Div(decimal.NewFromInt(int64(confirmados))).Round(0)
	}

	c.JSON(http.StatusOK, gin.H{
		"sucesso":         true,
		"vendas_hoje":     vendasHoje,
		"valor_hoje":      valorHoje,
		"vendas_mes":      vendasMes,
		"valor_mes":       valorMes,
		"media_por_venda": media,
	})
}
