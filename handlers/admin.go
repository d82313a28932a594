package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"empregoja-backend/config"
	"empregoja-backend/models"
	"empregoja-backend/store"
	"empregoja-backend/telemetry"
)

const listarLimite = 20

type pagamentosResponse struct {
	Sucesso bool `json:"sucesso"`
	models.Summary
	Pagamentos []models.Payment `json:"pagamentos"`
	Config     config.Config    `json:"config"`
}

// ListarPagamentos shows the admin panel data: aggregates over the full
// ledger, the most recent entries (newest first) and the live configuration.
func (h *Handler) ListarPagamentos(c *gin.Context) {
	todos, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		erro(c, http.StatusInternalServerError, "Falha ao consultar o livro de pagamentos")
		return
	}

	cfg := h.Config.Get()

	recentes := make([]models.Payment, 0, listarLimite)
	for i := len(todos) - 1; i >= 0 && len(recentes) < listarLimite; i-- {
		recentes = append(recentes, todos[i])
	}

	c.JSON(http.StatusOK, pagamentosResponse{
		Sucesso:    true,
		Summary:    models.Summarize(todos, cfg.Taxas),
		Pagamentos: recentes,
		Config:     cfg,
	})
}

// AprovarPagamento confirms a pending payment after the admin reviewed the
// proof. Confirming twice is refused so the timestamp is written only once.
func (h *Handler) AprovarPagamento(c *gin.Context) {
	var input struct {
		Referencia string `json:"referencia" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		erro(c, http.StatusBadRequest, "Referência do pagamento é obrigatória")
		return
	}

	pagamento, err := h.Ledger.Update(c.Request.Context(), input.Referencia, func(p *models.Payment) error {
		return p.Confirm(time.Now())
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		erro(c, http.StatusNotFound, "Pagamento não encontrado")
		return
	case errors.Is(err, models.ErrInvalidTransition):
		erro(c, http.StatusConflict, err.Error())
		return
	case err != nil:
		erro(c, http.StatusInternalServerError, "Falha ao confirmar o pagamento")
		return
	}
	telemetry.PaymentsConfirmed.Inc()

	c.JSON(http.StatusOK, gin.H{
		"sucesso":   true,
		"mensagem":  "Pagamento confirmado! Conteúdo liberado.",
		"pagamento": pagamento,
	})
}

// AtualizarConfig merges the supplied fields into the live configuration and
// echoes the full result.
func (h *Handler) AtualizarConfig(c *gin.Context) {
	var input config.Update
	if err := c.ShouldBindJSON(&input); err != nil {
		erro(c, http.StatusBadRequest, "Formato de configuração inválido")
		return
	}

	cfg := h.Config.Apply(input)
	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Configurações atualizadas",
		"config":   cfg,
	})
}

// Levantar simulates a withdrawal request towards the settlement IBAN. There
// is no banking integration; the protocol id is the operator's receipt.
func (h *Handler) Levantar(c *gin.Context) {
	var input struct {
		Valor decimal.Decimal `json:"valor" binding:"required"`
		Iban  string          `json:"iban"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		erro(c, http.StatusBadRequest, "Valor do levantamento é obrigatório")
		return
	}
	if !input.Valor.IsPositive() {
		erro(c, http.StatusBadRequest, "Valor tem de ser maior que zero")
		return
	}

	iban := input.Iban
	if iban == "" {
		iban = h.Config.Get().IbanPadrao
	}

	now := time.Now()
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	c.JSON(http.StatusOK, gin.H{
		"sucesso":   true,
		"mensagem":  fmt.Sprintf("Transferência de %s KZ solicitada para o IBAN %s", input.Valor.String(), iban),
		"data":      now.UTC().Format(time.RFC3339),
		"protocolo": "LEV" + millis[len(millis)-8:],
	})
}
