package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"empregoja-backend/models"
	"empregoja-backend/store"
	"empregoja-backend/telemetry"
)

const maxProofSize = 10 * 1024 * 1024

// IniciarPagamento creates a pending ledger entry and returns the settlement
// instructions for the chosen payment method.
func (h *Handler) IniciarPagamento(c *gin.Context) {
	var input struct {
		Email  string          `json:"email"`
		Plano  string          `json:"plano" binding:"required"`
		Valor  decimal.Decimal `json:"valor" binding:"required"`
		Moeda  string          `json:"moeda" binding:"required"`
		Metodo string          `json:"metodo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		erro(c, http.StatusBadRequest, "Dados do pagamento incompletos")
		return
	}

	if !input.Valor.IsPositive() {
		erro(c, http.StatusBadRequest, "Valor tem de ser maior que zero")
		return
	}

	moeda := strings.ToUpper(strings.TrimSpace(input.Moeda))
	if _, ok := h.Config.Taxa(moeda); !ok {
		erro(c, http.StatusBadRequest, "Moeda não suportada: "+input.Moeda)
		return
	}

	metodo, ok := models.NormalizeMetodo(input.Metodo)
	if !ok {
		erro(c, http.StatusBadRequest, "Método não suportado")
		return
	}

	now := time.Now()
	pagamento := models.Payment{
		ID:        newReference(now),
		Email:     input.Email,
		Plano:     input.Plano,
		Valor:     input.Valor,
		Moeda:     moeda,
		Metodo:    metodo,
		Status:    models.StatusPendente,
		CreatedAt: now,
	}

	if err := h.Ledger.Create(c.Request.Context(), &pagamento); err != nil {
		erro(c, http.StatusInternalServerError, "Falha ao registar o pagamento")
		return
	}
	telemetry.PaymentsCreated.Inc()

	switch metodo {
	case models.MetodoEMIS:
		c.JSON(http.StatusOK, gin.H{
			"sucesso":     true,
			"referencia":  pagamento.ID,
			"codigo_emis": pagamento.ID,
			"instrucoes":  "Pague através do app EMIS usando a referência " + pagamento.ID,
		})
	case models.MetodoMulticaixa:
		entidade, _ := h.Config.Conta("MULTICAIXA")
		c.JSON(http.StatusOK, gin.H{
			"sucesso":    true,
			"referencia": pagamento.ID,
			"entidade":   entidade,
			"valor":      pagamento.Valor,
			"instrucoes": "Pague numa caixa Multicaixa ou app com entidade " + entidade,
		})
	}
}

// EnviarComprovativo attaches the user's proof of payment to a pending
// record. Approval stays a separate administrative step.
func (h *Handler) EnviarComprovativo(c *gin.Context) {
	referencia := c.PostForm("referencia")
	if referencia == "" {
		erro(c, http.StatusBadRequest, "Referência do pagamento é obrigatória")
		return
	}

	file, header, err := c.Request.FormFile("comprovativo")
	if err != nil {
		erro(c, http.StatusBadRequest, "Comprovativo é obrigatório")
		return
	}
	defer file.Close()

	if header.Size > maxProofSize {
		erro(c, http.StatusBadRequest, "Comprovativo demasiado grande (máximo 10MB)")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		erro(c, http.StatusBadRequest, "Falha ao ler o comprovativo")
		return
	}

	filename := filepath.Base(header.Filename)
	pagamento, err := h.Ledger.Update(c.Request.Context(), referencia, func(p *models.Payment) error {
		return p.AttachProof(filename, data, time.Now())
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		erro(c, http.StatusNotFound, "Pagamento não encontrado")
		return
	case errors.Is(err, models.ErrProofLocked):
		erro(c, http.StatusConflict, err.Error())
		return
	case err != nil:
		erro(c, http.StatusInternalServerError, "Falha ao guardar o comprovativo")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sucesso":   true,
		"mensagem":  "Comprovativo recebido. Aguarda aprovação do administrador.",
		"pagamento": pagamento,
	})
}

// newReference builds ids like EMP84729301A3F2B1: a time-based reference the
// user can quote over the phone, plus a random suffix so concurrent creations
// never collide.
func newReference(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("EMP%s%s", millis[len(millis)-8:], suffix)
}
