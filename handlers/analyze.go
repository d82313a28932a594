package handlers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"empregoja-backend/models"
)

const maxFotoSize = 10 * 1024 * 1024

// Analisar handles the mobile flow: multipart upload of the résumé photo.
func (h *Handler) Analisar(c *gin.Context) {
	file, header, err := c.Request.FormFile("foto")
	if err != nil {
		erro(c, http.StatusBadRequest, "Foto do currículo é obrigatória")
		return
	}
	defer file.Close()

	if header.Size > maxFotoSize {
		erro(c, http.StatusBadRequest, "Foto demasiado grande (máximo 10MB)")
		return
	}

	foto, err := io.ReadAll(file)
	if err != nil {
		erro(c, http.StatusBadRequest, "Falha ao ler a foto enviada")
		return
	}

	email := c.PostForm("email")
	pais := c.DefaultPostForm("pais", "Angola")
	estilo := c.DefaultPostForm("estilo", "moderno")

	h.respondAnalysis(c, foto, email, pais, estilo)
}

// AnalisarWeb handles the web flow: the photo arrives base64-encoded in JSON.
func (h *Handler) AnalisarWeb(c *gin.Context) {
	var input struct {
		Foto   string `json:"foto" binding:"required"`
		Email  string `json:"email"`
		Pais   string `json:"pais"`
		Estilo string `json:"estilo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		erro(c, http.StatusBadRequest, "Foto do currículo é obrigatória")
		return
	}

	raw := input.Foto
	// Accept data URLs as sent by browser canvas exports.
	if strings.HasPrefix(raw, "data:") {
		if i := strings.Index(raw, ","); i >= 0 {
			raw = raw[i+1:]
		}
	}
	foto, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		erro(c, http.StatusBadRequest, "Foto inválida: base64 malformado")
		return
	}
	if len(foto) > maxFotoSize {
		erro(c, http.StatusBadRequest, "Foto demasiado grande (máximo 10MB)")
		return
	}

	pais := input.Pais
	if pais == "" {
		pais = "Angola"
	}
	estilo := input.Estilo
	if estilo == "" {
		estilo = "moderno"
	}

	h.respondAnalysis(c, foto, input.Email, pais, estilo)
}

type analysisResponse struct {
	Sucesso bool `json:"sucesso"`
	models.Analysis
}

func (h *Handler) respondAnalysis(c *gin.Context, foto []byte, email, pais, estilo string) {
	resultado := h.AI.Analyze(c.Request.Context(), foto, pais, estilo)

	if email != "" {
		h.Mail.AnalysisReady(email)
	}

	c.JSON(http.StatusOK, analysisResponse{Sucesso: true, Analysis: resultado})
}
