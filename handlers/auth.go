package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"empregoja-backend/utils"
)

// AdminLogin verifies the admin password and issues a short-lived token.
// There are no user accounts; the administrator is the only principal.
func (h *Handler) AdminLogin(c *gin.Context) {
	var input struct {
		Senha string `json:"senha" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		erro(c, http.StatusBadRequest, "Senha é obrigatória")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.AdminHash, []byte(input.Senha)); err != nil {
		erro(c, http.StatusUnauthorized, "Senha incorreta")
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		erro(c, http.StatusInternalServerError, "Falha ao gerar o token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sucesso":   true,
		"token":     token,
		"expira_em": int(utils.AdminTokenTTL.Seconds()),
	})
}

// AdminHashFromEnv resolves the admin credential at startup. Production sets
// ADMIN_PASSWORD_HASH (bcrypt); for development a plain ADMIN_PASSWORD is
// hashed in memory, defaulting to admin123.
func AdminHashFromEnv() ([]byte, error) {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return []byte(hash), nil
	}
	senha := os.Getenv("ADMIN_PASSWORD")
	if senha == "" {
		senha = "admin123"
	}
	return bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
}
