package mailer

import (
	"fmt"
	"net/smtp"
	"os"

	"go.uber.org/zap"

	"empregoja-backend/telemetry"
)

// Mailer sends notification emails over SMTP. Delivery is best-effort: a
// failure is logged as a warning and never reaches the caller's response.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	sender   string
}

func New() *Mailer {
	sender := os.Getenv("SMTP_SENDER")
	if sender == "" {
		sender = "suporte@empregoja.com"
	}
	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		sender:   sender,
	}
}

// AnalysisReady tells the user their résumé analysis is available in the app.
func (m *Mailer) AnalysisReady(to string) {
	body := "<h2>Tua análise está pronta! Acede ao app para ver os resultados.</h2>"
	if err := m.send(to, "✅ Análise concluída - Emprego Já", body); err != nil {
		telemetry.Logger.Warn("falha no envio de email", zap.String("to", to), zap.Error(err))
	}
}

func (m *Mailer) send(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("SMTP_HOST não configurado")
	}

	var auth smtp.Auth
	if m.username != "" && m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	return smtp.SendMail(m.host+":"+m.port, auth, m.sender, []string{to}, msg)
}
