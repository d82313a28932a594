package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusPendente   PaymentStatus = "pendente"
	StatusConfirmado PaymentStatus = "confirmado"
)

// Métodos de pagamento suportados.
const (
	MetodoEMIS       = "EMIS"
	MetodoMulticaixa = "Multicaixa Express"
)

var (
	ErrInvalidTransition = errors.New("pagamento já confirmado")
	ErrProofLocked       = errors.New("comprovativo não pode ser alterado após confirmação")
)

type Payment struct {
	ID     string          `gorm:"primaryKey" json:"id"`
	Email  string          `json:"email,omitempty"`
	Plano  string          `json:"plano"`
	Valor  decimal.Decimal `gorm:"type:decimal(20,2)" json:"valor"`
	Moeda  string          `json:"moeda"`
	Metodo string          `json:"metodo"`
	Status PaymentStatus   `json:"status"`

	// Comprovativo enviado pelo utilizador (revisto pelo admin antes de aprovar)
	ProofFilename string     `json:"comprovativo,omitempty"`
	ProofData     []byte     `gorm:"type:blob" json:"-"`
	ProofSentAt   *time.Time `json:"comprovativo_em,omitempty"`

	CreatedAt   time.Time  `json:"data"`
	ConfirmedAt *time.Time `json:"data_confirmacao,omitempty"`
}

// Confirm moves the record to its terminal state. It succeeds exactly once:
// re-confirming an already confirmed record is an invalid transition and the
// confirmation timestamp is never overwritten.
func (p *Payment) Confirm(now time.Time) error {
	if p.Status != StatusPendente {
		return ErrInvalidTransition
	}
	p.Status = StatusConfirmado
	p.ConfirmedAt = &now
	return nil
}

// AttachProof stores the uploaded evidence. While the record is pending the
// latest upload wins; once confirmed the proof is locked.
func (p *Payment) AttachProof(filename string, data []byte, now time.Time) error {
	if p.Status == StatusConfirmado {
		return ErrProofLocked
	}
	p.ProofFilename = filename
	p.ProofData = data
	p.ProofSentAt = &now
	return nil
}

func (p *Payment) HasProof() bool {
	return p.ProofSentAt != nil
}

// NormalizeMetodo maps caller input onto the canonical method tags. The mobile
// app sends "Multicaixa Express" while the admin panel uses "MULTICAIXA".
func NormalizeMetodo(metodo string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(metodo)) {
	case "EMIS":
		return MetodoEMIS, true
	case "MULTICAIXA", "MULTICAIXA EXPRESS":
		return MetodoMulticaixa, true
	}
	return "", false
}
