package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmExactlyOnce(t *testing.T) {
	p := Payment{ID: "EMP00000001", Status: StatusPendente, CreatedAt: time.Now()}

	primeiro := time.Now()
	require.NoError(t, p.Confirm(primeiro))
	assert.Equal(t, StatusConfirmado, p.Status)
	require.NotNil(t, p.ConfirmedAt)
	assert.False(t, p.ConfirmedAt.Before(p.CreatedAt))

	err := p.Confirm(time.Now().Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, primeiro, *p.ConfirmedAt, "timestamp da confirmação não pode ser reescrito")
}

func TestAttachProofWhilePending(t *testing.T) {
	p := Payment{ID: "EMP00000002", Status: StatusPendente}

	require.NoError(t, p.AttachProof("recibo.jpg", []byte{0xFF, 0xD8}, time.Now()))
	assert.True(t, p.HasProof())
	assert.Equal(t, StatusPendente, p.Status, "anexar comprovativo não confirma o pagamento")

	// Latest upload wins while pending.
	require.NoError(t, p.AttachProof("recibo2.jpg", []byte{0x01}, time.Now()))
	assert.Equal(t, "recibo2.jpg", p.ProofFilename)
}

func TestAttachProofLockedAfterConfirmation(t *testing.T) {
	p := Payment{ID: "EMP00000003", Status: StatusPendente}
	require.NoError(t, p.Confirm(time.Now()))

	err := p.AttachProof("tarde.jpg", []byte{0x02}, time.Now())
	assert.ErrorIs(t, err, ErrProofLocked)
	assert.False(t, p.HasProof())
}

func TestNormalizeMetodo(t *testing.T) {
	tests := []struct {
		entrada string
		querido string
		ok      bool
	}{
		{"EMIS", MetodoEMIS, true},
		{"emis", MetodoEMIS, true},
		{"Multicaixa Express", MetodoMulticaixa, true},
		{"MULTICAIXA", MetodoMulticaixa, true},
		{" multicaixa express ", MetodoMulticaixa, true},
		{"Paypal", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		metodo, ok := NormalizeMetodo(tc.entrada)
		assert.Equal(t, tc.ok, ok, tc.entrada)
		assert.Equal(t, tc.querido, metodo, tc.entrada)
	}
}
