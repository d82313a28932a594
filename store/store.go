package store

import (
	"context"
	"errors"

	"empregoja-backend/models"
)

var ErrNotFound = errors.New("pagamento não encontrado")

// Ledger is the payment store boundary. Update applies fn to the stored
// record as a single read-modify-write step, so state transitions on the same
// record never interleave. If fn returns an error the record is left
// untouched and the error is passed through.
type Ledger interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id string) (models.Payment, error)
	Update(ctx context.Context, id string, fn func(*models.Payment) error) (models.Payment, error)
	// List returns every record in insertion order.
	List(ctx context.Context) ([]models.Payment, error)
}
