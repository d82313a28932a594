package analyzer

import (
	"context"

	"empregoja-backend/models"
)

// Analyzer turns a photographed résumé into structured career content.
// Implementations absorb their own failures: a broken upstream yields
// models.FallbackAnalysis, never an error.
type Analyzer interface {
	Analyze(ctx context.Context, fotoJPEG []byte, pais, estilo string) models.Analysis
}
