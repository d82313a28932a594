package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Summary is the read-side aggregate over the full ledger. Confirmed values
// are normalized into the base currency (AKZ) using the configured rates.
type Summary struct {
	TotalPagamentos  int             `json:"total_pagamentos"`
	TotalPendentes   int             `json:"total_pendentes"`
	TotalConfirmados int             `json:"total_confirmado"`
	TotalValor       decimal.Decimal `json:"total_valor"`
	PorPlano         map[string]int  `json:"total_por_plano"`
}

// Summarize scans the whole ledger. taxas maps currency code to its rate
// against one AKZ; a missing or non-positive rate counts the value verbatim.
func Summarize(pagamentos []Payment, taxas map[string]float64) Summary {
	s := Summary{
		TotalValor: decimal.Zero,
		PorPlano:   map[string]int{},
	}
	for _, p := range pagamentos {
		s.TotalPagamentos++
		switch p.Status {
		case StatusConfirmado:
			s.TotalConfirmados++
			s.TotalValor = s.TotalValor.Add(toBase(p.Valor, p.Moeda, taxas))
			s.PorPlano[strings.ToLower(p.Plano)]++
		default:
			s.TotalPendentes++
		}
	}
	return s
}

func toBase(valor decimal.Decimal, moeda string, taxas map[string]float64) decimal.Decimal {
	taxa, ok := taxas[strings.ToUpper(moeda)]
	if !ok || taxa <= 0 || taxa == 1.0 {
		return valor
	}
	return valor.Div(decimal.NewFromFloat(taxa)).Round(2)
}
