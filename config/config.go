package config

import (
	"os"
	"sync"
)

// Config holds the settlement parameters the admin can adjust at runtime:
// the default IBAN for withdrawals, the exchange-rate table against AKZ and
// the destination directory per payment method.
type Config struct {
	IbanPadrao string             `json:"iban_padrao"`
	Taxas      map[string]float64 `json:"taxas"`
	Contas     map[string]string  `json:"contas"`
}

// Update is a partial replacement: nil / absent fields keep their current
// value, map entries are merged key by key.
type Update struct {
	Iban   *string            `json:"iban"`
	Taxas  map[string]float64 `json:"taxas"`
	Contas map[string]string  `json:"contas"`
}

// Default returns the startup configuration. IBAN_PADRAO overrides the
// built-in settlement account.
func Default() Config {
	iban := os.Getenv("IBAN_PADRAO")
	if iban == "" {
		iban = "AO06012345678901234567890"
	}
	return Config{
		IbanPadrao: iban,
		Taxas: map[string]float64{
			"AKZ": 1.0,
			"BRL": 0.011,
			"EUR": 0.0018,
		},
		Contas: map[string]string{
			"EMIS":       "https://emis.ao/pay/empregoja",
			"MULTICAIXA": "99999",
		},
	}
}

// Store is the process-wide configuration singleton. Reads see a consistent
// snapshot; updates swap a fresh copy in under the lock.
type Store struct {
	mu  sync.RWMutex
	cur Config
}

func NewStore(initial Config) *Store {
	return &Store{cur: clone(initial)}
}

func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.cur)
}

// Apply merges the update into a copy of the current configuration and swaps
// it in atomically. The resulting full configuration is returned.
func (s *Store) Apply(u Update) Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := clone(s.cur)
	if u.Iban != nil && *u.Iban != "" {
		next.IbanPadrao = *u.Iban
	}
	for moeda, taxa := range u.Taxas {
		next.Taxas[moeda] = taxa
	}
	for metodo, conta := range u.Contas {
		next.Contas[metodo] = conta
	}
	s.cur = next
	return clone(next)
}

// Taxa reports the exchange rate for a currency. The rate table doubles as
// the set of accepted currencies.
func (s *Store) Taxa(moeda string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	taxa, ok := s.cur.Taxas[moeda]
	return taxa, ok
}

// Conta returns the destination identifier for a payment method tag.
func (s *Store) Conta(metodo string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conta, ok := s.cur.Contas[metodo]
	return conta, ok
}

func clone(c Config) Config {
	out := Config{
		IbanPadrao: c.IbanPadrao,
		Taxas:      make(map[string]float64, len(c.Taxas)),
		Contas:     make(map[string]string, len(c.Contas)),
	}
	for k, v := range c.Taxas {
		out.Taxas[k] = v
	}
	for k, v := range c.Contas {
		out.Contas[k] = v
	}
	return out
}
