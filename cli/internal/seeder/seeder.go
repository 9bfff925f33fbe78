// Package seeder generates synthetic transaction records for development
// and load testing.
package seeder

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

type Generator struct {
	faker *gofakeit.Faker
}

func New() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

// NewSeeded returns a deterministic generator for reproducible runs.
func NewSeeded(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Transaction produces one synthetic transaction record with the required
// fields plus realistic merchant metadata.
func (g *Generator) Transaction() map[string]interface{} {
	return map[string]interface{}{
		"id":        uuid.NewString(),
		"amount":    g.faker.Price(1, 5000),
		"timestamp": g.faker.DateRange(time.Now().Add(-24*time.Hour), time.Now()).UTC().Format(time.RFC3339),
		"merchant":  g.faker.Company(),
		"currency":  g.faker.CurrencyShort(),
		"country":   g.faker.CountryAbr(),
		"cardLast4": g.faker.DigitN(4),
	}
}
