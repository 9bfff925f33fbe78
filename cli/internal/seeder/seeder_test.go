package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionHasRequiredFields(t *testing.T) {
	gen := New()

	record := gen.Transaction()

	id, ok := record["id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)

	amount, ok := record["amount"].(float64)
	require.True(t, ok)
	assert.Greater(t, amount, 0.0)

	ts, ok := record["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestTransactionIDsAreUnique(t *testing.T) {
	gen := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Transaction()["id"].(string)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewSeeded(42).Transaction()
	b := NewSeeded(42).Transaction()

	// IDs are random UUIDs, but faker-driven fields repeat for equal seeds.
	assert.Equal(t, a["amount"], b["amount"])
	assert.Equal(t, a["merchant"], b["merchant"])
	assert.Equal(t, a["currency"], b["currency"])
}
