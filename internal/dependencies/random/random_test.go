package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomIntnInRange(t *testing.T) {
	r := New()
	for range 200 {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 50 {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.String(12, "ABC"), b.String(12, "ABC"))
}

func TestStringUsesAlphabet(t *testing.T) {
	s := NewSeeded(7).String(32, "XO")
	assert.Len(t, s, 32)
	for _, ch := range s {
		assert.Contains(t, "XO", string(ch))
	}
	assert.Empty(t, New().String(0, "XO"))
	assert.Empty(t, New().String(5, ""))
}
