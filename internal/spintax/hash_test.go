package spintax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		seed string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"example.com", 1944013059},
		{"austinroofing.com-title", 541897358},
		{"héllo", 103094734},
		{"😀", 1772899},
		{"zzzzzzzzzzzzzzzzzzzzzzzzzz", 670734784},
	}

	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.seed))
		})
	}
}

func TestHash_Stable(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, Hash("example.com"), Hash("example.com"))
	}
}

func TestNewSequence(t *testing.T) {
	t.Run("zero seed", func(t *testing.T) {
		next := NewSequence(0)
		assert.InDelta(t, 5.748588591814041e-06, next(), 1e-15)
		assert.InDelta(t, 0.6551540484651923, next(), 1e-15)
		assert.InDelta(t, 0.30481432331725955, next(), 1e-15)
	})

	t.Run("raw states", func(t *testing.T) {
		next := NewSequence(42)
		for _, want := range []float64{1250496027, 1116302264, 1000676753} {
			assert.Equal(t, want/lcgModulus, next())
		}
	})

	t.Run("largest hash", func(t *testing.T) {
		next := NewSequence(1 << 31)
		assert.Equal(t, float64(12345)/lcgModulus, next())
		assert.Equal(t, float64(1406932606)/lcgModulus, next())
	})
}

func TestNewSequence_SameSeedSameStream(t *testing.T) {
	a := NewSequence(Hash("example.com"))
	b := NewSequence(Hash("example.com"))
	for i := 0; i < 1000; i++ {
		va, vb := a(), b()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestNewSequence_Independent(t *testing.T) {
	a := NewSequence(7)
	a()
	a()
	b := NewSequence(7)
	assert.Equal(t, NewSequence(7)(), b())
}
