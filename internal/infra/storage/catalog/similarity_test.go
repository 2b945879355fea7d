package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "whitening", "whitening", 1.0},
		{"substring", "whitening", "teeth whitening", 0.75},
		{"no overlap", "xyz", "tooth filling", 0.0},
		{"empty left", "", "whitening", 0.0},
		{"empty right", "whitening", "", 0.0},
		{"both empty", "", "", 0.0},
		{"single common letter", "a", "ba", 2.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarityRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityRatio_Symmetric(t *testing.T) {
	a, b := "whitening", "teeth whitening"
	assert.Equal(t, similarityRatio(a, b), similarityRatio(b, a))
}
