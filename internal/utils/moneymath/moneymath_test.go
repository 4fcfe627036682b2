package moneymath_test

import (
	"testing"

	"github.com/quillbooks/pocket_ledger/internal/utils/moneymath"
	"github.com/stretchr/testify/assert"
)

func TestRoundToPrecision(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		precision int
		want      float64
	}{
		{name: "exact value untouched", amount: 12.34, precision: 2, want: 12.34},
		{name: "half boundary rounds up with bias", amount: 1.005, precision: 2, want: 1.01},
		{name: "float representation noise collapses", amount: 0.1 + 0.2, precision: 1, want: 0.3},
		{name: "zero precision", amount: 2.5, precision: 0, want: 3},
		{name: "negative half boundary biased toward zero", amount: -1.005, precision: 2, want: -1.0},
		{name: "three decimal currency", amount: 5.12345, precision: 3, want: 5.123},
		{name: "zero amount", amount: 0, precision: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moneymath.RoundToPrecision(tt.amount, tt.precision))
		})
	}
}

func TestEpsilon(t *testing.T) {
	assert.Equal(t, 0.001, moneymath.Epsilon(2))
	assert.Equal(t, 0.1, moneymath.Epsilon(0))
	assert.Equal(t, 0.0001, moneymath.Epsilon(3))
}

func TestAmountsAreEqual(t *testing.T) {
	tests := []struct {
		name      string
		a, b      float64
		precision int
		want      bool
	}{
		{name: "binary noise is equal", a: 0.1 + 0.2, b: 0.3, precision: 2, want: true},
		{name: "difference above precision", a: 1.0, b: 1.006, precision: 2, want: false},
		{name: "difference below precision", a: 1.0001, b: 1.0002, precision: 2, want: true},
		{name: "identical values", a: 42.42, b: 42.42, precision: 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moneymath.AmountsAreEqual(tt.a, tt.b, tt.precision))
		})
	}
}

func TestSafeAddPreventsDrift(t *testing.T) {
	// Folding 0.1 ten times accumulates representation error when summed
	// naively; rounding after every step must land exactly on 1.0.
	naive := 0.0
	folded := 0.0
	for i := 0; i < 10; i++ {
		naive += 0.1
		folded = moneymath.SafeAdd(folded, 0.1, 2)
	}

	assert.NotEqual(t, 1.0, naive)
	assert.Equal(t, 1.0, folded)
}

func TestSafeSubtract(t *testing.T) {
	assert.Equal(t, 0.1, moneymath.SafeSubtract(0.3, 0.2, 2))
	assert.Equal(t, -5.25, moneymath.SafeSubtract(0.0, 5.25, 2))
}
