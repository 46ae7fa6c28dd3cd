package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-pos/internal/domain/costing"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestWeightedAverage_PonderaStockYEntrada(t *testing.T) {
	// 10 uds a 10 + 10 uds a 20 => 15.
	got := costing.WeightedAverage(10, d("10"), 10, d("20"))
	assert.True(t, got.Equal(d("15")), "got %s", got)

	// 30 uds a 5 + 10 uds a 9 => (150+90)/40 = 6.
	got = costing.WeightedAverage(30, d("5"), 10, d("9"))
	assert.True(t, got.Equal(d("6")), "got %s", got)
}

func TestWeightedAverage_SinStockPrevio(t *testing.T) {
	got := costing.WeightedAverage(0, d("10"), 5, d("20"))
	assert.True(t, got.Equal(d("20")), "sin stock previo manda el costo de entrada")
}

// Stock previo negativo (producto sobrevendido) pondera como 0: el término
// negativo inflaría o volvería negativo el promedio.
func TestWeightedAverage_StockNegativoNoPondera(t *testing.T) {
	got := costing.WeightedAverage(-8, d("100"), 10, d("20"))
	assert.True(t, got.Equal(d("20")), "got %s", got)

	// Incluso si la entrada no alcanza a cubrir el faltante.
	got = costing.WeightedAverage(-20, d("100"), 5, d("12"))
	assert.True(t, got.Equal(d("12")), "got %s", got)
}

func TestWeightedAverage_SumaCeroRetornaCero(t *testing.T) {
	got := costing.WeightedAverage(0, d("10"), 0, d("20"))
	assert.True(t, got.IsZero())
}
