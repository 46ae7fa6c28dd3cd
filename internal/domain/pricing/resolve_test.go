package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/pricing"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// Cadena de prioridad completa: manual=5, especial=3, original=10 con 10% de
// descuento. El manual gana y el descuento se aplica sobre él: 5 * 0.9 = 4.5.
func TestResolve_CadenaDePrioridad(t *testing.T) {
	line := &entity.CartLine{
		OriginalPrice:  d("10"),
		SpecialPrice:   dp("3"),
		IsSpecialPrice: true,
		ManualPrice:    dp("5"),
		Discount:       &entity.Discount{Type: entity.DiscountPercent, Value: d("10")},
	}
	assert.True(t, pricing.Resolve(line).Equal(d("4.5")))

	// Sin manual, gana el especial (la línea sigue en modo combo).
	line.ManualPrice = nil
	assert.True(t, pricing.Resolve(line).Equal(d("2.7")))

	// Con el modo combo apagado el especial se ignora aunque exista.
	line.IsSpecialPrice = false
	assert.True(t, pricing.Resolve(line).Equal(d("9")))

	// Sin descuento queda el original a secas.
	line.Discount = nil
	assert.True(t, pricing.Resolve(line).Equal(d("10")))
}

// El precio especial solo aplica si además existe: modo combo sin precio
// especial cae al original.
func TestResolve_ModoComboSinPrecioEspecial(t *testing.T) {
	line := &entity.CartLine{
		OriginalPrice:  d("10"),
		IsSpecialPrice: true,
	}
	assert.True(t, pricing.Resolve(line).Equal(d("10")))
}

// Descuento por monto fijo se trunca en 0, nunca precio negativo.
func TestResolve_DescuentoMontoTruncaEnCero(t *testing.T) {
	line := &entity.CartLine{
		OriginalPrice: d("10"),
		Discount:      &entity.Discount{Type: entity.DiscountAmount, Value: d("15")},
	}
	assert.True(t, pricing.Resolve(line).IsZero())

	line.Discount.Value = d("4")
	assert.True(t, pricing.Resolve(line).Equal(d("6")))
}

func TestResolve_DescuentoPorcentajeCompleto(t *testing.T) {
	line := &entity.CartLine{
		OriginalPrice: d("10"),
		Discount:      &entity.Discount{Type: entity.DiscountPercent, Value: d("100")},
	}
	assert.True(t, pricing.Resolve(line).IsZero())
}

// Precio por unidad de un componente de combo: precio del paquete entre la
// cantidad, o el precio base del componente si el paquete no fija precio.
func TestBundleUnitPrice(t *testing.T) {
	comp := entity.BundleComponent{ProductID: "p1", Quantity: 2, UnitPrice: d("8")}
	assert.True(t, pricing.BundleUnitPrice(comp, d("6")).Equal(d("4")))

	// Paquete sin precio (0): cae al precio base del componente.
	comp.UnitPrice = decimal.Zero
	assert.True(t, pricing.BundleUnitPrice(comp, d("6")).Equal(d("6")))
}
