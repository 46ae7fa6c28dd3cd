// Package pricing resuelve el precio efectivo de una línea del carrito.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Resolve calcula el precio efectivo de la línea con la cadena de prioridad
// fija: precio manual > precio especial (si la línea está en modo combo) >
// precio original; después aplica el descuento sobre esa base y trunca en 0.
// Es una función pura: se invoca explícitamente tras cada mutación de línea.
func Resolve(line *entity.CartLine) decimal.Decimal {
	base := line.OriginalPrice
	switch {
	case line.ManualPrice != nil:
		base = *line.ManualPrice
	case line.IsSpecialPrice && line.SpecialPrice != nil:
		base = *line.SpecialPrice
	}

	price := applyDiscount(base, line.Discount)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

func applyDiscount(base decimal.Decimal, d *entity.Discount) decimal.Decimal {
	if d == nil {
		return base
	}
	switch d.Type {
	case entity.DiscountPercent:
		return base.Mul(hundred.Sub(d.Value)).Div(hundred)
	case entity.DiscountAmount:
		out := base.Sub(d.Value)
		if out.IsNegative() {
			return decimal.Zero
		}
		return out
	}
	return base
}

// BundleUnitPrice precio especial por unidad de un componente de combo:
// precio del paquete dividido por la cantidad del componente cuando el paquete
// fija un precio positivo; si no, el precio base del propio componente.
func BundleUnitPrice(comp entity.BundleComponent, componentBase decimal.Decimal) decimal.Decimal {
	if comp.UnitPrice.IsPositive() && comp.Quantity > 0 {
		return comp.UnitPrice.Div(decimal.NewFromInt(comp.Quantity))
	}
	return componentBase
}
