package entity

import "time"

// PriceRule fórmula aritmética almacenada que deriva un precio manual a partir
// del costo y el precio base de una línea. La fórmula usa los tokens
// cost, price, + - * / ( ) y literales decimales.
type PriceRule struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Formula       string    `json:"formula"`
	Categories    []string  `json:"categories"` // vacío = aplica a todas
	AllowBundles  bool      `json:"allow_bundles"`
	AllowDiscount bool      `json:"allow_discount"`
	CreatedAt     time.Time `json:"created_at"`
}

// AppliesTo decide si la regla es visible para una línea: filtro por categoría
// y, para líneas con precio de combo, el flag AllowBundles.
func (r *PriceRule) AppliesTo(category string, isSpecialPrice bool) bool {
	if isSpecialPrice && !r.AllowBundles {
		return false
	}
	if len(r.Categories) == 0 {
		return true
	}
	for _, c := range r.Categories {
		if c == category {
			return true
		}
	}
	return false
}
