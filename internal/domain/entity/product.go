package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Product representa un artículo del catálogo (multi-tienda).
// GlobalStock es derivado: siempre igual a la suma del stock por tienda;
// lo recalcula el libro de stock al cierre de cada lote de movimientos.
type Product struct {
	ID          string
	Barcode     string // código de barras, único
	Name        string // único
	Category    string
	Brand       string
	Unit        string
	Cost        decimal.Decimal // costo promedio ponderado
	Price       decimal.Decimal // precio de venta base
	GlobalStock int64
	Components  []BundleComponent // vacío = producto simple; no vacío = combo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BundleComponent un componente de un producto combo.
// UnitPrice es el precio dentro del paquete para ese componente; si es <= 0
// el carrito cae al precio base del componente.
type BundleComponent struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// IsBundle indica si el producto es un combo (tiene componentes).
func (p *Product) IsBundle() bool {
	return len(p.Components) > 0
}

// MatchesQuery informa si el producto coincide con una búsqueda de mostrador:
// nombre sin distinguir tildes ni mayúsculas, o fragmento del código de
// barras. Consulta vacía coincide con todo.
func (p *Product) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(NormalizeName(p.Name), NormalizeName(q)) ||
		strings.Contains(p.Barcode, q)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName minúsculas y sin marcas diacríticas ("Café" -> "cafe").
func NormalizeName(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
