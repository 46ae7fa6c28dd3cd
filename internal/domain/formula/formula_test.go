package formula_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/formula"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Evaluación básica con ambas variables: cost=10, price=25.
func TestEval_VariablesYAritmetica(t *testing.T) {
	cases := []struct {
		formula string
		want    string
	}{
		{"cost", "10"},
		{"price", "25"},
		{"cost + 5", "15"},
		{"price - cost", "15"},
		{"cost * 1.5", "15"},
		{"price / 2", "12.5"},
		{"cost + price * 2", "60"},       // precedencia: * antes que +
		{"(cost + price) * 2", "70"},     // paréntesis fuerzan la suma
		{"cost * 1.19 + 500 * 0", "11.9"},
		{"10 - 2 - 3", "5"}, // asociatividad izquierda
	}
	for _, c := range cases {
		got, err := formula.Eval(c.formula, d("10"), d("25"))
		require.NoError(t, err, "fórmula %q debe evaluar", c.formula)
		assert.True(t, got.Equal(d(c.want)),
			"fórmula %q: esperado %s, obtenido %s", c.formula, c.want, got)
	}
}

// Los identificadores son insensibles a mayúsculas.
func TestEval_VariablesInsensiblesAMayusculas(t *testing.T) {
	for _, f := range []string{"COST + Price", "Cost + PRICE", "cOsT + pRiCe"} {
		got, err := formula.Eval(f, d("10"), d("25"))
		require.NoError(t, err, "fórmula %q debe evaluar", f)
		assert.True(t, got.Equal(d("35")))
	}
}

// Cualquier token fuera de la gramática rechaza la fórmula completa.
func TestEval_TokensForaneosRechazados(t *testing.T) {
	invalid := []string{
		"cost; drop table products",
		"precio * 2",     // identificador desconocido
		"cost + margin",  // identificador desconocido
		"cost ** 2",      // operador inválido (factor vacío)
		"cost + ",        // incompleta
		"(cost + price",  // paréntesis sin cerrar
		"cost price",     // tokens sobrantes
		"",               // vacía
		"   ",            // solo espacios
		"1.2.3",          // literal malformado
		"cost @ 2",       // carácter fuera de la gramática
	}
	for _, f := range invalid {
		_, err := formula.Eval(f, d("10"), d("25"))
		assert.ErrorIs(t, err, domain.ErrInvalidFormula, "fórmula %q debe rechazarse", f)
	}
}

// Resultado negativo se rechaza: la línea del caller queda intacta.
func TestEval_ResultadoNegativoRechazado(t *testing.T) {
	_, err := formula.Eval("cost - price", d("10"), d("25"))
	assert.ErrorIs(t, err, domain.ErrInvalidFormula)

	// Cero sí es válido.
	got, err := formula.Eval("cost - cost", d("10"), d("25"))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestEval_DivisionPorCero(t *testing.T) {
	_, err := formula.Eval("cost / 0", d("10"), d("25"))
	assert.ErrorIs(t, err, domain.ErrInvalidFormula)

	// También cuando el divisor es una subexpresión que da cero.
	_, err = formula.Eval("price / (cost - cost)", d("10"), d("25"))
	assert.ErrorIs(t, err, domain.ErrInvalidFormula)
}

// Validate compila sin evaluar: lo usa el CRUD de reglas al guardar.
func TestValidate(t *testing.T) {
	assert.NoError(t, formula.Validate("cost * 1.3"))
	assert.NoError(t, formula.Validate("(price - cost) / 2 + cost"))
	assert.ErrorIs(t, formula.Validate("cost ; 2"), domain.ErrInvalidFormula)
	assert.ErrorIs(t, formula.Validate(""), domain.ErrInvalidFormula)
}
