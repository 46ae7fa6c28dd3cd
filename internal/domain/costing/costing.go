package costing

import "github.com/shopspring/decimal"

// WeightedAverage implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Un stock previo negativo (producto sobrevendido) pondera como 0: el término
// negativo distorsionaría el promedio, así que el costo nuevo es el de entrada.
func WeightedAverage(stockActual int64, costoActual decimal.Decimal, cantEntrada int64, costoEntrada decimal.Decimal) decimal.Decimal {
	if stockActual < 0 {
		stockActual = 0
	}
	actual := decimal.NewFromInt(stockActual)
	entrada := decimal.NewFromInt(cantEntrada)
	sum := actual.Add(entrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := actual.Mul(costoActual).Add(entrada.Mul(costoEntrada))
	return num.Div(sum)
}
