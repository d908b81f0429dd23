package inventory

import "github.com/shopspring/decimal"

// SuggestedOrderQuantity cantidad sugerida de compra para un producto bajo su nivel de reorden:
// Sugerido = max(2*NivelReorden - StockActual, NivelReorden)
func SuggestedOrderQuantity(currentStock, reorderLevel int) int {
	return max(reorderLevel*2-currentStock, reorderLevel)
}

// EstimatedOrderCost costo estimado de la compra sugerida al precio unitario dado.
func EstimatedOrderCost(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ApplyStockDelta aplica una variación al stock. Las salidas quedan con piso en 0
// (la ruta directa no falla por falta de stock, a diferencia de la asignación por lote).
func ApplyStockDelta(currentStock, delta int) int {
	next := currentStock + delta
	if next < 0 {
		return 0
	}
	return next
}
