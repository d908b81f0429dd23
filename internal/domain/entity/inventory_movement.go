package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeBatchIn         = "BATCH_IN"         // alta de lote
	MovementTypeBatchAdjust     = "BATCH_ADJUST"     // edición de cantidad de un lote
	MovementTypeBatchAllocation = "BATCH_ALLOCATION" // asignación de un lote a un pedido
	MovementTypeStockAdd        = "STOCK_ADD"        // ajuste directo sin lote
	MovementTypeStockSubtract   = "STOCK_SUBTRACT"   // ajuste directo sin lote (con piso en 0)
)

// InventoryMovement registro del libro de movimientos de un producto.
// Quantity es la variación efectiva de CurrentStock (negativa en salidas).
// BatchID es 0 en los ajustes directos.
type InventoryMovement struct {
	TransactionID string
	ProductID     int
	BatchID       int
	Type          string
	Quantity      int
	StockAfter    int
	Reference     string
	Date          time.Time
}
