package dto

import "github.com/shopspring/decimal"

// CreateBatchRequest body para POST /api/products/:id/batches. Fechas en formato YYYY-MM-DD.
type CreateBatchRequest struct {
	BatchNumber        string `json:"batchNumber" validate:"required,max=100"`
	ManufacturingDate  string `json:"manufacturingDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate         string `json:"expiryDate" validate:"required,datetime=2006-01-02"`
	Quantity           int    `json:"quantity" validate:"required,min=1"`
	SupplierName       string `json:"supplierName" validate:"required,max=200"`
	QualityCheckStatus string `json:"qualityCheckStatus" validate:"omitempty,oneof=pending passed failed"`
	StorageLocation    string `json:"storageLocation" validate:"required,max=50"`
}

// UpdateBatchRequest body para PUT /api/products/:id/batches/:batchId; campos ausentes no cambian.
type UpdateBatchRequest struct {
	BatchNumber        *string `json:"batchNumber" validate:"omitempty,min=1,max=100"`
	ManufacturingDate  *string `json:"manufacturingDate" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate         *string `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	Quantity           *int    `json:"quantity" validate:"omitempty,min=0"`
	SupplierName       *string `json:"supplierName"`
	QualityCheckStatus *string `json:"qualityCheckStatus" validate:"omitempty,oneof=pending passed failed"`
	StorageLocation    *string `json:"storageLocation"`
}

// AllocateBatchRequest body para POST /api/products/:id/batches/:batchId/allocate.
type AllocateBatchRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// BatchResponse salida de un lote.
type BatchResponse struct {
	ID                 int    `json:"id"`
	BatchNumber        string `json:"batchNumber"`
	ManufacturingDate  string `json:"manufacturingDate,omitempty"`
	ExpiryDate         string `json:"expiryDate"`
	ReceivedDate       string `json:"receivedDate,omitempty"`
	Quantity           int    `json:"quantity"`
	SupplierName       string `json:"supplierName"`
	QualityCheckStatus string `json:"qualityCheckStatus"`
	StorageLocation    string `json:"storageLocation"`
}

// BatchWithProductResponse lote en listados transversales (todos los productos).
type BatchWithProductResponse struct {
	BatchResponse
	ProductID       int    `json:"productId"`
	ProductName     string `json:"productName"`
	ProductCategory string `json:"productCategory"`
}

// ExpiringBatchResponse lote próximo a vencer.
type ExpiringBatchResponse struct {
	BatchResponse
	ProductID    int    `json:"productId"`
	ProductName  string `json:"productName"`
	DaysToExpiry int    `json:"daysToExpiry"`
}

// AllocationResponse comprobante de asignación.
type AllocationResponse struct {
	BatchID           int    `json:"batchId"`
	BatchNumber       string `json:"batchNumber"`
	AllocatedQuantity int    `json:"allocatedQuantity"`
	ExpiryDate        string `json:"expiryDate"`
}

// UpdateStockRequest body para POST /api/products/:id/stock.
type UpdateStockRequest struct {
	Quantity  *int   `json:"quantity" validate:"required,min=0"`
	Operation string `json:"operation" validate:"required,oneof=add subtract"`
}

// ReorderSuggestionResponse producto completo más la sugerencia de compra.
type ReorderSuggestionResponse struct {
	ProductResponse
	SuggestedOrderQuantity int             `json:"suggestedOrderQuantity"`
	EstimatedCost          decimal.Decimal `json:"estimatedCost"`
}

// StockConsistencyResponse contador de stock frente a la suma de lotes.
type StockConsistencyResponse struct {
	ProductID    int  `json:"productId"`
	CurrentStock int  `json:"currentStock"`
	BatchTotal   int  `json:"batchTotal"`
	Consistent   bool `json:"consistent"`
}

// MovementResponse entrada del libro de movimientos.
type MovementResponse struct {
	TransactionID string `json:"transactionId"`
	ProductID     int    `json:"productId"`
	BatchID       int    `json:"batchId,omitempty"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	StockAfter    int    `json:"stockAfter"`
	Reference     string `json:"reference,omitempty"`
	Date          string `json:"date"`
}

// OrderLineRequest línea de pedido; batchId ausente o 0 descuenta stock sin lote.
type OrderLineRequest struct {
	ProductID   FlexibleID `json:"productId" validate:"required"`
	BatchID     FlexibleID `json:"batchId"`
	BatchNumber string     `json:"batchNumber"`
	Quantity    int        `json:"quantity" validate:"required,min=1"`
}

// ConfirmOrderRequest body para POST /api/orders/confirm.
type ConfirmOrderRequest struct {
	Lines []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// OrderLineResponse resultado de una línea aplicada.
type OrderLineResponse struct {
	ProductID    int                 `json:"productId"`
	Allocation   *AllocationResponse `json:"allocation,omitempty"`
	CurrentStock *int                `json:"currentStock,omitempty"`
}

// ConfirmOrderResponse resultado de la confirmación.
type ConfirmOrderResponse struct {
	Lines []OrderLineResponse `json:"lines"`
}
