package entity

import "time"

// QualityStatus resultado del control de calidad de un lote.
type QualityStatus string

const (
	QualityPending QualityStatus = "pending"
	QualityPassed  QualityStatus = "passed"
	QualityFailed  QualityStatus = "failed"
)

// IsValid indica si el estado es uno de los conocidos.
func (s QualityStatus) IsValid() bool {
	switch s {
	case QualityPending, QualityPassed, QualityFailed:
		return true
	}
	return false
}

// CanTransitionTo: pending -> passed | failed; passed y failed son terminales.
func (s QualityStatus) CanTransitionTo(next QualityStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return s == QualityPending
}

// Batch es un lote físico de un producto. No tiene identidad fuera de su producto,
// pero su ID es único entre todos los productos.
type Batch struct {
	ID                 int
	BatchNumber        string
	ManufacturingDate  time.Time
	ExpiryDate         time.Time
	ReceivedDate       time.Time
	Quantity           int
	SupplierName       string
	QualityCheckStatus QualityStatus
	StorageLocation    string
}

// DateLayout formato de fechas de calendario (fabricación, vencimiento, recepción, vigencia).
const DateLayout = "2006-01-02"
