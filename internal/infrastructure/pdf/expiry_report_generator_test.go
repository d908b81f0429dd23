package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/infrastructure/pdf"
)

func sampleReport() inventory.ExpiryReport {
	return inventory.ExpiryReport{
		GeneratedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		WindowDays:  30,
		Batches: []inventory.ExpiringBatch{
			{
				Batch: entity.Batch{
					ID: 3, BatchNumber: "AMX-2025-088", Quantity: 20,
					ExpiryDate:         time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
					QualityCheckStatus: entity.QualityPassed,
				},
				ProductID: 2, ProductName: "Amoxicillin 250mg Capsules", DaysToExpiry: -17,
			},
			{
				Batch: entity.Batch{
					ID: 1, BatchNumber: "PCM-2026-001", Quantity: 200,
					ExpiryDate:         time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
					QualityCheckStatus: entity.QualityPassed,
					StorageLocation:    "A-01-02",
				},
				ProductID: 1, ProductName: "Paracetamol 500mg Tablets", DaysToExpiry: 23,
			},
		},
	}
}

func TestGenerateExpiryReport_GeneraPDF(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator("ERP Test")

	doc, err := gen.GenerateExpiryReport(context.Background(), sampleReport())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Greater(t, len(doc), 500)
}

func TestGenerateExpiryReport_SinLotes(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator("")

	doc, err := gen.GenerateExpiryReport(context.Background(), inventory.ExpiryReport{WindowDays: 7})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateExpiryReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewMarotoReportGenerator("ERP Test").GenerateExpiryReport(ctx, sampleReport())
	assert.ErrorIs(t, err, context.Canceled)
}
