package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain"
)

type fakeGenerator struct {
	got inventory.ExpiryReport
	err error
}

func (g *fakeGenerator) GenerateExpiryReport(_ context.Context, report inventory.ExpiryReport) ([]byte, error) {
	g.got = report
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

func TestExpiryReportPDF_ArmaReporteConLaVentana(t *testing.T) {
	f := newFixture(t)
	gen := &fakeGenerator{}
	uc := inventory.NewReportUseCase(f.batches, gen, inventory.WithClock(func() time.Time { return testNow }))

	doc, err := uc.ExpiryReportPDF(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-fake", string(doc))
	assert.Equal(t, 30, gen.got.WindowDays)
	assert.Equal(t, testNow, gen.got.GeneratedAt)
	assert.Len(t, gen.got.Batches, 2)
	assert.Equal(t, 1, gen.got.Expired())
	assert.Equal(t, 220, gen.got.UnitsAtRisk())
}

func TestExpiryReportPDF_ErrorDelGenerador(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")
	uc := inventory.NewReportUseCase(f.batches, &fakeGenerator{err: boom})

	_, err := uc.ExpiryReportPDF(context.Background(), 30)
	assert.ErrorIs(t, err, boom)
}

func TestExpiryReportPDF_DiasNegativos(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewReportUseCase(f.batches, &fakeGenerator{})

	_, err := uc.ExpiryReportPDF(context.Background(), -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
