package memory

import (
	"context"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con el lock del Store tomado, pasando repositorios atados a él.
// Serializa las lecturas-verificaciones-escrituras (p. ej. asignar un lote). No hay rollback:
// los casos de uso validan antes de mutar, y el contexto se verifica una sola vez al tomar el
// lock para que una cancelación no deje la operación a medias.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run verifica ctx, toma el lock, ejecuta fn y lo libera.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	unlock, err := r.s.enter(ctx, false)
	if err != nil {
		return err
	}
	defer unlock()

	productRepo := &ProductRepository{s: r.s, locked: true}
	movRepo := &InventoryMovementRepository{s: r.s, locked: true}
	return fn(productRepo, movRepo)
}
