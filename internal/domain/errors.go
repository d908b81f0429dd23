package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los mensajes se exponen tal cual al cliente, por eso nombran la entidad.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("Insufficient batch quantity")
	ErrInvalidTransition = errors.New("invalid quality status transition")

	ErrProductNotFound     = fmt.Errorf("Product %w", ErrNotFound)
	ErrBatchNotFound       = fmt.Errorf("Batch %w", ErrNotFound)
	ErrPricingRuleNotFound = fmt.Errorf("Pricing rule %w", ErrNotFound)
)

// InvalidInput envuelve ErrInvalidInput con el detalle del campo.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
