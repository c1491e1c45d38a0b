package market

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateProduct  = errors.New("duplicate product id in catalog")
	ErrDuplicateStore    = errors.New("store id already exists in chain")
	ErrEmptyChain        = errors.New("chain has no stores")
)

// StockError reports a sale rejected for lack of stock.
type StockError struct {
	ProductID int
	Required  int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: required %d, current stock %d",
		e.ProductID, e.Required, e.Available)
}

func (e *StockError) Is(target error) bool { return target == ErrInsufficientStock }
