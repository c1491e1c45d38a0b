package market

import (
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry. Stores, stock entries and sales
// share the same *Product; identity is the id.
type Product struct {
	id        int
	name      string
	unitPrice decimal.Decimal
}

func NewProduct(id int, name string, unitPrice decimal.Decimal) *Product {
	return &Product{id: id, name: name, unitPrice: unitPrice}
}

func (p *Product) ID() int                    { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) UnitPrice() decimal.Decimal { return p.unitPrice }

// StockEntry pairs a product with a quantity. It is used both for stock on
// hand and for the quantity sold in one sale.
type StockEntry struct {
	Product  *Product
	Quantity int
}

// Value returns Quantity * unit price, or zero for an entry without a product.
func (e StockEntry) Value() decimal.Decimal {
	if e.Product == nil {
		return decimal.Zero
	}
	return e.Product.UnitPrice().Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Sale is a committed transaction. The entry is a private snapshot taken at
// registration time. Sales come from Store.RegisterSale; the zero value has
// no product and a zero total.
type Sale struct {
	id   int
	sold StockEntry
}

func (s Sale) ID() int                { return s.id }
func (s Sale) Product() *Product      { return s.sold.Product }
func (s Sale) Quantity() int          { return s.sold.Quantity }
func (s Sale) Sold() StockEntry       { return s.sold }
func (s Sale) Total() decimal.Decimal { return s.sold.Value() }
