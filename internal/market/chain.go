package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Chain is an ordered collection of stores with unique ids.
// It is not safe for concurrent use.
type Chain struct {
	stores []*Store
}

func NewChain() *Chain {
	return &Chain{}
}

// AddStore appends s. A store whose id is already present is rejected and
// the chain is left unchanged.
func (c *Chain) AddStore(s *Store) error {
	if s == nil {
		return errors.Wrap(ErrInvalidArgument, "nil store")
	}
	if _, ok := c.Store(s.ID()); ok {
		return errors.Wrapf(ErrDuplicateStore, "store %d", s.ID())
	}
	c.stores = append(c.stores, s)
	return nil
}

func (c *Chain) Store(id int) (*Store, bool) {
	for _, s := range c.stores {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// Stores returns the stores in insertion order.
func (c *Chain) Stores() []*Store { return append([]*Store(nil), c.stores...) }

func (c *Chain) Len() int { return len(c.stores) }

// QuantitySoldOf returns units of a product sold by one store. An unknown
// store yields 0 without error.
func (c *Chain) QuantitySoldOf(storeID, productID int) (int, error) {
	s, ok := c.Store(storeID)
	if !ok {
		return 0, nil
	}
	return s.QuantitySoldOf(productID)
}

// RevenueOf returns the amount sold of a product by one store. An unknown
// store yields 0 without error.
func (c *Chain) RevenueOf(storeID, productID int) (decimal.Decimal, error) {
	s, ok := c.Store(storeID)
	if !ok {
		return decimal.Zero, nil
	}
	return s.RevenueOf(productID)
}

// RevenueOfStore returns the total amount sold by one store, 0 when the
// store is unknown.
func (c *Chain) RevenueOfStore(storeID int) decimal.Decimal {
	s, ok := c.Store(storeID)
	if !ok {
		return decimal.Zero
	}
	return s.TotalRevenue()
}

// TotalRevenue sums every store's revenue.
func (c *Chain) TotalRevenue() (decimal.Decimal, error) {
	if len(c.stores) == 0 {
		return decimal.Zero, ErrEmptyChain
	}
	total := decimal.Zero
	for _, s := range c.stores {
		total = total.Add(s.TotalRevenue())
	}
	return total, nil
}

// OpenStores lists "Name (id)" for every store open at the given time and
// day, in chain order.
func (c *Chain) OpenStores(at Clock, day string) []string {
	out := make([]string, 0, len(c.stores))
	for _, s := range c.stores {
		if s.IsOpen(at, day) {
			out = append(out, s.String())
		}
	}
	return out
}

// OpenStoresList is OpenStores joined with ", ".
func (c *Chain) OpenStoresList(at Clock, day string) string {
	return strings.Join(c.OpenStores(at, day), ", ")
}

// TopStoreByRevenue describes the store with the highest revenue. Ties go to
// the store added first.
func (c *Chain) TopStoreByRevenue() (string, error) {
	if len(c.stores) == 0 {
		return "", ErrEmptyChain
	}
	top := c.stores[0]
	topRevenue := top.TotalRevenue()
	for _, s := range c.stores[1:] {
		if r := s.TotalRevenue(); r.GreaterThan(topRevenue) {
			top, topRevenue = s, r
		}
	}
	return fmt.Sprintf("%s. Total revenue: $%s", top, FormatAmount(topRevenue)), nil
}

// ProductVolume is the accumulated quantity sold of one product across the chain.
type ProductVolume struct {
	Product  *Product
	Quantity int
}

// TopProductsByVolume ranks products by units sold across every store.
// Equal quantities keep the order in which the product was first sold,
// scanning stores in chain order and sales in history order.
func (c *Chain) TopProductsByVolume(n int) []ProductVolume {
	var ranked []ProductVolume
	pos := map[int]int{}
	for _, s := range c.stores {
		for _, sale := range s.history {
			sold := sale.Sold()
			id := sold.Product.ID()
			if i, ok := pos[id]; ok {
				ranked[i].Quantity += sold.Quantity
				continue
			}
			pos[id] = len(ranked)
			ranked = append(ranked, ProductVolume{Product: sold.Product, Quantity: sold.Quantity})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Quantity > ranked[j].Quantity })
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Top5ProductsByVolume renders the five best sellers as "name: qty" joined
// by " - ". No sales yields "".
func (c *Chain) Top5ProductsByVolume() string {
	top := c.TopProductsByVolume(5)
	parts := make([]string, 0, len(top))
	for _, pv := range top {
		parts = append(parts, fmt.Sprintf("%s: %d", pv.Product.Name(), pv.Quantity))
	}
	return strings.Join(parts, " - ")
}

// FormatAmount renders an amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
