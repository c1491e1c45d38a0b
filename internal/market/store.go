package market

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StoreConfig carries everything a store is built with. Only stock
// quantities and the sale history change after construction.
type StoreConfig struct {
	ID            int
	Name          string
	Catalog       []*Product
	StartingStock int
	Opens         Clock
	Closes        Clock
	OpenDays      []string

	Sink   EventSink   // optional
	Logger *zap.Logger // optional, defaults to a no-op logger
}

// Store tracks the stock and sale history of one supermarket.
// It is not safe for concurrent use.
type Store struct {
	id       int
	name     string
	opens    Clock
	closes   Clock
	openDays []string
	dayIndex map[string]struct{}

	stock   []StockEntry
	index   map[int]int // product id -> position in stock
	history []Sale

	sink   EventSink
	logger *zap.Logger
}

func NewStore(cfg StoreConfig) (*Store, error) {
	if cfg.ID < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "store id %d", cfg.ID)
	}
	if cfg.StartingStock < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "starting stock %d", cfg.StartingStock)
	}

	s := &Store{
		id:       cfg.ID,
		name:     cfg.Name,
		opens:    cfg.Opens,
		closes:   cfg.Closes,
		openDays: append([]string(nil), cfg.OpenDays...),
		dayIndex: make(map[string]struct{}, len(cfg.OpenDays)),
		stock:    make([]StockEntry, 0, len(cfg.Catalog)),
		index:    make(map[int]int, len(cfg.Catalog)),
		sink:     cfg.Sink,
		logger:   cfg.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	for _, d := range cfg.OpenDays {
		s.dayIndex[d] = struct{}{}
	}

	for _, p := range cfg.Catalog {
		if p == nil {
			return nil, errors.Wrap(ErrInvalidArgument, "nil product in catalog")
		}
		if _, dup := s.index[p.ID()]; dup {
			return nil, errors.Wrapf(ErrDuplicateProduct, "product %d", p.ID())
		}
		s.index[p.ID()] = len(s.stock)
		s.stock = append(s.stock, StockEntry{Product: p, Quantity: cfg.StartingStock})
	}
	return s, nil
}

func (s *Store) ID() int       { return s.id }
func (s *Store) Name() string  { return s.name }
func (s *Store) Opens() Clock  { return s.opens }
func (s *Store) Closes() Clock { return s.closes }

func (s *Store) OpenDays() []string { return append([]string(nil), s.openDays...) }

// String renders the "Name (id)" descriptor.
func (s *Store) String() string { return fmt.Sprintf("%s (%d)", s.name, s.id) }

// IsOpen reports whether at falls strictly inside the opening hours on day.
// Being exactly at the opening or closing minute counts as closed.
func (s *Store) IsOpen(at Clock, day string) bool {
	if _, ok := s.dayIndex[day]; !ok {
		return false
	}
	return at.After(s.opens) && at.Before(s.closes)
}

// Stock returns a copy of the current stock list, in catalog order.
func (s *Store) Stock() []StockEntry {
	return append([]StockEntry(nil), s.stock...)
}

// StockOf returns the quantity on hand for a product.
func (s *Store) StockOf(productID int) (int, bool) {
	i, ok := s.index[productID]
	if !ok {
		return 0, false
	}
	return s.stock[i].Quantity, true
}

// RegisterSale sells quantity units of a product and returns the sale
// amount. On any error nothing changes and the amount is zero.
func (s *Store) RegisterSale(productID, quantity int) (decimal.Decimal, error) {
	if productID < 0 || quantity <= 0 {
		s.reject(productID, quantity, 0, RejectInvalidArgument)
		return decimal.Zero, errors.Wrapf(ErrInvalidArgument,
			"product id must be 0 or greater and quantity greater than 0 (got id=%d qty=%d)", productID, quantity)
	}

	i, ok := s.index[productID]
	if !ok {
		s.reject(productID, quantity, 0, RejectProductNotFound)
		return decimal.Zero, errors.Wrapf(ErrProductNotFound, "product %d in store %d", productID, s.id)
	}

	entry := &s.stock[i]
	if entry.Quantity < quantity {
		s.reject(productID, quantity, entry.Quantity, RejectOutOfStock)
		return decimal.Zero, &StockError{ProductID: productID, Required: quantity, Available: entry.Quantity}
	}

	entry.Quantity -= quantity
	sale := Sale{
		id:   len(s.history) + 1,
		sold: StockEntry{Product: entry.Product, Quantity: quantity},
	}
	s.history = append(s.history, sale)

	amount := sale.Total()
	s.publish(EventSaleRegistered, SaleRegisteredPayload{
		StoreID:   s.id,
		SaleID:    sale.id,
		ProductID: productID,
		Quantity:  quantity,
		Amount:    amount,
	})
	return amount, nil
}

// QuantitySoldOf sums the units sold of a product. No sales is 0.
func (s *Store) QuantitySoldOf(productID int) (int, error) {
	if productID < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "product id must be 0 or greater (got %d)", productID)
	}
	total := 0
	for _, sale := range s.history {
		if sale.Product().ID() == productID {
			total += sale.Quantity()
		}
	}
	return total, nil
}

// RevenueOf sums the amount sold of a product.
func (s *Store) RevenueOf(productID int) (decimal.Decimal, error) {
	if productID < 0 {
		return decimal.Zero, errors.Wrapf(ErrInvalidArgument, "product id must be 0 or greater (got %d)", productID)
	}
	total := decimal.Zero
	for _, sale := range s.history {
		if sale.Product().ID() == productID {
			total = total.Add(sale.Total())
		}
	}
	return total, nil
}

// TotalRevenue sums every sale of the store.
func (s *Store) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, sale := range s.history {
		total = total.Add(sale.Total())
	}
	return total
}

// SalesHistory returns a copy of the history in registration order.
func (s *Store) SalesHistory() []Sale {
	return append([]Sale(nil), s.history...)
}

func (s *Store) reject(productID, required, available int, reason string) {
	s.logger.Debug("sale rejected",
		zap.Int("store_id", s.id),
		zap.Int("product_id", productID),
		zap.Int("required", required),
		zap.Int("available", available),
		zap.String("reason", reason),
	)
	s.publish(EventSaleRejected, SaleRejectedPayload{
		StoreID:   s.id,
		ProductID: productID,
		Reason:    reason,
		Required:  required,
		Available: available,
	})
}

func (s *Store) publish(eventType string, payload any) {
	if s.sink == nil {
		return
	}
	env, err := newEnvelope(eventType, "store-"+strconv.Itoa(s.id), strconv.Itoa(s.id), payload)
	if err != nil {
		s.logger.Error("encode sale event", zap.String("event_type", eventType), zap.Error(err))
		return
	}
	if err := s.sink.Publish(env); err != nil {
		s.logger.Warn("publish sale event", zap.String("event_type", eventType), zap.Error(err))
	}
}
