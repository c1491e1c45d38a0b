// Package seed loads the startup catalog, stores and initial sales.
package seed

import (
	_ "embed"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ariefcatur/go-supermarket-chain/internal/inventory"
	"github.com/ariefcatur/go-supermarket-chain/internal/market"
)

//go:embed default.yaml
var defaultSeed []byte

type Document struct {
	Products []Product `yaml:"products"`
	Stores   []Store   `yaml:"stores"`
	Sales    []Sale    `yaml:"sales"`
}

type Product struct {
	ID    int             `yaml:"id"`
	Name  string          `yaml:"name"`
	Price decimal.Decimal `yaml:"price"`
}

type Store struct {
	ID            int      `yaml:"id"`
	Name          string   `yaml:"name"`
	Opens         string   `yaml:"opens"`  // H:mm
	Closes        string   `yaml:"closes"` // H:mm
	OpenDays      []string `yaml:"open_days"`
	StartingStock int      `yaml:"starting_stock"`
}

type Sale struct {
	StoreID   int `yaml:"store_id"`
	ProductID int `yaml:"product_id"`
	Quantity  int `yaml:"quantity"`
}

// Load reads a seed document from path, or the embedded sample when path is empty.
func Load(path string) (*Document, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read seed file")
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode seed")
	}
	return &doc, nil
}

// Build creates the chain described by doc. Every store shares the same
// catalog products. Initial sales are returned, not applied.
func (d *Document) Build(sink market.EventSink, logger *zap.Logger) (*market.Chain, []inventory.SaleRequest, error) {
	catalog := make([]*market.Product, 0, len(d.Products))
	for _, p := range d.Products {
		catalog = append(catalog, market.NewProduct(p.ID, p.Name, p.Price))
	}

	chain := market.NewChain()
	for _, s := range d.Stores {
		opens, err := ParseClock(s.Opens)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "store %d opens", s.ID)
		}
		closes, err := ParseClock(s.Closes)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "store %d closes", s.ID)
		}
		store, err := market.NewStore(market.StoreConfig{
			ID:            s.ID,
			Name:          s.Name,
			Catalog:       catalog,
			StartingStock: s.StartingStock,
			Opens:         opens,
			Closes:        closes,
			OpenDays:      s.OpenDays,
			Sink:          sink,
			Logger:        logger,
		})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "store %d", s.ID)
		}
		if err := chain.AddStore(store); err != nil {
			return nil, nil, err
		}
	}

	sales := make([]inventory.SaleRequest, 0, len(d.Sales))
	for _, s := range d.Sales {
		sales = append(sales, inventory.SaleRequest{StoreID: s.StoreID, ProductID: s.ProductID, Quantity: s.Quantity})
	}
	return chain, sales, nil
}

// ParseClock parses an "H:mm" time of day.
func ParseClock(s string) (market.Clock, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return market.Clock{}, errors.Wrapf(market.ErrInvalidArgument, "time of day %q, expected H:mm", s)
	}
	return market.At(t.Hour(), t.Minute())
}
