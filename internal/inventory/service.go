package inventory

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-supermarket-chain/internal/market"
)

var ErrUnknownStore = errors.New("unknown store")

type SaleRequest struct {
	StoreID   int
	ProductID int
	Quantity  int
}

type Rejection struct {
	Request SaleRequest
	Err     error
}

// Report summarises one batch. Total only counts accepted sales.
type Report struct {
	Accepted int
	Total    decimal.Decimal
	Rejected []Rejection
}

// Service registers batches of sales against a chain, one request at a time.
// A rejected request never blocks the ones after it.
type Service struct {
	Chain  *market.Chain
	Logger *zap.Logger
}

func (s *Service) Apply(reqs []SaleRequest) Report {
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	rep := Report{Total: decimal.Zero}
	for _, req := range reqs {
		store, ok := s.Chain.Store(req.StoreID)
		if !ok {
			rep.Rejected = append(rep.Rejected, Rejection{Request: req, Err: errors.Wrapf(ErrUnknownStore, "store %d", req.StoreID)})
			log.Warn("sale skipped: unknown store", zap.Int("store_id", req.StoreID))
			continue
		}
		amount, err := store.RegisterSale(req.ProductID, req.Quantity)
		if err != nil {
			rep.Rejected = append(rep.Rejected, Rejection{Request: req, Err: err})
			log.Warn("sale rejected",
				zap.Int("store_id", req.StoreID),
				zap.Int("product_id", req.ProductID),
				zap.Int("quantity", req.Quantity),
				zap.Error(err),
			)
			continue
		}
		rep.Accepted++
		rep.Total = rep.Total.Add(amount)
	}
	log.Info("sales applied",
		zap.Int("accepted", rep.Accepted),
		zap.Int("rejected", len(rep.Rejected)),
		zap.String("total", market.FormatAmount(rep.Total)),
	)
	return rep
}
