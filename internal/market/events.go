package market

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventSaleRegistered = "SaleRegistered"
	EventSaleRejected   = "SaleRejected"
)

const (
	RejectInvalidArgument = "INVALID_ARGUMENT"
	RejectProductNotFound = "PRODUCT_NOT_FOUND"
	RejectOutOfStock      = "OUT_OF_STOCK"
)

// EventSink receives sale events. Publish errors never undo a committed sale.
type EventSink interface {
	Publish(env Envelope) error
}

type Envelope struct {
	EventID       string          `json:"event_id"` // uuid
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"` // e.g. "store-3"
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type SaleRegisteredPayload struct {
	StoreID   int             `json:"store_id"`
	SaleID    int             `json:"sale_id"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

type SaleRejectedPayload struct {
	StoreID   int    `json:"store_id"`
	ProductID int    `json:"product_id"`
	Reason    string `json:"reason"`
	Required  int    `json:"required"`
	Available int    `json:"available,omitempty"`
}

func newEnvelope(eventType, producer, correlationID string, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		CorrelationID: correlationID,
		Payload:       b,
	}, nil
}
