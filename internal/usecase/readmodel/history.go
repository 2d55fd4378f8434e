package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is the persisted shape of one finalized order.
type HistoryRecord struct {
	ID            uuid.UUID `json:"id"`
	Drink         string    `json:"drink"`
	Size          string    `json:"size"`
	Temperature   string    `json:"temperature"`
	Options       []string  `json:"options"`
	Price         int64     `json:"price"`
	Paid          bool      `json:"paid"`
	PaymentMethod *string   `json:"payment_method"`
	Timestamp     time.Time `json:"timestamp"`
}

// History maps user id to that user's records in insertion order.
type History map[string][]HistoryRecord

func (h History) Clone() History {
	out := make(History, len(h))
	for user, records := range h {
		cp := make([]HistoryRecord, len(records))
		for i, r := range records {
			cp[i] = r.clone()
		}
		out[user] = cp
	}
	return out
}

func (r HistoryRecord) clone() HistoryRecord {
	cp := r
	if r.Options != nil {
		cp.Options = append([]string{}, r.Options...)
	}
	if r.PaymentMethod != nil {
		m := *r.PaymentMethod
		cp.PaymentMethod = &m
	}
	return cp
}
