package response

import (
	"time"

	"barista-bot/internal/usecase/readmodel"
)

type OrderResponse struct {
	Index         int      `json:"index"`
	ID            string   `json:"id"`
	Seq           int      `json:"seq"`
	Drink         string   `json:"drink"`
	Temperature   string   `json:"temperature"`
	Size          string   `json:"size"`
	Options       []string `json:"options"`
	Price         int64    `json:"price"`
	Status        string   `json:"status"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	CreatedAt     int64    `json:"created_at"`
}

type TurnResponse struct {
	Prompt     string         `json:"prompt"`
	PromptKind string         `json:"prompt_kind"`
	State      string         `json:"state"`
	Order      *OrderResponse `json:"order,omitempty"`
}

type HistoryRecordResponse struct {
	ID            string   `json:"id"`
	Drink         string   `json:"drink"`
	Size          string   `json:"size"`
	Temperature   string   `json:"temperature"`
	Options       []string `json:"options"`
	Price         int64    `json:"price"`
	Paid          bool     `json:"paid"`
	PaymentMethod *string  `json:"payment_method"`
	Timestamp     string   `json:"timestamp"`
}

type SalesResponse struct {
	Total int64 `json:"total"`
}

func FromOrderRM(o *readmodel.OrderRM) *OrderResponse {
	if o == nil {
		return nil
	}
	options := o.Options
	if options == nil {
		options = []string{}
	}
	return &OrderResponse{
		Index:         o.Index,
		ID:            o.ID.String(),
		Seq:           o.Seq,
		Drink:         o.Drink,
		Temperature:   o.Temperature,
		Size:          o.Size,
		Options:       options,
		Price:         o.Price,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt.Unix(),
	}
}

func FromOrderList(items []*readmodel.OrderRM) []*OrderResponse {
	res := make([]*OrderResponse, len(items))
	for i, it := range items {
		res[i] = FromOrderRM(it)
	}
	return res
}

func FromTurnRM(t *readmodel.TurnRM) *TurnResponse {
	return &TurnResponse{
		Prompt:     t.Prompt,
		PromptKind: t.PromptKind,
		State:      t.State,
		Order:      FromOrderRM(t.Order),
	}
}

func FromHistory(records []readmodel.HistoryRecord) []*HistoryRecordResponse {
	res := make([]*HistoryRecordResponse, len(records))
	for i, r := range records {
		options := r.Options
		if options == nil {
			options = []string{}
		}
		res[i] = &HistoryRecordResponse{
			ID:            r.ID.String(),
			Drink:         r.Drink,
			Size:          r.Size,
			Temperature:   r.Temperature,
			Options:       options,
			Price:         r.Price,
			Paid:          r.Paid,
			PaymentMethod: r.PaymentMethod,
			Timestamp:     r.Timestamp.Format(time.RFC3339),
		}
	}
	return res
}
