package ledger

import (
	"barista-bot/internal/domain/order"
	"barista-bot/internal/usecase/readmodel"
)

func ToHistoryRecord(o order.FinalizedOrder) readmodel.HistoryRecord {
	rec := readmodel.HistoryRecord{
		ID:          o.ID(),
		Drink:       o.Drink(),
		Size:        o.Size(),
		Temperature: o.Temperature().String(),
		Options:     append([]string{}, o.AddOns()...),
		Price:       o.Price(),
		Paid:        o.IsPaid(),
		Timestamp:   o.CreatedAt().UTC(),
	}
	if o.PaymentMethod() != "" {
		m := o.PaymentMethod().String()
		rec.PaymentMethod = &m
	}
	return rec
}

func ToOrderRM(o order.FinalizedOrder, index int) *readmodel.OrderRM {
	rm := &readmodel.OrderRM{
		Index:       index,
		ID:          o.ID(),
		Seq:         o.Seq(),
		Drink:       o.Drink(),
		Temperature: o.Temperature().String(),
		Size:        o.Size(),
		Options:     append([]string{}, o.AddOns()...),
		Price:       o.Price(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}
	if o.PaymentMethod() != "" {
		m := o.PaymentMethod().String()
		rm.PaymentMethod = &m
	}
	return rm
}
