//go:build unit || e2e

package builder

import (
	"time"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/order"
	reqdto "barista-bot/internal/handler/dto/request"
	"barista-bot/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	Drink         string
	Temperature   catalog.Temperature
	Size          string
	AddOns        []string
	Confirmed     bool
	PaymentMethod catalog.PaymentMethod
	Price         int64
	CreatedAt     time.Time
}

// NewOrderBuilder starts from a confirmed hot regular Americano.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Drink:       "Americano",
		Temperature: catalog.TempHot,
		Size:        catalog.SizeRegular,
		AddOns:      []string{},
		Confirmed:   true,
		Price:       4500,
		CreatedAt:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithDrink(name string, t catalog.Temperature) *OrderBuilder {
	b.Drink = name
	b.Temperature = t
	return b
}

func (b *OrderBuilder) WithSize(size string) *OrderBuilder {
	b.Size = size
	return b
}

func (b *OrderBuilder) WithAddOns(names ...string) *OrderBuilder {
	b.AddOns = names
	return b
}

func (b *OrderBuilder) WithPayment(m catalog.PaymentMethod) *OrderBuilder {
	b.PaymentMethod = m
	return b
}

func (b *OrderBuilder) Unconfirmed() *OrderBuilder {
	b.Confirmed = false
	return b
}

// Build methods
func (b *OrderBuilder) BuildSlots() order.Slots {
	return order.Slots{
		Drink:           b.Drink,
		Temperature:     b.Temperature,
		Size:            b.Size,
		AddOns:          append([]string{}, b.AddOns...),
		OptionsAnswered: true,
		Confirmed:       b.Confirmed,
		PaymentMethod:   b.PaymentMethod,
	}
}

func (b *OrderBuilder) BuildFinalized(seq int) order.FinalizedOrder {
	status := order.StatusUnpaid
	if b.PaymentMethod != "" {
		status = order.StatusPaid
	}
	return order.ReconstructFinalizedOrder(
		uuid.New(), seq, b.Drink, b.Temperature, b.Size, append([]string{}, b.AddOns...),
		b.Price, status, b.PaymentMethod, b.CreatedAt,
	)
}

func (b *OrderBuilder) BuildHistoryRecord() readmodel.HistoryRecord {
	rec := readmodel.HistoryRecord{
		ID:          uuid.New(),
		Drink:       b.Drink,
		Size:        b.Size,
		Temperature: b.Temperature.String(),
		Options:     append([]string{}, b.AddOns...),
		Price:       b.Price,
		Paid:        b.PaymentMethod != "",
		Timestamp:   b.CreatedAt,
	}
	if b.PaymentMethod != "" {
		m := b.PaymentMethod.String()
		rec.PaymentMethod = &m
	}
	return rec
}

func (b *OrderBuilder) BuildOrderRM(index int) *readmodel.OrderRM {
	rm := &readmodel.OrderRM{
		Index:       index,
		ID:          uuid.New(),
		Seq:         index + 1,
		Drink:       b.Drink,
		Temperature: b.Temperature.String(),
		Size:        b.Size,
		Options:     append([]string{}, b.AddOns...),
		Price:       b.Price,
		Status:      order.StatusUnpaid.String(),
		CreatedAt:   b.CreatedAt,
	}
	if b.PaymentMethod != "" {
		m := b.PaymentMethod.String()
		rm.PaymentMethod = &m
		rm.Status = order.StatusPaid.String()
	}
	return rm
}

func (b *OrderBuilder) BuildPaymentRequestDTO() reqdto.PaymentRequest {
	method := b.PaymentMethod
	if method == "" {
		method = catalog.PaymentCard
	}
	return reqdto.PaymentRequest{Method: method.String()}
}

func (b *OrderBuilder) BuildResizeRequestDTO() reqdto.ResizeRequest {
	return reqdto.ResizeRequest{Size: b.Size}
}
