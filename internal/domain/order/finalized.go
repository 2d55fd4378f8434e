package order

import (
	"time"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/pkg/errs"

	"github.com/google/uuid"
)

// FinalizedOrder is a value: Paid and Resized return modified copies so the ledger can
// persist the new version before swapping it in.
type FinalizedOrder struct {
	id            uuid.UUID
	seq           int
	drink         string
	temperature   catalog.Temperature
	size          string
	addOns        []string
	price         int64
	status        PaymentStatus
	paymentMethod catalog.PaymentMethod
	createdAt     time.Time
}

// NewFinalizedOrder snapshots complete, confirmed slots. The order starts UNPAID.
// createdAt is kept in UTC at microsecond precision, the finest a history backend stores.
func NewFinalizedOrder(calc PriceCalculator, slots Slots, seq int, now time.Time) (FinalizedOrder, error) {
	if !slots.Confirmed {
		return FinalizedOrder{}, errs.Wrap(errs.ErrIncompleteOrder, "order has not been confirmed")
	}
	price, err := calc.Price(slots)
	if err != nil {
		return FinalizedOrder{}, err
	}
	return FinalizedOrder{
		id:          uuid.New(),
		seq:         seq,
		drink:       slots.Drink,
		temperature: slots.Temperature,
		size:        slots.Size,
		addOns:      append([]string(nil), slots.AddOns...),
		price:       price,
		status:      StatusUnpaid,
		createdAt:   now.UTC().Truncate(time.Microsecond),
	}, nil
}

func ReconstructFinalizedOrder(
	id uuid.UUID,
	seq int,
	drink string,
	temperature catalog.Temperature,
	size string,
	addOns []string,
	price int64,
	status PaymentStatus,
	paymentMethod catalog.PaymentMethod,
	createdAt time.Time,
) FinalizedOrder {
	return FinalizedOrder{
		id:            id,
		seq:           seq,
		drink:         drink,
		temperature:   temperature,
		size:          size,
		addOns:        append([]string(nil), addOns...),
		price:         price,
		status:        status,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
	}
}

func (o FinalizedOrder) Paid(method catalog.PaymentMethod) (FinalizedOrder, error) {
	if o.IsPaid() {
		return FinalizedOrder{}, errs.ErrAlreadyPaid
	}
	if !method.IsValid() {
		return FinalizedOrder{}, errs.Wrapf(errs.ErrInvalidPaymentMethod, "%q", string(method))
	}
	o.addOns = append([]string(nil), o.addOns...)
	o.status = StatusPaid
	o.paymentMethod = method
	return o, nil
}

// Resized swaps the size and shifts the stored price by the delta difference only, so a
// price adjusted elsewhere is preserved.
func (o FinalizedOrder) Resized(newSize string, oldDelta, newDelta int64) FinalizedOrder {
	o.addOns = append([]string(nil), o.addOns...)
	o.size = newSize
	o.price += newDelta - oldDelta
	return o
}

func (o FinalizedOrder) IsPaid() bool { return o.status == StatusPaid }

func (o FinalizedOrder) ID() uuid.UUID                        { return o.id }
func (o FinalizedOrder) Seq() int                             { return o.seq }
func (o FinalizedOrder) Drink() string                        { return o.drink }
func (o FinalizedOrder) Temperature() catalog.Temperature     { return o.temperature }
func (o FinalizedOrder) Size() string                         { return o.size }
func (o FinalizedOrder) AddOns() []string                     { return append([]string(nil), o.addOns...) }
func (o FinalizedOrder) Price() int64                         { return o.price }
func (o FinalizedOrder) Status() PaymentStatus                { return o.status }
func (o FinalizedOrder) PaymentMethod() catalog.PaymentMethod { return o.paymentMethod }
func (o FinalizedOrder) CreatedAt() time.Time                 { return o.createdAt }
