package ledger

import (
	"context"
	"log/slog"
	"sync"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/order"
	"barista-bot/internal/pkg/clock"
	"barista-bot/internal/pkg/errs"
	"barista-bot/internal/usecase/shared"
)

// Ledger holds the finalized orders of the current run. Each mutation is written
// through to the history store first and only then applied in memory.
type Ledger struct {
	mu      sync.Mutex
	books   map[string]*book
	catalog *catalog.Catalog
	pricer  order.PriceCalculator
	store   shared.HistoryStore
	clock   clock.Clock
	logger  *slog.Logger
}

type book struct {
	mu      sync.Mutex
	orders  []order.FinalizedOrder
	nextSeq int
}

func New(
	c *catalog.Catalog,
	pricer order.PriceCalculator,
	store shared.HistoryStore,
	clk clock.Clock,
	logger *slog.Logger,
) *Ledger {
	return &Ledger{
		books:   make(map[string]*book),
		catalog: c,
		pricer:  pricer,
		store:   store,
		clock:   clk,
		logger:  logger,
	}
}

func (l *Ledger) book(userID string) *book {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.books[userID]
	if !ok {
		b = &book{nextSeq: 1}
		l.books[userID] = b
	}
	return b
}

func (l *Ledger) allBooks() []*book {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*book, 0, len(l.books))
	for _, b := range l.books {
		out = append(out, b)
	}
	return out
}

// Finalize appends confirmed slots as a new UNPAID order.
func (l *Ledger) Finalize(ctx context.Context, userID string, slots order.Slots) (order.FinalizedOrder, int, error) {
	b := l.book(userID)
	b.mu.Lock()
	defer b.mu.Unlock()
	return l.finalizeLocked(ctx, b, userID, slots)
}

// Checkout finalizes slots carrying a payment method and marks the new order paid while
// holding the user's lock, so no other call can shift its index in between. An error means
// nothing was placed. If only the payment write fails, the order stays UNPAID and is
// returned without an error; it can be settled later through MarkPaid.
func (l *Ledger) Checkout(ctx context.Context, userID string, slots order.Slots) (order.FinalizedOrder, int, error) {
	if !slots.HasPayment() {
		return order.FinalizedOrder{}, 0, errs.Wrap(errs.ErrIncompleteOrder, "payment method is required")
	}

	b := l.book(userID)
	b.mu.Lock()
	defer b.mu.Unlock()

	placed, index, err := l.finalizeLocked(ctx, b, userID, slots)
	if err != nil {
		return order.FinalizedOrder{}, 0, err
	}
	paid, err := l.markPaidLocked(ctx, b, userID, index, slots.PaymentMethod)
	if err != nil {
		l.logger.Warn("order placed unpaid",
			slog.String("user_id", userID),
			slog.String("order_id", placed.ID().String()),
			slog.Int("index", index))
		return placed, index, nil
	}
	return paid, index, nil
}

func (l *Ledger) finalizeLocked(ctx context.Context, b *book, userID string, slots order.Slots) (order.FinalizedOrder, int, error) {
	fo, err := order.NewFinalizedOrder(l.pricer, slots, b.nextSeq, l.clock.Now())
	if err != nil {
		return order.FinalizedOrder{}, 0, err
	}

	if err := l.store.Append(ctx, userID, ToHistoryRecord(fo)); err != nil {
		return order.FinalizedOrder{}, 0, l.persistenceErr(err, "append", userID, fo)
	}

	b.orders = append(b.orders, fo)
	b.nextSeq++
	index := len(b.orders) - 1
	l.logger.Info("order finalized",
		slog.String("user_id", userID),
		slog.String("order_id", fo.ID().String()),
		slog.Int("index", index),
		slog.Int64("price", fo.Price()))
	return fo, index, nil
}

func (l *Ledger) MarkPaid(ctx context.Context, userID string, index int, method catalog.PaymentMethod) (order.FinalizedOrder, error) {
	b := l.book(userID)
	b.mu.Lock()
	defer b.mu.Unlock()
	return l.markPaidLocked(ctx, b, userID, index, method)
}

func (l *Ledger) markPaidLocked(ctx context.Context, b *book, userID string, index int, method catalog.PaymentMethod) (order.FinalizedOrder, error) {
	current, err := b.at(index)
	if err != nil {
		return order.FinalizedOrder{}, err
	}
	paid, err := current.Paid(method)
	if err != nil {
		return order.FinalizedOrder{}, err
	}

	if err := l.store.Update(ctx, userID, ToHistoryRecord(paid)); err != nil {
		return order.FinalizedOrder{}, l.persistenceErr(err, "update", userID, paid)
	}

	b.orders[index] = paid
	l.logger.Info("order paid",
		slog.String("user_id", userID),
		slog.String("order_id", paid.ID().String()),
		slog.String("method", method.String()))
	return paid, nil
}

// Cancel removes the order at index; later orders shift down by one.
func (l *Ledger) Cancel(ctx context.Context, userID string, index int) (order.FinalizedOrder, error) {
	b := l.book(userID)
	b.mu.Lock()
	defer b.mu.Unlock()

	current, err := b.at(index)
	if err != nil {
		return order.FinalizedOrder{}, err
	}

	if err := l.store.Delete(ctx, userID, current.ID()); err != nil {
		return order.FinalizedOrder{}, l.persistenceErr(err, "delete", userID, current)
	}

	b.orders = append(b.orders[:index:index], b.orders[index+1:]...)
	l.logger.Info("order cancelled",
		slog.String("user_id", userID),
		slog.String("order_id", current.ID().String()),
		slog.Int("index", index))
	return current, nil
}

// Resize applies only the size delta difference to the stored price.
func (l *Ledger) Resize(ctx context.Context, userID string, index int, newSize string) (order.FinalizedOrder, error) {
	b := l.book(userID)
	b.mu.Lock()
	defer b.mu.Unlock()

	current, err := b.at(index)
	if err != nil {
		return order.FinalizedOrder{}, err
	}
	target, err := l.catalog.FindSize(newSize)
	if err != nil {
		return order.FinalizedOrder{}, errs.Wrapf(errs.ErrInvalidSize, "%q", newSize)
	}
	if target.Name() == current.Size() {
		return current, nil
	}
	oldDelta, err := l.catalog.SizeDelta(current.Size())
	if err != nil {
		return order.FinalizedOrder{}, errs.Wrapf(errs.ErrInvalidSize, "stored size %q", current.Size())
	}

	resized := current.Resized(target.Name(), oldDelta, target.Delta())
	if err := l.store.Update(ctx, userID, ToHistoryRecord(resized)); err != nil {
		return order.FinalizedOrder{}, l.persistenceErr(err, "update", userID, resized)
	}

	b.orders[index] = resized
	l.logger.Info("order resized",
		slog.String("user_id", userID),
		slog.String("order_id", resized.ID().String()),
		slog.String("size", resized.Size()),
		slog.Int64("price", resized.Price()))
	return resized, nil
}

// Orders returns a copy of the user's orders in insertion order.
func (l *Ledger) Orders(userID string) []order.FinalizedOrder {
	b := l.book(userID)
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]order.FinalizedOrder(nil), b.orders...)
}

// DailySales sums the price of every PAID order across all users.
func (l *Ledger) DailySales() int64 {
	var total int64
	for _, b := range l.allBooks() {
		b.mu.Lock()
		for _, o := range b.orders {
			if o.IsPaid() {
				total += o.Price()
			}
		}
		b.mu.Unlock()
	}
	return total
}

func (b *book) at(index int) (order.FinalizedOrder, error) {
	if index < 0 || index >= len(b.orders) {
		return order.FinalizedOrder{}, errs.Wrapf(errs.ErrOrderNotFound, "index %d", index)
	}
	return b.orders[index], nil
}

func (l *Ledger) persistenceErr(err error, op, userID string, fo order.FinalizedOrder) error {
	l.logger.Error("history write failed",
		slog.String("op", op),
		slog.String("user_id", userID),
		slog.String("order_id", fo.ID().String()),
		slog.String("error", err.Error()))
	return errs.Mark(errs.Wrapf(err, "history %s", op), errs.ErrPersistenceFailure)
}
