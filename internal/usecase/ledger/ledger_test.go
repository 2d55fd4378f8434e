//go:build unit

package ledger_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/order"
	"barista-bot/internal/pkg/clock"
	"barista-bot/internal/pkg/errs"
	"barista-bot/internal/usecase/ledger"
	"barista-bot/internal/usecase/readmodel"
	"barista-bot/tests/common/builder"
	sharedmock "barista-bot/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errDiskFull = errors.New("disk full")

type LedgerTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	mockStore *sharedmock.MockHistoryStore
	clock     *clock.MockClock
	ledger    *ledger.Ledger
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = sharedmock.NewMockHistoryStore(s.mockCtrl)
	s.clock = clock.NewTickingClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), time.Second)

	c := catalog.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.ledger = ledger.New(c, order.NewDefaultPriceCalculator(c), s.mockStore, s.clock, logger)
}

func (s *LedgerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) seed(userID string, slots ...order.Slots) []order.FinalizedOrder {
	s.mockStore.EXPECT().Append(gomock.Any(), userID, gomock.Any()).Return(nil).Times(len(slots))
	out := make([]order.FinalizedOrder, 0, len(slots))
	for _, sl := range slots {
		fo, _, err := s.ledger.Finalize(s.ctx, userID, sl)
		s.Require().NoError(err)
		out = append(out, fo)
	}
	return out
}

func (s *LedgerTestSuite) TestFinalize() {
	s.Run("appends an unpaid order and mirrors it", func() {
		var mirrored readmodel.HistoryRecord
		s.mockStore.EXPECT().Append(gomock.Any(), "alice", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, rec readmodel.HistoryRecord) error {
				mirrored = rec
				return nil
			})

		fo, index, err := s.ledger.Finalize(s.ctx, "alice", builder.NewOrderBuilder().WithAddOns("Extra Shot").BuildSlots())
		s.Require().NoError(err)
		s.Equal(0, index)
		s.Equal(1, fo.Seq())
		s.Equal(int64(5000), fo.Price())
		s.Equal(order.StatusUnpaid, fo.Status())

		s.Equal(fo.ID(), mirrored.ID)
		s.False(mirrored.Paid)
		s.Nil(mirrored.PaymentMethod)
		s.Equal([]string{"Extra Shot"}, mirrored.Options)
	})

	s.Run("sequence numbers keep growing", func() {
		s.mockStore.EXPECT().Append(gomock.Any(), "alice", gomock.Any()).Return(nil)
		fo, index, err := s.ledger.Finalize(s.ctx, "alice", builder.NewOrderBuilder().BuildSlots())
		s.Require().NoError(err)
		s.Equal(1, index)
		s.Equal(2, fo.Seq())
	})

	s.Run("unconfirmed slots never reach the store", func() {
		_, _, err := s.ledger.Finalize(s.ctx, "alice", builder.NewOrderBuilder().Unconfirmed().BuildSlots())
		s.True(errs.Is(err, errs.ErrIncompleteOrder))
	})
}

func (s *LedgerTestSuite) TestCheckout() {
	slots := builder.NewOrderBuilder().
		WithDrink("Vanilla Latte", catalog.TempIce).
		WithSize(catalog.SizeLarge).
		WithAddOns("Extra Shot").
		WithPayment(catalog.PaymentCard).
		BuildSlots()

	s.Run("places the order unpaid then records the payment", func() {
		gomock.InOrder(
			s.mockStore.EXPECT().Append(gomock.Any(), "bob", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, rec readmodel.HistoryRecord) error {
					s.False(rec.Paid)
					return nil
				}),
			s.mockStore.EXPECT().Update(gomock.Any(), "bob", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, rec readmodel.HistoryRecord) error {
					s.True(rec.Paid)
					s.Require().NotNil(rec.PaymentMethod)
					s.Equal("CARD", *rec.PaymentMethod)
					return nil
				}),
		)

		fo, index, err := s.ledger.Checkout(s.ctx, "bob", slots)
		s.Require().NoError(err)
		s.Equal(0, index)
		s.Equal(int64(6500), fo.Price())
		s.Equal(order.StatusPaid, fo.Status())
		s.Equal(catalog.PaymentCard, fo.PaymentMethod())
		s.Equal(order.StatusPaid, s.ledger.Orders("bob")[0].Status())
	})

	s.Run("payment write failure leaves the order placed and unpaid", func() {
		s.mockStore.EXPECT().Append(gomock.Any(), "dora", gomock.Any()).Return(nil)
		s.mockStore.EXPECT().Update(gomock.Any(), "dora", gomock.Any()).Return(errDiskFull)

		fo, index, err := s.ledger.Checkout(s.ctx, "dora", slots)
		s.Require().NoError(err)
		s.Equal(0, index)
		s.Equal(order.StatusUnpaid, fo.Status())
		s.Require().Len(s.ledger.Orders("dora"), 1)
		s.Equal(int64(6500), s.ledger.DailySales(), "only the earlier paid order counts")

		s.mockStore.EXPECT().Update(gomock.Any(), "dora", gomock.Any()).Return(nil)
		paid, err := s.ledger.MarkPaid(s.ctx, "dora", index, catalog.PaymentCard)
		s.Require().NoError(err)
		s.Equal(order.StatusPaid, paid.Status())
	})

	s.Run("placement failure stores nothing", func() {
		s.mockStore.EXPECT().Append(gomock.Any(), "ed", gomock.Any()).Return(errDiskFull)

		_, _, err := s.ledger.Checkout(s.ctx, "ed", slots)
		s.True(errs.Is(err, errs.ErrPersistenceFailure))
		s.Empty(s.ledger.Orders("ed"))
	})

	s.Run("slots without a payment method are rejected", func() {
		_, _, err := s.ledger.Checkout(s.ctx, "bob", builder.NewOrderBuilder().BuildSlots())
		s.True(errs.Is(err, errs.ErrIncompleteOrder))
		s.Len(s.ledger.Orders("bob"), 1)
	})
}

func (s *LedgerTestSuite) TestPersistenceFailureLeavesLedgerUnchanged() {
	s.Run("append", func() {
		s.mockStore.EXPECT().Append(gomock.Any(), "carol", gomock.Any()).Return(errDiskFull)

		_, _, err := s.ledger.Finalize(s.ctx, "carol", builder.NewOrderBuilder().BuildSlots())
		s.True(errs.Is(err, errs.ErrPersistenceFailure))
		s.True(errors.Is(err, errDiskFull))
		s.Empty(s.ledger.Orders("carol"))
	})

	s.Run("update", func() {
		seeded := s.seed("carol", builder.NewOrderBuilder().BuildSlots())
		s.mockStore.EXPECT().Update(gomock.Any(), "carol", gomock.Any()).Return(errDiskFull)

		_, err := s.ledger.MarkPaid(s.ctx, "carol", 0, catalog.PaymentCash)
		s.True(errs.Is(err, errs.ErrPersistenceFailure))
		orders := s.ledger.Orders("carol")
		s.Require().Len(orders, 1)
		s.False(orders[0].IsPaid())
		s.Equal(seeded[0].ID(), orders[0].ID())
		s.Equal(1, orders[0].Seq(), "failed append must not consume a sequence number")
	})

	s.Run("delete", func() {
		s.mockStore.EXPECT().Delete(gomock.Any(), "carol", gomock.Any()).Return(errDiskFull)

		_, err := s.ledger.Cancel(s.ctx, "carol", 0)
		s.True(errs.Is(err, errs.ErrPersistenceFailure))
		s.Len(s.ledger.Orders("carol"), 1)
	})
}

func (s *LedgerTestSuite) TestMarkPaid() {
	s.seed("dave", builder.NewOrderBuilder().BuildSlots())

	s.mockStore.EXPECT().Update(gomock.Any(), "dave", gomock.Any()).Return(nil).Times(1)
	paid, err := s.ledger.MarkPaid(s.ctx, "dave", 0, catalog.PaymentCash)
	s.Require().NoError(err)
	s.True(paid.IsPaid())
	s.Equal(catalog.PaymentCash, paid.PaymentMethod())

	_, err = s.ledger.MarkPaid(s.ctx, "dave", 0, catalog.PaymentCard)
	s.True(errs.Is(err, errs.ErrAlreadyPaid))
	s.Equal(catalog.PaymentCash, s.ledger.Orders("dave")[0].PaymentMethod())

	_, err = s.ledger.MarkPaid(s.ctx, "dave", 3, catalog.PaymentCard)
	s.True(errs.Is(err, errs.ErrOrderNotFound))

	_, err = s.ledger.MarkPaid(s.ctx, "nobody", 0, catalog.PaymentCard)
	s.True(errs.Is(err, errs.ErrOrderNotFound))
}

func (s *LedgerTestSuite) TestCancelShiftsIndices() {
	seeded := s.seed("erin",
		builder.NewOrderBuilder().BuildSlots(),
		builder.NewOrderBuilder().WithDrink("Cafe Latte", catalog.TempHot).BuildSlots(),
		builder.NewOrderBuilder().WithDrink("Chocolate", catalog.TempIce).BuildSlots(),
	)

	s.mockStore.EXPECT().Delete(gomock.Any(), "erin", seeded[1].ID()).Return(nil)
	cancelled, err := s.ledger.Cancel(s.ctx, "erin", 1)
	s.Require().NoError(err)
	s.Equal(seeded[1].ID(), cancelled.ID())

	orders := s.ledger.Orders("erin")
	s.Require().Len(orders, 2)
	s.Equal([]uuid.UUID{seeded[0].ID(), seeded[2].ID()}, []uuid.UUID{orders[0].ID(), orders[1].ID()})
	for _, o := range orders {
		s.NotEqual(seeded[1].ID(), o.ID())
	}

	_, err = s.ledger.Cancel(s.ctx, "erin", 2)
	s.True(errs.Is(err, errs.ErrOrderNotFound))
}

func (s *LedgerTestSuite) TestResize() {
	seeded := s.seed("frank", builder.NewOrderBuilder().WithDrink("Cafe Latte", catalog.TempHot).BuildSlots())
	s.Require().Equal(int64(5000), seeded[0].Price())

	s.Run("regular to large adds the delta", func() {
		s.mockStore.EXPECT().Update(gomock.Any(), "frank", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, rec readmodel.HistoryRecord) error {
				s.Equal(catalog.SizeLarge, rec.Size)
				s.Equal(int64(5500), rec.Price)
				return nil
			})
		resized, err := s.ledger.Resize(s.ctx, "frank", 0, "large")
		s.Require().NoError(err)
		s.Equal(int64(5500), resized.Price())
		s.Equal(catalog.SizeLarge, resized.Size())
	})

	s.Run("large to large is a no-op", func() {
		same, err := s.ledger.Resize(s.ctx, "frank", 0, catalog.SizeLarge)
		s.Require().NoError(err)
		s.Equal(int64(5500), same.Price())
	})

	s.Run("unknown size", func() {
		_, err := s.ledger.Resize(s.ctx, "frank", 0, "Venti")
		s.True(errs.Is(err, errs.ErrInvalidSize))
		s.Equal(int64(5500), s.ledger.Orders("frank")[0].Price())
	})
}

func (s *LedgerTestSuite) TestDailySales() {
	s.seed("gina",
		builder.NewOrderBuilder().BuildSlots(),
		builder.NewOrderBuilder().WithDrink("Vanilla Latte", catalog.TempIce).BuildSlots(),
		builder.NewOrderBuilder().WithDrink("Espresso", catalog.TempHot).BuildSlots(),
	)
	s.seed("hank", builder.NewOrderBuilder().WithDrink("Chocolate", catalog.TempHot).BuildSlots())
	s.Equal(int64(0), s.ledger.DailySales())

	s.mockStore.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	_, err := s.ledger.MarkPaid(s.ctx, "gina", 0, catalog.PaymentCard)
	s.Require().NoError(err)
	_, err = s.ledger.MarkPaid(s.ctx, "gina", 2, catalog.PaymentCash)
	s.Require().NoError(err)
	_, err = s.ledger.MarkPaid(s.ctx, "hank", 0, catalog.PaymentMobile)
	s.Require().NoError(err)
	s.Equal(int64(4500+3000+5000), s.ledger.DailySales())

	s.mockStore.EXPECT().Delete(gomock.Any(), "gina", gomock.Any()).Return(nil)
	_, err = s.ledger.Cancel(s.ctx, "gina", 2)
	s.Require().NoError(err)
	s.Equal(int64(4500+5000), s.ledger.DailySales(), "cancelled orders drop out of sales")
}

func TestToHistoryRecord(t *testing.T) {
	fo := builder.NewOrderBuilder().
		WithAddOns("Extra Shot").
		WithPayment(catalog.PaymentMobile).
		BuildFinalized(3)

	rec := ledger.ToHistoryRecord(fo)
	assert.Equal(t, fo.ID(), rec.ID)
	assert.Equal(t, "HOT", rec.Temperature)
	assert.True(t, rec.Paid)
	require.NotNil(t, rec.PaymentMethod)
	assert.Equal(t, "MOBILE", *rec.PaymentMethod)

	rm := ledger.ToOrderRM(fo, 2)
	assert.Equal(t, 2, rm.Index)
	assert.Equal(t, 3, rm.Seq)
	assert.Equal(t, "PAID", rm.Status)
}
