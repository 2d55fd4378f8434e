//go:build e2e

package history_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/order"
	"barista-bot/internal/infra"
	"barista-bot/internal/infra/history"
	"barista-bot/internal/usecase/ledger"
	"barista-bot/internal/usecase/readmodel"
	"barista-bot/tests/common/builder"
	"barista-bot/tests/common/dbtest"
	"barista-bot/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PostgresStoreSuite struct {
	e2e.SharedSuite
	store *history.PostgresStore
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.store = history.NewPostgresStore(s.DB, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	s.Run("Normal case: save then load returns the same history", func() {
		t := s.T()
		ctx := context.Background()

		want := readmodel.History{
			"alice": {
				builder.NewOrderBuilder().BuildHistoryRecord(),
				builder.NewOrderBuilder().WithDrink("Cafe Latte", catalog.TempIce).WithAddOns("Extra Shot", "Caramel Syrup").
					WithPayment(catalog.PaymentCard).BuildHistoryRecord(),
			},
			"bob": {builder.NewOrderBuilder().WithSize(catalog.SizeLarge).BuildHistoryRecord()},
		}
		require.NoError(t, s.store.Save(ctx, want))

		got, err := s.store.Load(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("history mismatch (-want +got):\n%s", diff)
		}

		require.NoError(t, s.store.Save(ctx, got))
		again, err := s.store.Load(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(got, again, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("second save changed history (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: a ledger order created at nanosecond precision round-trips", func() {
		t := s.T()
		ctx := context.Background()

		c := catalog.Default()
		fo, err := order.NewFinalizedOrder(order.NewDefaultPriceCalculator(c), builder.NewOrderBuilder().BuildSlots(), 1,
			time.Date(2025, 3, 14, 9, 30, 0, 123456789, time.UTC))
		require.NoError(t, err)
		want := readmodel.History{"carol": {ledger.ToHistoryRecord(fo)}}
		require.NoError(t, s.store.Save(ctx, want))

		got, err := s.store.Load(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("history mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: empty table loads as empty history", func() {
		t := s.T()
		h, err := s.store.Load(context.Background())
		require.NoError(t, err)
		require.Empty(t, h)
	})
}

func (s *PostgresStoreSuite) TestRecordOperations() {
	s.Run("Normal case: append keeps insertion order", func() {
		t := s.T()
		ctx := context.Background()

		first := builder.NewOrderBuilder().WithDrink("Espresso", catalog.TempHot).BuildHistoryRecord()
		second := builder.NewOrderBuilder().BuildHistoryRecord()
		require.NoError(t, s.store.Append(ctx, "alice", first))
		require.NoError(t, s.store.Append(ctx, "alice", second))

		records, err := s.store.UserHistory(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, first.ID, records[0].ID)
		require.Equal(t, second.ID, records[1].ID)
	})

	s.Run("Normal case: update overwrites in place and upserts missing rows", func() {
		t := s.T()
		ctx := context.Background()

		rec := builder.NewOrderBuilder().BuildHistoryRecord()
		require.NoError(t, s.store.Append(ctx, "alice", rec))

		method := "MOBILE"
		rec.Paid = true
		rec.PaymentMethod = &method
		rec.Size = catalog.SizeLarge
		rec.Price = 5000
		require.NoError(t, s.store.Update(ctx, "alice", rec))

		orphan := builder.NewOrderBuilder().BuildHistoryRecord()
		require.NoError(t, s.store.Update(ctx, "alice", orphan))

		records, err := s.store.UserHistory(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.True(t, records[0].Paid)
		require.Equal(t, "MOBILE", *records[0].PaymentMethod)
		require.Equal(t, int64(5000), records[0].Price)
		require.Equal(t, orphan.ID, records[1].ID)
	})

	s.Run("Normal case: delete and reset are scoped to one user", func() {
		t := s.T()
		ctx := context.Background()

		a := builder.NewOrderBuilder().BuildHistoryRecord()
		b := builder.NewOrderBuilder().BuildHistoryRecord()
		dbtest.InsertHistoryRecord(t, s.DB, "alice", a)
		dbtest.InsertHistoryRecord(t, s.DB, "alice", b)
		dbtest.InsertHistoryRecord(t, s.DB, "bob", builder.NewOrderBuilder().BuildHistoryRecord())

		require.NoError(t, s.store.Delete(ctx, "alice", a.ID))
		require.NoError(t, s.store.Delete(ctx, "bob", b.ID))
		require.Equal(t, 1, dbtest.CountHistoryRows(t, s.DB, "alice"))
		require.Equal(t, 1, dbtest.CountHistoryRows(t, s.DB, "bob"))

		require.NoError(t, s.store.Reset(ctx, "alice"))
		require.Equal(t, 0, dbtest.CountHistoryRows(t, s.DB, "alice"))
		require.Equal(t, 1, dbtest.CountHistoryRows(t, s.DB, "bob"))
	})

	s.Run("Error case: appending the same id twice is a duplicate key", func() {
		t := s.T()
		ctx := context.Background()

		rec := builder.NewOrderBuilder().BuildHistoryRecord()
		require.NoError(t, s.store.Append(ctx, "alice", rec))

		err := s.store.Append(ctx, "alice", rec)
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		require.Equal(t, 1, dbtest.CountHistoryRows(t, s.DB, "alice"))
	})
}
