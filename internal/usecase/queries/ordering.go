package queries

import (
	"context"

	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/session"
	"barista-bot/internal/pkg/errs"
	"barista-bot/internal/usecase/ledger"
	"barista-bot/internal/usecase/readmodel"
	"barista-bot/internal/usecase/shared"
)

type OrderingQueries interface {
	Menu(ctx context.Context) *readmodel.MenuRM
	GetSession(ctx context.Context, userID string) *readmodel.SessionRM
	GetUserOrders(ctx context.Context, userID string) []*readmodel.OrderRM
	GetUserHistory(ctx context.Context, userID string) ([]readmodel.HistoryRecord, error)
	DailySales(ctx context.Context) *readmodel.SalesRM
}

type orderingQueriesImpl struct {
	catalog  *catalog.Catalog
	sessions *shared.SessionRegistry
	ledger   *ledger.Ledger
	store    shared.HistoryStore
}

func NewOrderingQueries(c *catalog.Catalog, sessions *shared.SessionRegistry, l *ledger.Ledger, store shared.HistoryStore) OrderingQueries {
	return &orderingQueriesImpl{catalog: c, sessions: sessions, ledger: l, store: store}
}

func (q *orderingQueriesImpl) Menu(_ context.Context) *readmodel.MenuRM {
	menu := &readmodel.MenuRM{
		Categories: make([]readmodel.MenuCategoryRM, 0),
		Sizes:      make([]readmodel.PricedItemRM, 0),
		Options:    make([]readmodel.PricedItemRM, 0),
		Payments:   make([]string, 0),
	}
	for _, category := range q.catalog.Categories() {
		cat := readmodel.MenuCategoryRM{Name: category, Drinks: make([]readmodel.MenuDrinkRM, 0)}
		for _, e := range q.catalog.DrinksIn(category) {
			temps := make([]string, 0, len(e.Temperatures()))
			for _, t := range e.Temperatures() {
				temps = append(temps, t.String())
			}
			cat.Drinks = append(cat.Drinks, readmodel.MenuDrinkRM{Name: e.Name(), Price: e.BasePrice(), Temperatures: temps})
		}
		menu.Categories = append(menu.Categories, cat)
	}
	for _, s := range q.catalog.Sizes() {
		menu.Sizes = append(menu.Sizes, readmodel.PricedItemRM{Name: s.Name(), Delta: s.Delta()})
	}
	for _, a := range q.catalog.AddOns() {
		menu.Options = append(menu.Options, readmodel.PricedItemRM{Name: a.Name(), Delta: a.Delta()})
	}
	for _, p := range q.catalog.Payments() {
		menu.Payments = append(menu.Payments, p.Method().String())
	}
	return menu
}

func (q *orderingQueriesImpl) GetSession(_ context.Context, userID string) *readmodel.SessionRM {
	return toSessionRM(userID, q.sessions.Get(userID))
}

func (q *orderingQueriesImpl) GetUserOrders(_ context.Context, userID string) []*readmodel.OrderRM {
	orders := q.ledger.Orders(userID)
	out := make([]*readmodel.OrderRM, 0, len(orders))
	for i, o := range orders {
		out = append(out, ledger.ToOrderRM(o, i))
	}
	return out
}

func (q *orderingQueriesImpl) GetUserHistory(ctx context.Context, userID string) ([]readmodel.HistoryRecord, error) {
	records, err := q.store.UserHistory(ctx, userID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load history"), errs.ErrPersistenceFailure)
	}
	if records == nil {
		records = []readmodel.HistoryRecord{}
	}
	return records, nil
}

func (q *orderingQueriesImpl) DailySales(_ context.Context) *readmodel.SalesRM {
	return &readmodel.SalesRM{Total: q.ledger.DailySales()}
}

func toSessionRM(userID string, s session.Session) *readmodel.SessionRM {
	slots := s.Slots()
	rm := &readmodel.SessionRM{
		UserID:    userID,
		State:     s.State().String(),
		Options:   append([]string{}, slots.AddOns...),
		Confirmed: slots.Confirmed,
	}
	if slots.HasDrink() {
		rm.Drink = &slots.Drink
	}
	if slots.HasTemperature() {
		t := slots.Temperature.String()
		rm.Temperature = &t
	}
	if slots.HasSize() {
		rm.Size = &slots.Size
	}
	if slots.HasPayment() {
		m := slots.PaymentMethod.String()
		rm.PaymentMethod = &m
	}
	return rm
}
