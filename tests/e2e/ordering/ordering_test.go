//go:build e2e

package ordering_test

import (
	"encoding/json"
	"net/http"
	"testing"

	resdto "barista-bot/internal/handler/dto/response"
	"barista-bot/tests/common/dbtest"
	"barista-bot/tests/common/httptest"
	"barista-bot/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderingSuite struct {
	e2e.SharedSuite
}

func TestOrderingSuite(t *testing.T) {
	suite.Run(t, new(OrderingSuite))
}

// the ledger lives in memory for the whole suite, so each case uses a fresh user
func newUser() string {
	return "guest-" + uuid.NewString()[:8]
}

func (s *OrderingSuite) say(user, text string) resdto.TurnResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/users/"+user+"/utterances", map[string]any{"text": text})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var turn resdto.TurnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turn))
	return turn
}

func (s *OrderingSuite) orders(user string) []resdto.OrderResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/"+user+"/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []resdto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *OrderingSuite) TestConversation() {
	s.Run("Normal case: a full conversation persists a paid order", func() {
		t := s.T()
		user := newUser()

		turn := s.say(user, "iced vanilla latte large with extra shot")
		require.Equal(t, "AWAIT_CONFIRM", turn.State)

		turn = s.say(user, "yes")
		require.Equal(t, "AWAIT_PAYMENT", turn.State)

		turn = s.say(user, "card")
		require.Equal(t, "COMPLETE", turn.State)
		require.NotNil(t, turn.Order)
		require.Equal(t, "PAID", turn.Order.Status)
		require.Equal(t, int64(6500), turn.Order.Price)

		require.Equal(t, 1, dbtest.CountHistoryRows(t, s.DB, user))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/"+user+"/history", nil)
		var history []resdto.HistoryRecordResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 1)
		require.True(t, history[0].Paid)
		require.Equal(t, "Vanilla Latte", history[0].Drink)
	})

	s.Run("Normal case: the session restarts after completion", func() {
		t := s.T()
		user := newUser()

		for _, text := range []string{"hot americano", "regular", "no options", "yes", "cash"} {
			s.say(user, text)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/"+user+"/session", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"state":"AWAIT_DRINK"`)
	})

	s.Run("Error case: blank utterance is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/users/"+newUser()+"/utterances", map[string]any{"text": ""})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *OrderingSuite) TestOrderManagement() {
	place := func(user string) {
		for _, text := range []string{"hot americano", "regular", "no options", "yes", "mobile"} {
			s.say(user, text)
		}
	}

	s.Run("Normal case: resize and cancel are mirrored to postgres", func() {
		t := s.T()
		user := newUser()
		place(user)
		place(user)
		require.Len(t, s.orders(user), 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/users/"+user+"/orders/0/size", map[string]any{"size": "Large"})
		var resized resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resized)
		require.Equal(t, int64(5000), resized.Price)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/users/"+user+"/orders/0", nil)
		require.Equal(t, http.StatusOK, w.Code)

		remaining := s.orders(user)
		require.Len(t, remaining, 1)
		require.Equal(t, 0, remaining[0].Index)
		require.Equal(t, 1, dbtest.CountHistoryRows(t, s.DB, user))
	})

	s.Run("Error case: paying twice conflicts", func() {
		t := s.T()
		user := newUser()
		place(user)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/users/"+user+"/orders/0/payment", map[string]any{"method": "CASH"})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Payment failed")
	})

	s.Run("Error case: unknown index is not found", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/users/"+newUser()+"/orders/3", nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Cancel failed")
	})

	s.Run("Normal case: reset history clears the user's rows", func() {
		t := s.T()
		user := newUser()
		place(user)
		require.Equal(t, 1, dbtest.CountHistoryRows(t, s.DB, user))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/users/"+user+"/history", nil)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, 0, dbtest.CountHistoryRows(t, s.DB, user))
	})
}

func (s *OrderingSuite) TestMenuAndSales() {
	s.Run("Normal case: menu lists both categories", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/menu", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"Non-coffee"`)
	})

	s.Run("Normal case: daily sales include paid orders", func() {
		t := s.T()
		user := newUser()
		for _, text := range []string{"espresso", "regular", "no options", "yes", "cash"} {
			s.say(user, text)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/sales/daily", nil)
		var sales resdto.SalesResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sales)
		require.GreaterOrEqual(t, sales.Total, int64(3000))
	})
}
