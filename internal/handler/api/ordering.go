package api

import (
	"net/http"
	"strconv"

	reqdto "barista-bot/internal/handler/dto/request"
	resdto "barista-bot/internal/handler/dto/response"
	"barista-bot/internal/handler/httperr"
	"barista-bot/internal/handler/middleware"
	"barista-bot/internal/pkg/errs"
	"barista-bot/internal/usecase/commands"
	"barista-bot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidIndex = errs.New("order index must be a non-negative integer")

type OrderingHandler struct {
	cmds commands.OrderingCommands
	q    queries.OrderingQueries
}

func NewOrderingHandler(cmds commands.OrderingCommands, q queries.OrderingQueries) *OrderingHandler {
	return &OrderingHandler{cmds: cmds, q: q}
}

// @Summary Send utterance
// @Description Advance the user's order conversation by one turn
// @Tags ordering
// @Accept json
// @Produce json
// @Param user path string true "User ID"
// @Param request body reqdto.UtteranceRequest true "Utterance"
// @Success 200 {object} resdto.TurnResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/users/{user}/utterances [post]
func (h *OrderingHandler) Utter(c *gin.Context) {
	var req reqdto.UtteranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	turn, err := h.cmds.HandleUtterance(c.Request.Context(), currentUser(c), req.Text)
	if err != nil {
		httperr.Abort(c, err, "Turn failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTurnRM(turn))
}

// @Summary Get session
// @Tags ordering
// @Produce json
// @Param user path string true "User ID"
// @Success 200 {object} readmodel.SessionRM
// @Router /api/users/{user}/session [get]
func (h *OrderingHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.GetSession(c.Request.Context(), currentUser(c)))
}

// @Summary Start a new order
// @Tags ordering
// @Param user path string true "User ID"
// @Success 204 "No Content"
// @Router /api/users/{user}/session [delete]
func (h *OrderingHandler) ResetSession(c *gin.Context) {
	if err := h.cmds.ResetSession(c.Request.Context(), currentUser(c)); err != nil {
		httperr.Abort(c, err, "Reset failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Param user path string true "User ID"
// @Success 200 {array} resdto.OrderResponse
// @Router /api/users/{user}/orders [get]
func (h *OrderingHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromOrderList(h.q.GetUserOrders(c.Request.Context(), currentUser(c))))
}

// @Summary Mark order paid
// @Description Settle an UNPAID order, such as one whose payment could not be recorded at checkout
// @Tags orders
// @Accept json
// @Produce json
// @Param user path string true "User ID"
// @Param index path int true "Order index"
// @Param request body reqdto.PaymentRequest true "Payment"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/users/{user}/orders/{index}/payment [post]
func (h *OrderingHandler) MarkPaid(c *gin.Context) {
	index, ok := orderIndex(c)
	if !ok {
		return
	}
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.MarkPaid(c.Request.Context(), currentUser(c), index, req.Method)
	if err != nil {
		httperr.Abort(c, err, "Payment failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderRM(o))
}

// @Summary Change order size
// @Tags orders
// @Accept json
// @Produce json
// @Param user path string true "User ID"
// @Param index path int true "Order index"
// @Param request body reqdto.ResizeRequest true "Size"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/{user}/orders/{index}/size [patch]
func (h *OrderingHandler) Resize(c *gin.Context) {
	index, ok := orderIndex(c)
	if !ok {
		return
	}
	var req reqdto.ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.ResizeOrder(c.Request.Context(), currentUser(c), index, req.Size)
	if err != nil {
		httperr.Abort(c, err, "Resize failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderRM(o))
}

// @Summary Cancel order
// @Tags orders
// @Produce json
// @Param user path string true "User ID"
// @Param index path int true "Order index"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /api/users/{user}/orders/{index} [delete]
func (h *OrderingHandler) Cancel(c *gin.Context) {
	index, ok := orderIndex(c)
	if !ok {
		return
	}
	o, err := h.cmds.CancelOrder(c.Request.Context(), currentUser(c), index)
	if err != nil {
		httperr.Abort(c, err, "Cancel failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderRM(o))
}

// @Summary Get order history
// @Tags history
// @Produce json
// @Param user path string true "User ID"
// @Success 200 {array} resdto.HistoryRecordResponse
// @Router /api/users/{user}/history [get]
func (h *OrderingHandler) History(c *gin.Context) {
	records, err := h.q.GetUserHistory(c.Request.Context(), currentUser(c))
	if err != nil {
		httperr.Abort(c, err, "History unavailable")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistory(records))
}

// @Summary Reset order history
// @Tags history
// @Param user path string true "User ID"
// @Success 204 "No Content"
// @Router /api/users/{user}/history [delete]
func (h *OrderingHandler) ResetHistory(c *gin.Context) {
	if err := h.cmds.ResetHistory(c.Request.Context(), currentUser(c)); err != nil {
		httperr.Abort(c, err, "Reset failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func orderIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		if err == nil {
			err = errInvalidIndex
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid index", nil)
		return 0, false
	}
	return index, true
}

func currentUser(c *gin.Context) string {
	if id, ok := middleware.GetUserID(c); ok {
		return id
	}
	return c.Param("user")
}
