package api

import (
	"net/http"

	resdto "barista-bot/internal/handler/dto/response"
	"barista-bot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	q queries.OrderingQueries
}

func NewMenuHandler(q queries.OrderingQueries) *MenuHandler {
	return &MenuHandler{q: q}
}

// @Summary Get menu
// @Description Drinks by category with sizes, extras and payment methods
// @Tags menu
// @Produce json
// @Success 200 {object} readmodel.MenuRM
// @Router /api/menu [get]
func (h *MenuHandler) Menu(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.Menu(c.Request.Context()))
}

// @Summary Daily sales
// @Description Sum of paid orders across all users in this run
// @Tags sales
// @Produce json
// @Success 200 {object} resdto.SalesResponse
// @Router /api/sales/daily [get]
func (h *MenuHandler) DailySales(c *gin.Context) {
	sales := h.q.DailySales(c.Request.Context())
	c.JSON(http.StatusOK, resdto.SalesResponse{Total: sales.Total})
}
