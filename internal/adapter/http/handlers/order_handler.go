package handlers

import (
	"net/http"
	"strconv"

	request "smartorders/internal/adapter/http/dto/request"
	response "smartorders/internal/adapter/http/dto/response"
	"smartorders/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the caller's synchronized order list.
type OrderHandler struct {
	usecase usecase.IOrderSyncUseCase
}

func NewOrderHandler(uc usecase.IOrderSyncUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders godoc
// @Summary      Synchronized order list
// @Description  Returns the last known list. With refresh=true the list is fetched first;
// @Description  a failed fetch keeps the previous list and reports it in the error field.
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        refresh  query  bool  false  "fetch before answering"
// @Success      200  {object}  response.OrdersStateResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if refresh, _ := strconv.ParseBool(c.Query("refresh")); refresh {
		st, _ := h.usecase.Refresh(c.Request.Context(), p.ClientID)
		c.JSON(http.StatusOK, response.FromOrdersState(st))
		return
	}
	c.JSON(http.StatusOK, response.FromOrdersState(h.usecase.State(p.ClientID)))
}

func (h *OrderHandler) RefreshOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	st, err := h.usecase.Refresh(c.Request.Context(), p.ClientID)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrdersState(st))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var payload request.OrderPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	o, err := h.usecase.Update(c.Request.Context(), p.ClientID, id, payload.ToPatch())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), p.ClientID, id); err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
