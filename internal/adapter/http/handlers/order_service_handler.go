package handlers

import (
	"context"
	"net/http"

	request "smartorders/internal/adapter/http/dto/request"
	response "smartorders/internal/adapter/http/dto/response"
	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderServiceHandler is the server side of the order gateway: the
// /smart-orders API that orderapi.Client talks to.
type OrderServiceHandler struct {
	usecase usecase.IOrderServiceUseCase
}

func NewOrderServiceHandler(uc usecase.IOrderServiceUseCase) *OrderServiceHandler {
	return &OrderServiceHandler{usecase: uc}
}

// ListOrders godoc
// @Summary   List orders
// @Tags      smart-orders
// @Produce   json
// @Security  Bearer
// @Param     status     query  string  false  "status"
// @Param     date_from  query  string  false  "formed on or after (YYYY-MM-DD)"
// @Param     date_to    query  string  false  "formed on or before (YYYY-MM-DD)"
// @Success   200  {array}  response.OrderResponse
// @Router    /smart-orders [get]
func (h *OrderServiceHandler) ListOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var q request.OrderFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	orders, err := h.usecase.ListOrders(c.Request.Context(), p, filter)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderServiceHandler) GetOrder(c *gin.Context) {
	h.transition(c, h.usecase.GetOrder)
}

// SaveOrder godoc
// @Summary      Create or update an order
// @Description  id 0 creates a draft order for the caller.
// @Tags         smart-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  int                        true  "order id, 0 to create"
// @Param        body  body  request.OrderPatchRequest  true  "address, items, services"
// @Success      200  {object}  response.OrderResponse
// @Success      201  {object}  response.OrderResponse
// @Router       /smart-orders/{id} [put]
func (h *OrderServiceHandler) SaveOrder(c *gin.Context) {
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
	o, err := h.usecase.SaveOrder(c.Request.Context(), p, id, payload.ToPatch())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromOrder(o))
}

func (h *OrderServiceHandler) FormOrder(c *gin.Context) {
	h.transition(c, h.usecase.FormOrder)
}

func (h *OrderServiceHandler) CompleteOrder(c *gin.Context) {
	h.transition(c, h.usecase.CompleteOrder)
}

func (h *OrderServiceHandler) RejectOrder(c *gin.Context) {
	h.transition(c, h.usecase.RejectOrder)
}

func (h *OrderServiceHandler) DeleteOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.DeleteOrder(c.Request.Context(), p, id); err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderServiceHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, p entities.Principal, id int64) (entities.RemoteOrder, error),
) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	o, err := apply(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}
