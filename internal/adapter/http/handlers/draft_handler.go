package handlers

import (
	"net/http"

	request "smartorders/internal/adapter/http/dto/request"
	response "smartorders/internal/adapter/http/dto/response"
	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"
	"smartorders/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DraftHandler exposes the caller's draft order. All routes require auth.
type DraftHandler struct {
	usecase usecase.IDraftUseCase
	log     *logger.Logger
}

func NewDraftHandler(uc usecase.IDraftUseCase, log *logger.Logger) *DraftHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DraftHandler{usecase: uc, log: log.With("handler", "DraftHandler")}
}

// GetDraft godoc
// @Summary   Current draft
// @Tags      draft
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.DraftResponse
// @Success   204  "no draft"
// @Router    /draft [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	d, err := h.usecase.Get(c.Request.Context(), p.ClientID)
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	if d == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) StartDraft(c *gin.Context) {
	h.mutate(c, http.StatusCreated, func(clientID int64) (*entities.DraftOrder, error) {
		return h.usecase.Start(c.Request.Context(), clientID)
	})
}

func (h *DraftHandler) ClearDraft(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.usecase.Clear(c.Request.Context(), p.ClientID); err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddDevice godoc
// @Summary   Add a device to the draft
// @Tags      draft
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body  request.AddDeviceRequest  true  "device and quantity"
// @Success   200  {object}  response.DraftResponse
// @Failure   400  {object}  pkg.HTTPError
// @Failure   404  {object}  pkg.HTTPError
// @Router    /draft/devices [post]
func (h *DraftHandler) AddDevice(c *gin.Context) {
	var payload request.AddDeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.mutate(c, http.StatusOK, func(clientID int64) (*entities.DraftOrder, error) {
		return h.usecase.AddDevice(c.Request.Context(), clientID, payload.DeviceID, payload.ResolveQuantity())
	})
}

func (h *DraftHandler) SetQuantity(c *gin.Context) {
	deviceID, ok := int64Param(c, "device_id")
	if !ok {
		return
	}
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.mutate(c, http.StatusOK, func(clientID int64) (*entities.DraftOrder, error) {
		return h.usecase.SetQuantity(c.Request.Context(), clientID, deviceID, *payload.Quantity)
	})
}

func (h *DraftHandler) RemoveDevice(c *gin.Context) {
	deviceID, ok := int64Param(c, "device_id")
	if !ok {
		return
	}
	h.mutate(c, http.StatusOK, func(clientID int64) (*entities.DraftOrder, error) {
		return h.usecase.RemoveDevice(c.Request.Context(), clientID, deviceID)
	})
}

func (h *DraftHandler) AddService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.mutate(c, http.StatusOK, func(clientID int64) (*entities.DraftOrder, error) {
		return h.usecase.AddService(c.Request.Context(), clientID, payload.ToEntity())
	})
}

func (h *DraftHandler) RemoveService(c *gin.Context) {
	serviceID, ok := int64Param(c, "service_id")
	if !ok {
		return
	}
	h.mutate(c, http.StatusOK, func(clientID int64) (*entities.DraftOrder, error) {
		return h.usecase.RemoveService(c.Request.Context(), clientID, serviceID)
	})
}

// SubmitDraft godoc
// @Summary      Submit the draft
// @Description  Saves the draft as an order with the given address and forms it.
// @Description  A 502 PARTIAL_SUBMISSION means the order was saved but not formed; the draft is kept.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.SubmitDraftRequest  true  "delivery address"
// @Success      201  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /draft/submit [post]
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.SubmitDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapDraftError(usecase.ErrInvalidAddress))
		return
	}

	o, err := h.usecase.Submit(c.Request.Context(), p.ClientID, payload.Address)
	if err != nil {
		appErr := mapDraftError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Warn("[draft][handler] submit failed", "client_id", p.ClientID, "err", err)
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

func (h *DraftHandler) mutate(c *gin.Context, status int, fn func(clientID int64) (*entities.DraftOrder, error)) {
	p, ok := principal(c)
	if !ok {
		return
	}
	d, err := fn(p.ClientID)
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(status, response.FromDraft(d))
}
