package handlers

import (
	"net/http"

	request "smartorders/internal/adapter/http/dto/request"
	response "smartorders/internal/adapter/http/dto/response"
	"smartorders/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DeviceHandler serves the device catalog.
type DeviceHandler struct {
	usecase usecase.IDeviceUseCase
}

func NewDeviceHandler(uc usecase.IDeviceUseCase) *DeviceHandler {
	return &DeviceHandler{usecase: uc}
}

// ListDevices godoc
// @Summary  List active devices
// @Tags     devices
// @Produce  json
// @Param    search    query  string  false  "name substring"
// @Param    protocol  query  string  false  "protocol"
// @Success  200  {array}  response.DeviceResponse
// @Router   /devices [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	var q request.DeviceFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	devices, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		writeError(c, mapDeviceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDevices(devices))
}

// GetDevice godoc
// @Summary  Get a device
// @Tags     devices
// @Produce  json
// @Param    id  path  int  true  "device id"
// @Success  200  {object}  response.DeviceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /devices/{id} [get]
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	d, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapDeviceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDevice(d))
}

func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CreateDeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapDeviceError(usecase.ErrInvalidDevicePayload))
		return
	}
	d, err := h.usecase.Create(c.Request.Context(), p, payload.ToEntity())
	if err != nil {
		writeError(c, mapDeviceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDevice(d))
}

// UpdateDevice godoc
// @Summary  Update a device (moderators)
// @Tags     devices
// @Accept   json
// @Produce  json
// @Param    id       path  int                          true  "device id"
// @Param    payload  body  request.UpdateDeviceRequest  true  "device fields"
// @Success  200  {object}  response.DeviceResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /devices/{id} [put]
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapDeviceError(usecase.ErrInvalidDevicePayload))
		return
	}
	d, err := h.usecase.Update(c.Request.Context(), p, id, payload.ToEntity())
	if err != nil {
		writeError(c, mapDeviceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDevice(d))
}

// DeleteDevice godoc
// @Summary  Deactivate a device (moderators)
// @Tags     devices
// @Param    id  path  int  true  "device id"
// @Success  204
// @Failure  403  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /devices/{id} [delete]
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), p, id); err != nil {
		writeError(c, mapDeviceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
