package routes

import (
	"smartorders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDevices     = "/devices"
	PathDraft       = "/draft"
	PathOrders      = "/orders"
	PathSmartOrders = "/smart-orders"
)

func addDeviceRoutes(rg *gin.RouterGroup, h *handlers.DeviceHandler, requireAuth gin.HandlerFunc) {
	devices := rg.Group(PathDevices)
	{
		devices.GET("", h.ListDevices)
		devices.GET("/:id", h.GetDevice)
		devices.POST("", requireAuth, h.CreateDevice)
		devices.PUT("/:id", requireAuth, h.UpdateDevice)
		devices.DELETE("/:id", requireAuth, h.DeleteDevice)
	}
}

func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	draft := rg.Group(PathDraft)
	{
		draft.GET("", h.GetDraft)
		draft.POST("", h.StartDraft)
		draft.DELETE("", h.ClearDraft)
		draft.POST("/devices", h.AddDevice)
		draft.PUT("/devices/:device_id", h.SetQuantity)
		draft.DELETE("/devices/:device_id", h.RemoveDevice)
		draft.POST("/services", h.AddService)
		draft.DELETE("/services/:service_id", h.RemoveService)
		draft.POST("/submit", h.SubmitDraft)
	}
}

// addOrderRoutes serves the caller's synchronized order list.
func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.ListOrders)
		orders.POST("/refresh", h.RefreshOrders)
		orders.PATCH("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
	}
}

// addOrderServiceRoutes serves the order service API used by orderapi.Client.
func addOrderServiceRoutes(rg *gin.RouterGroup, h *handlers.OrderServiceHandler) {
	smart := rg.Group(PathSmartOrders)
	{
		smart.GET("", h.ListOrders)
		smart.GET("/:id", h.GetOrder)
		smart.PUT("/:id", h.SaveOrder)
		smart.PUT("/:id/form", h.FormOrder)
		smart.PUT("/:id/complete", h.CompleteOrder)
		smart.PUT("/:id/reject", h.RejectOrder)
		smart.DELETE("/:id", h.DeleteOrder)
	}
}
