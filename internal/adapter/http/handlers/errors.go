package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"
	"smartorders/pkg"
	"smartorders/pkg/reqctx"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// principal returns the caller set by the auth middleware, writing a 401
// when there is none.
func principal(c *gin.Context) (entities.Principal, bool) {
	p, ok := reqctx.PrincipalFrom(c.Request.Context())
	if !ok {
		writeError(c, errUnauthorized)
		return entities.Principal{}, false
	}
	return p, true
}

// int64Param parses a path parameter, writing a 400 when it is not a
// non-negative integer.
func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v < 0 {
		writeError(c, errInvalidRequest)
		return 0, false
	}
	return v, true
}

func mapOrderError(err error) *pkg.AppError {
	var perr *usecase.PartialSubmissionError
	switch {
	case errors.As(err, &perr):
		return pkg.NewDomainError("PARTIAL_SUBMISSION", "Order "+strconv.FormatInt(perr.OrderID, 10)+" was saved but not formed; submit again to retry", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAddressRequired), errors.Is(err, usecase.ErrInvalidAddress):
		return pkg.NewDomainErrorSimple("ADDRESS_REQUIRED", "A delivery address is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return errUnauthorized
	case errors.Is(err, usecase.ErrModeratorRequired):
		return pkg.NewDomainErrorSimple("MODERATOR_REQUIRED", "Moderator access required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Order belongs to another client", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Order status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrRemoteRequestFailed):
		return pkg.NewDomainError("REMOTE_REQUEST_FAILED", "Order service request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoActiveDraft):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_DRAFT", "There is no active draft", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_EMPTY", "Clear the current draft first", http.StatusConflict)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Device is not in the draft", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyDraft):
		return pkg.NewDomainErrorSimple("EMPTY_DRAFT", "Draft has no devices", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidDeviceID),
		errors.Is(err, usecase.ErrInvalidDevice),
		errors.Is(err, usecase.ErrInvalidService),
		errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeviceInactive):
		return pkg.NewDomainErrorSimple("DEVICE_INACTIVE", "Device is not available", http.StatusConflict)
	default:
		return mapOrderError(err)
	}
}

func mapDeviceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceID), errors.Is(err, usecase.ErrInvalidDevicePayload):
		return pkg.NewDomainErrorSimple("INVALID_DEVICE", "Invalid device payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeviceAlreadyExists):
		return pkg.NewDomainErrorSimple("DEVICE_ALREADY_EXISTS", "Device already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrModeratorRequired):
		return pkg.NewDomainErrorSimple("MODERATOR_REQUIRED", "Moderator access required", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
