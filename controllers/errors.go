package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pandugalih/kedai-pos/services"
)

var ErrNoPermission = errors.New("you do not have permission to perform this action")

// statusForServiceError memetakan taxonomy error dari services ke kode HTTP:
// validasi -> 400, not found -> 404, race pembayaran ganda -> 409, sisanya
// dianggap gangguan infra -> 500.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrTransaksiNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicatePayment):
		return http.StatusConflict
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrAmountMismatch),
		errors.Is(err, services.ErrUnknownMethod),
		errors.Is(err, services.ErrInvalidTransition):
		return http.StatusBadRequest
	}

	var unavailable *services.ItemUnavailableError
	if errors.As(err, &unavailable) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// userIDFromContext mengambil user id hasil decode token, nil untuk guest.
func userIDFromContext(c *gin.Context) *uint {
	v, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
