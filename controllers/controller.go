package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/services"
)

const (
	HeaderTruncated = "X-Result-Truncated"
	HeaderLimit     = "X-Result-Limit"
)

// writeServiceError maps service errors onto HTTP status codes. Anything
// unrecognised is a 500 with a generic body; the cause is only logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		helper.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helper.WriteError(w, http.StatusNotFound, notFound)
	default:
		slog.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		helper.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func writeListing[T any](w http.ResponseWriter, listing models.Listing[T]) {
	if listing.Truncated {
		w.Header().Set(HeaderTruncated, "true")
		w.Header().Set(HeaderLimit, strconv.FormatInt(listing.Limit, 10))
	}
	items := listing.Items
	if items == nil {
		items = []T{}
	}
	helper.WriteJSON(w, http.StatusOK, items)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := helper.DecodeJSON(w, r, dst)
	switch {
	case err == nil:
		return true
	case errors.Is(err, helper.ErrBodyTooLarge):
		helper.WriteError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		helper.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	}
	return false
}
