package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incident-ops/rcad/pkg/services"
)

// errorBody is the JSON envelope for every error response.
type errorBody struct {
	Error string `json:"error"`
}

// mapServiceError translates service-layer errors to HTTP responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, errorBody{Error: validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid status transition"})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorBody{Error: "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, errorBody{Error: "resource already exists"})
		return
	}

	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

// notFound writes a 404 with a resource-specific message.
func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorBody{Error: message})
}

// notFoundOrError writes a resource-specific 404 for ErrNotFound and defers
// to mapServiceError for anything else.
func notFoundOrError(c *gin.Context, err error, message string) {
	if errors.Is(err, services.ErrNotFound) {
		notFound(c, message)
		return
	}
	mapServiceError(c, err)
}

// badRequest writes a 400 with the given message.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: message})
}
