// Package apierr maps domain and service errors onto HTTP responses.
package apierr

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/gin-gonic/gin"
)

const internalMessage = "internal error"

var statuses = []struct {
	err    error
	status int
}{
	{grid.ErrOutOfBounds, http.StatusBadRequest},
	{grid.ErrInvalidDimensions, http.StatusBadRequest},
	{search.ErrMissingEndpoint, http.StatusUnprocessableEntity},
	{service.ErrConcurrentSearch, http.StatusConflict},
	{service.ErrGridBusy, http.StatusConflict},
	{dmn.ErrUsernameConflict, http.StatusConflict},
	{dmn.ErrInvalidCredentials, http.StatusUnauthorized},
	{dmn.ErrUsernameTooShort, http.StatusBadRequest},
	{dmn.ErrUsernameTooLong, http.StatusBadRequest},
	{dmn.ErrInvalidUsername, http.StatusBadRequest},
	{dmn.ErrWeakPassword, http.StatusBadRequest},
}

// Status returns the HTTP status for err, 500 when err is not a known failure.
func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// Message is the client-facing text for err. Unknown errors are not echoed.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return internalMessage
	}
	return err.Error()
}

// Write aborts the request with the status and message for err.
func Write(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(Status(err), gin.H{"error": Message(err)})
}
