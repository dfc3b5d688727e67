package handlers

import (
	"errors"
	"net/http"

	"viaduct/services/registry"
)

// statusForError maps registry errors onto HTTP status codes.
func statusForError(err error) int {
	var ve registry.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var nf registry.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
