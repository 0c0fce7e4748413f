// Package handlers adapts the use cases to HTTP.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/pkg/errcodes"
)

func getPagingInfo(r *http.Request) (dtos.APIPagingDto, error) {
	var paging dtos.APIPagingDto
	var err error

	if paging.Skip, err = queryInt(r, "skip"); err != nil {
		return paging, err
	}
	if paging.Limit, err = queryInt(r, "limit"); err != nil {
		return paging, err
	}
	return paging, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errcodes.Invalid("%s must be an integer", name)
	}
	return n, nil
}

func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, errcodes.Invalid("%s must be a positive integer", name)
	}
	return uint(id), nil
}

// queryID reads an optional id filter. Zero means absent.
func queryID(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, errcodes.Invalid("%s must be a positive integer", name)
	}
	return uint(id), nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errcodes.Invalid("invalid request body")
	}
	return nil
}
