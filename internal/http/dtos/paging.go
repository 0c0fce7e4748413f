// Package dtos holds the JSON request and response bodies of the HTTP API.
package dtos

import "github.com/just-nibble/codehost/internal/domain"

// APIPagingDto is the skip/limit window read from the query string.
type APIPagingDto struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

func (p APIPagingDto) ToDomain() domain.Pagination {
	return domain.Pagination{Skip: p.Skip, Limit: p.Limit}
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
