package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPagingInfo(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/users?skip=10&limit=5", nil)
	paging, err := getPagingInfo(r)
	require.NoError(t, err)
	assert.Equal(t, 10, paging.Skip)
	assert.Equal(t, 5, paging.Limit)

	r = httptest.NewRequest(http.MethodGet, "/users", nil)
	paging, err = getPagingInfo(r)
	require.NoError(t, err)
	assert.Zero(t, paging.Skip)
	assert.Zero(t, paging.Limit)

	r = httptest.NewRequest(http.MethodGet, "/users?skip=ten", nil)
	_, err = getPagingInfo(r)
	assert.ErrorIs(t, err, errcodes.ErrInvalid)
	assert.EqualError(t, err, "skip must be an integer")
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{raw: "7", want: 7},
		{raw: "0", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.raw)
			got, err := pathID(r, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, errcodes.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryID(t *testing.T) {
	id, err := queryID(httptest.NewRequest(http.MethodGet, "/repositories", nil), "owner_id")
	require.NoError(t, err)
	assert.Zero(t, id)

	id, err = queryID(httptest.NewRequest(http.MethodGet, "/repositories?owner_id=3", nil), "owner_id")
	require.NoError(t, err)
	assert.EqualValues(t, 3, id)

	_, err = queryID(httptest.NewRequest(http.MethodGet, "/repositories?owner_id=x", nil), "owner_id")
	assert.ErrorIs(t, err, errcodes.ErrInvalid)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthUnavailable(t *testing.T) {
	h := NewHealthHandler(pingFunc(func(context.Context) error { return errors.New("refused") }), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","database":"unreachable"}`, rec.Body.String())
}
