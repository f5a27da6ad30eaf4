package rest

//go:generate moq -out search_service_mock_test.go -pkg rest . searchService
//go:generate moq -out history_service_mock_test.go -pkg rest . historyService
//go:generate moq -out consultation_service_mock_test.go -pkg rest . consultationService
//go:generate moq -out catalog_service_mock_test.go -pkg rest . catalogService
//go:generate moq -out token_validator_mock_test.go -pkg rest . tokenValidator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noKeywords(context.Context, []domain.ServiceListing) error { return nil }

func asUser(r *http.Request, id int64) *http.Request {
	ctx := ctxutil.WithUserID(r.Context(), id)
	ctx = ctxutil.WithUserRole(ctx, string(domain.RoleStandardUser))
	return r.WithContext(ctx)
}

func asAdmin(r *http.Request, id int64) *http.Request {
	ctx := ctxutil.WithUserID(r.Context(), id)
	ctx = ctxutil.WithUserRole(ctx, string(domain.RoleAdmin))
	return r.WithContext(ctx)
}

func newRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v), rec.Body.String())
	return v
}
