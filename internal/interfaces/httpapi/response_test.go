package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["apiVersion"].(string); got != googleAPIVersion {
		t.Fatalf("apiVersion got=%v want=%s", body["apiVersion"], googleAPIVersion)
	}
	return body
}

func TestWriteSuccess(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusCreated, map[string]string{"run_id": "abc"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusCreated)
	}
	body := decodeEnvelope(t, rec)
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: max_period must be an integer", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	errorObj, ok := decodeEnvelope(t, rec)["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("error status got=%v want=INVALID_ARGUMENT", errorObj["status"])
	}
	items, _ := errorObj["errors"].([]any)
	if len(items) != 1 {
		t.Fatalf("error items got=%d want=1", len(items))
	}
}

func TestWriteInternalErrorHidesCause(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeInternalError(rec)

	errorObj, _ := decodeEnvelope(t, rec)["error"].(map[string]any)
	if got, _ := errorObj["message"].(string); got != "internal server error" {
		t.Fatalf("message got=%q", got)
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{"invalid input", fmt.Errorf("%w: leagueID", usecase.ErrInvalidInput), http.StatusBadRequest, "invalidInput"},
		{"not found", fmt.Errorf("%w: entry=9", usecase.ErrNotFound), http.StatusNotFound, "notFound"},
		{
			"league wraps dependency",
			fmt.Errorf("%w: league=314: %w", usecase.ErrLeagueUnavailable, usecase.ErrDependencyUnavailable),
			http.StatusBadGateway, "leagueUnavailable",
		},
		{"dependency", fmt.Errorf("fetch live: %w", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable, "dependencyUnavailable"},
		{"deadline", fmt.Errorf("fetch picks: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "deadlineExceeded"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Reason != tt.reason {
				t.Fatalf("got=%d/%s want=%d/%s", got.HTTPStatus, got.Reason, tt.status, tt.reason)
			}
		})
	}
}
