package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
)

func TestChain_OrderIsOutermostFirst(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("a"), mark("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := strings.Join(order, ","); got != "a,b,handler" {
		t.Fatalf("got=%s want=a,b,handler", got)
	}
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	h := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("picks missing")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/314/extraction", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "picks missing") {
		t.Fatalf("panic value leaked into response: %s", rec.Body.String())
	}
}

func TestRouter_SwaggerDisabled(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubExtractor{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}
