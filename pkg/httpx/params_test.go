package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestURLParamUUID(t *testing.T) {
	want := uuid.New()
	var got uuid.UUID
	var gotErr error

	r := chi.NewRouter()
	r.Get("/invoices/{id}", func(w http.ResponseWriter, req *http.Request) {
		got, gotErr = URLParamUUID(req, "id")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/invoices/"+want.String(), http.NoBody))
	if gotErr != nil || got != want {
		t.Fatalf("got %v, %v; want %v", got, gotErr, want)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/invoices/not-a-uuid", http.NoBody))
	if gotErr == nil {
		t.Fatal("expected error for malformed id")
	}
}
