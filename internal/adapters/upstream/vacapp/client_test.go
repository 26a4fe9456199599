package vacapp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"herd-analytics/internal/middleware"
)

func newBackend(t *testing.T, wantToken string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+wantToken {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}
	// /bovines no existe en este despliegue: debe caer a /cattle
	mux.HandleFunc("/api/v1/bovines", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	mux.HandleFunc("/api/v1/cattle", auth(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":7,"name":"Aurora","gender":"Female","birthDate":"2021-03-01","breed":"Angus","stableId":2,"weight":null},
			{"id":8,"name":"Toro","gender":"Male","birthDate":"2019-01-10T00:00:00","breed":"Brahman","stableId":2,"weight":610.5}
		]`))
	}))
	mux.HandleFunc("/api/v1/vaccines", auth(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Aftosa 2024","vaccineType":"Aftosa","vaccineDate":"2024-05-01","bovineId":7}]`))
	}))
	mux.HandleFunc("/api/v1/stables", auth(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":2,"name":"Norte","limit":40}]`))
	}))

	return httptest.NewServer(mux)
}

func TestClient_ListsWithServiceToken(t *testing.T) {
	ts := newBackend(t, "svc-token")
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL + "/api/v1", Token: "svc-token", Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	animals, err := c.ListAnimals(context.Background())
	if err != nil {
		t.Fatalf("ListAnimals error: %v", err)
	}
	if len(animals) != 2 {
		t.Fatalf("expected 2 animals, got %d", len(animals))
	}
	if animals[0].Weight != nil {
		t.Fatalf("expected nil weight for null")
	}
	if animals[1].Weight == nil || *animals[1].Weight != 610.5 || animals[1].StableID != 2 {
		t.Fatalf("unexpected second animal: %#v", animals[1])
	}

	vaccines, err := c.ListVaccines(context.Background())
	if err != nil || len(vaccines) != 1 || vaccines[0].Type != "Aftosa" || vaccines[0].AnimalID != 7 {
		t.Fatalf("unexpected vaccines: %#v err=%v", vaccines, err)
	}

	stables, err := c.ListStables(context.Background())
	if err != nil || len(stables) != 1 || stables[0].Name != "Norte" {
		t.Fatalf("unexpected stables: %#v err=%v", stables, err)
	}
}

func TestClient_ForwardsRequestToken(t *testing.T) {
	ts := newBackend(t, "user-token")
	defer ts.Close()

	c, _ := NewClient(Config{BaseURL: ts.URL + "/api/v1"})

	ctx := middleware.WithToken(context.Background(), "user-token")
	if _, err := c.ListStables(ctx); err != nil {
		t.Fatalf("expected forwarded token to work, got %v", err)
	}

	_, err := c.ListStables(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without token, got %v", err)
	}
}

func TestClient_UpstreamDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, _ := NewClient(Config{BaseURL: ts.URL})
	if _, err := c.ListAnimals(context.Background()); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
