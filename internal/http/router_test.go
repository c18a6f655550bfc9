package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"lastgame-service/internal/app/presentation"
	"lastgame-service/internal/dates"
	"lastgame-service/internal/http/handlers"
	"lastgame-service/internal/store"
	"lastgame-service/internal/testutil"
)

func TestRouterRegistersRoutes(t *testing.T) {
	resolver, err := dates.NewResolver(dates.DefaultZone)
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	svc := presentation.NewService(&testutil.StubProvider{}, resolver, store.NewDayCache(), nil, presentation.Config{TeamID: 137})
	router := NewRouter(handlers.NewHandler(svc, nil, nil))

	paths := []string{"/health", "/ready", "/presentation", "/games/month", "/games/next", "/standings"}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, path, nil))
		if rec.Code == nethttp.StatusNotFound {
			t.Fatalf("expected %s to be routed", path)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/nope", nil))
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("expected unknown path to 404, got %d", rec.Code)
	}
}
