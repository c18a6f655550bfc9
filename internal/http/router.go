package http

import (
	nethttp "net/http"

	"lastgame-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/presentation", handler.Presentation)
	mux.HandleFunc("/games/month", handler.MonthGames)
	mux.HandleFunc("/games/next", handler.NextGame)
	mux.HandleFunc("/standings", handler.Standings)
	return mux
}
