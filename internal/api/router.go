package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/connectfour-go/internal/api/handler"
	"github.com/mcoot/connectfour-go/internal/api/middleware"
	"github.com/mcoot/connectfour-go/internal/services/analysis"
	"github.com/mcoot/connectfour-go/internal/services/game"
)

// Defaults for the analysis limits. Moves are single digits, so a wider
// board could not be reached by a move sequence anyway.
const (
	DefaultMaxLookahead = 6
	DefaultMaxHeight    = 10
	DefaultMaxWidth     = 10
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	GameController  *game.Controller
	AnalysisService *analysis.Service
	// Analysis limits; zero means the matching default
	MaxLookahead int
	MaxHeight    int
	MaxWidth     int
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	limits := handler.AnalysisLimits{
		MaxLookahead: orDefault(cfg.MaxLookahead, DefaultMaxLookahead),
		MaxHeight:    orDefault(cfg.MaxHeight, DefaultMaxHeight),
		MaxWidth:     orDefault(cfg.MaxWidth, DefaultMaxWidth),
	}

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	analysisHandler := handler.NewAnalysisHandler(cfg.AnalysisService, limits)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/analysis", analysisHandler.Analyze).Methods(http.MethodPost)

	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
