package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerExtractionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/extraction", handler.GetExtraction)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/consistency", handler.GetConsistency)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/comparison", handler.GetComparison)
}

// Snapshot writes run a full extraction and block for its duration.
func registerSnapshotRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/snapshots/latest", handler.GetLatestSnapshot)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/snapshots", handler.CreateSnapshot)
}
