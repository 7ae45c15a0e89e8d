package handler

import "net/http"

// Health reports service liveness and which backend is serving.
type Health struct {
	catalogService CatalogService
	version        string
}

// NewHealth creates a new Health handler.
func NewHealth(catalogService CatalogService, version string) *Health {
	return &Health{
		catalogService: catalogService,
		version:        version,
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Mode    string `json:"mode"`
	Version string `json:"version"`
}

// Check handles GET /healthz. Mode is "postgres" under a database
// backend and "memory" when the service is running degraded.
func (h *Health) Check(w http.ResponseWriter, _ *http.Request) {
	mode := "postgres"
	if h.catalogService.Degraded() {
		mode = "memory"
	}

	writeData(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Mode:    mode,
		Version: h.version,
	})
}
