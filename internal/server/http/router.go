package httpserver

import "net/http"

// NewRouter mounts the API, the health check and the UI assets on one mux.
func NewRouter(h *Handler, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	mux.Handle("/healthz", h)
	RegisterStaticRoutes(mux, webDir)
	return mux
}
