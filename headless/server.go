package headless

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter exposes metrics, status and a PNG of the current frame.
func NewRouter(r *Runner, m *Metrics) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)

	mux.Handle("/metrics", m.Handler())
	mux.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, r.Status())
	})
	mux.Get("/snapshot.png", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if err := WritePNG(w, r.Snapshot()); err != nil {
			log.Printf("Snapshot error: %v", err)
		}
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encode error: %v", err)
	}
}
