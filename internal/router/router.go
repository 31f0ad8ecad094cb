package router

import (
	"MaskingBackend/config"
	"MaskingBackend/internal/handler"
	"MaskingBackend/internal/service"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func setCORSHeaders(frontURL string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := frontURL
			if origin == "" {
				origin = r.Header.Get("Origin")
			}
			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// Bodies carry whole images, only their size is logged.
		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"bytes_in":   r.ContentLength,
			"duration":   time.Since(start).String(),
		}).Info("Handled request")
	})
}

// NewRouter parses the editing page template from cfg.WebDir and mounts all routes.
func NewRouter(s service.MaskingService, cfg *config.Config) (*mux.Router, error) {
	page, err := template.ParseFiles(filepath.Join(cfg.WebDir, "index.html"))
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	r.Use(loggingMiddleware)
	r.Use(setCORSHeaders(cfg.FrontURL))

	r.HandleFunc("/", handler.Landing(s)).Methods("GET")
	r.HandleFunc("/masking/{category}/{index:[0-9]+}", handler.MaskingPage(page)).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/masking_data/{category}/{index:[0-9]+}", handler.GetMaskingData(s)).Methods("GET")
	api.HandleFunc("/save_mask/{category}/{index:[0-9]+}", handler.SaveMask(s)).Methods("POST", "OPTIONS")
	api.HandleFunc("/categories", handler.ListCategories(s)).Methods("GET")
	api.HandleFunc("/thumbnail/{category}/{index:[0-9]+}", handler.GetThumbnail(s)).Methods("GET")
	api.HandleFunc("/annotations/{category}", handler.ListAnnotations(s)).Methods("GET")

	staticDir := filepath.Join(cfg.WebDir, "static")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return r, nil
}
