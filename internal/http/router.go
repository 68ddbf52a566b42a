package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux (no third-party routing
// dependency) and adds request-id logging around every request.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	reqID := req.Header.Get("X-Request-Id")
	if reqID == "" {
		reqID = uuid.NewString()
	}
	w.Header().Set("X-Request-Id", reqID)

	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	r.mux.ServeHTTP(rec, req)

	r.logger.Info("http request",
		zap.String("request_id", reqID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// RegisterContactRoutes wires the read-only directory endpoints.
func (r *Router) RegisterContactRoutes(h *ContactHandler) {
	r.Handle("/api/contacts", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ListContacts(w, req)
	})

	// /api/contacts/export and /api/contacts/{id}
	r.Handle("/api/contacts/", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		suffix := strings.TrimPrefix(req.URL.Path, "/api/contacts/")
		if suffix == "" || strings.Contains(suffix, "/") {
			writeJSON(w, http.StatusNotFound, Fail("Route not found"))
			return
		}
		if suffix == "export" {
			h.ExportContacts(w, req)
			return
		}
		h.GetContact(w, req, suffix)
	})

	r.Handle("/api/locations", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ListLocations(w, req)
	})

	r.Handle("/api/provinces", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ListProvinces(w, req)
	})

	r.Handle("/api/states", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ListStates(w, req)
	})

	// generic JSON body for anything unmatched
	r.Handle("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, Fail("Route not found"))
	})
}

func (r *Router) RegisterHealthRoutes(h *HealthHandler) {
	r.Handle("/api/health", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Health(w, req)
	})
}
