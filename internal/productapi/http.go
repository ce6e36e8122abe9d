package productapi

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"productapi/pkg/kit"
)

const (
	ServiceName = "product-api"
	Version     = "1.0.0"

	maxBodyBytes = 1 << 20

	minListDelay = 10 * time.Millisecond
	maxListDelay = 50 * time.Millisecond
)

type Server struct {
	Store *Store
	State *AppState
	Log   *zap.Logger

	// ListDelay simulates processing time on the list endpoint. Nil
	// disables the delay; tests rely on that.
	ListDelay func() time.Duration

	// SampleRequests feeds the request counter on the legacy /metrics
	// exposition. Nil falls back to the random sample the original
	// dashboard expects.
	SampleRequests func() int
}

// RandomListDelay returns a uniformly random delay in [10ms, 50ms).
func RandomListDelay() time.Duration {
	return minListDelay + time.Duration(rand.Int63n(int64(maxListDelay-minListDelay)))
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api/products", func(rr chi.Router) {
		rr.Get("/", s.handleList)
		rr.Post("/", s.handleCreate)
		rr.Get("/{id}", s.handleGet)
	})

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"service": "Product API",
		"version": Version,
		"endpoints": map[string]string{
			"health":   "/health",
			"ready":    "/ready",
			"products": "/api/products",
			"metrics":  "/metrics",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   ServiceName,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.State.Ready() {
		kit.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
		})
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": ServiceName,
	})
}

type listResponse struct {
	Success  bool      `json:"success"`
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}

type productResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	if s.ListDelay != nil {
		time.Sleep(s.ListDelay())
	}

	products := s.Store.List()
	if s.Log != nil {
		s.Log.Info("fetching all products", zap.Int("total", len(products)))
	}

	kit.WriteJSON(w, http.StatusOK, listResponse{
		Success:  true,
		Count:    len(products),
		Products: products,
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		// a non-integer id can never match a record
		kit.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	p, ok := s.Store.Get(id)
	if !ok {
		kit.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	kit.WriteJSON(w, http.StatusOK, productResponse{Success: true, Product: p})
}

// createProductReq keeps price and stock untyped: clients have always been
// allowed to send them as numbers or numeric strings.
type createProductReq struct {
	Name  *string `json:"name"`
	Price any     `json:"price"`
	Stock any     `json:"stock"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req createProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Name == nil || req.Price == nil || req.Stock == nil {
		kit.WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	price, perr := coerceFloat(req.Price)
	stock, serr := coerceInt(req.Stock)
	if perr != nil || serr != nil {
		kit.WriteError(w, http.StatusBadRequest, "Invalid field types")
		return
	}

	p := s.Store.Add(*req.Name, price, stock)
	if s.Log != nil {
		s.Log.Info("product created", zap.Int("id", p.ID), zap.String("name", p.Name))
	}

	kit.WriteJSON(w, http.StatusCreated, productResponse{Success: true, Product: p})
}

var errNotCoercible = errors.New("value not coercible")

func coerceFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, errNotCoercible
		}
		return f, nil
	default:
		return 0, errNotCoercible
	}
}

// coerceInt truncates fractional numbers toward zero and parses numeric
// strings.
func coerceInt(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, errNotCoercible
		}
		return n, nil
	default:
		return 0, errNotCoercible
	}
}
