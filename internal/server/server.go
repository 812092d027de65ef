package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"tgju/internal"
	"tgju/internal/cache"
	"tgju/internal/pipeline"
)

const welcomeMessage = "به وب‌سرویس قیمت ارز، طلا و سکه خوش آمدید!"

// Server exposes the extraction pipeline over HTTP. Only /all goes
// through the cache; category views and search re-fetch on every call.
type Server struct {
	extractor *pipeline.Extractor
	cache     *cache.Cache
	log       *log.Logger
}

func New(x *pipeline.Extractor, c *cache.Cache, logger *log.Logger) *Server {
	return &Server{extractor: x, cache: c, log: logger}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(recoverPanic)
	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/all", s.handleAll).Methods(http.MethodGet)
	r.HandleFunc("/currencies", s.handleCurrencies).Methods(http.MethodGet)
	r.HandleFunc("/gold", s.handleGold).Methods(http.MethodGet)
	r.HandleFunc("/coins", s.handleCoins).Methods(http.MethodGet)
	r.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	return r
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(welcomeMessage))
}

func (s *Server) handleAll(w http.ResponseWriter, r *http.Request) {
	env := s.cache.Get(r.Context(), func(ctx context.Context) internal.Envelope {
		start := time.Now()
		env := s.extractor.ExtractAll(ctx)
		s.log.Printf("extraction took %.2fs status=%s", time.Since(start).Seconds(), env.Status)
		return env
	})
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.extractor.CurrenciesOnly(r.Context()))
}

func (s *Server) handleGold(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.extractor.GoldOnly(r.Context()))
}

func (s *Server) handleCoins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.extractor.CoinsOnly(r.Context()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, internal.ErrorEnvelope("لطفا یک عبارت برای جستجو در پارامتر q وارد کنید."))
		return
	}
	writeJSON(w, http.StatusOK, s.extractor.Search(r.Context(), query))
}

// writeJSON keeps HTML escaping off so Persian display names reach the
// client as written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
