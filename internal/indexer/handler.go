package indexer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"go.uber.org/zap"
)

// API serves the read-only HTTP interface over the indexed state.
type API struct {
	log     *zap.Logger
	store   *Store
	metrics *Metrics
}

// NewAPI creates the HTTP API over the given store.
func NewAPI(log *zap.Logger, store *Store, metrics *Metrics) *API {
	return &API{log: log, store: store, metrics: metrics}
}

// Router builds the HTTP route table.
func (a *API) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(a.countRequests)

	r.HandleFunc("/v1/season", a.handleCurrentSeason).Methods(http.MethodGet)
	r.HandleFunc("/v1/seasons/{index:[0-9]+}", a.handleSeason).Methods(http.MethodGet)
	r.HandleFunc("/v1/seasons/{index:[0-9]+}/leaderboard", a.handleLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/v1/seasons/{index:[0-9]+}/commitments/{address}", a.handleCommitment).Methods(http.MethodGet)
	r.HandleFunc("/v1/players/{address}", a.handlePlayer).Methods(http.MethodGet)
	r.HandleFunc("/healthz", a.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", a.metrics.Handler()).Methods(http.MethodGet)

	return r
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (a *API) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		a.metrics.ObserveRequest(route, strconv.Itoa(sw.status))
	})
}

func (a *API) handleCurrentSeason(w http.ResponseWriter, r *http.Request) {
	index, err := a.store.CurrentSeason(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}
	season, err := a.store.Season(r.Context(), index)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, season)
}

func (a *API) handleSeason(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(mux.Vars(r)["index"])
	season, err := a.store.Season(r.Context(), index)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, season)
}

func (a *API) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(mux.Vars(r)["index"])
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := a.store.Leaderboard(r.Context(), index, limit)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, map[string]any{
		"season":  index,
		"entries": entries,
	})
}

func (a *API) handleCommitment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, _ := strconv.Atoi(vars["index"])
	addr, ok := a.parseAddress(w, vars["address"])
	if !ok {
		return
	}

	digest, err := a.store.Commitment(r.Context(), index, addr)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, map[string]any{
		"season":  index,
		"address": addr,
		"digest":  digest,
	})
}

func (a *API) handlePlayer(w http.ResponseWriter, r *http.Request) {
	addr, ok := a.parseAddress(w, mux.Vars(r)["address"])
	if !ok {
		return
	}

	summary, err := a.store.PlayerSummary(r.Context(), addr)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, summary)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Ping(r.Context()); err != nil {
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// parseAddress validates the Neo address path variable and returns its
// canonical form.
func (a *API) parseAddress(w http.ResponseWriter, s string) (string, bool) {
	h, err := address.StringToUint160(s)
	if err != nil {
		http.Error(w, "invalid address", http.StatusBadRequest)
		return "", false
	}
	return address.Uint160ToString(h), true
}

func (a *API) respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Warn("failed to write response", zap.Error(err))
	}
}

func (a *API) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	a.log.Error("store read failed", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
