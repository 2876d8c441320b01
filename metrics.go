package main

import (
	"fmt"
	"log"
	"net/http"
)

const metricsTemplate = `<html>
	<body>
		<h1>Welcome, Notely Admin</h1>
		<p>Notely has been visited %d times!</p>
	</body>
</html>`

func (cfg *apiConfig) middlewareCountServerHit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg.fileserverHits.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (cfg *apiConfig) metrics() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(200)
		w.Write(fmt.Appendf(nil, metricsTemplate, cfg.fileserverHits.Load()))
	})
}

func (cfg *apiConfig) handlerReset(w http.ResponseWriter, r *http.Request) {
	if cfg.platform != "dev" {
		respondWithError(w, http.StatusForbidden, "Reset is only allowed in dev")
		return
	}

	if err := cfg.db.DeleteAllUsers(r.Context()); err != nil {
		log.Printf("Error deleting users: %s", err)
		respondWithError(w, http.StatusInternalServerError, "Couldn't reset users")
		return
	}

	cfg.fileserverHits.Store(0)
	w.Header().Add("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(200)
	w.Write([]byte("Hits counter and users reset"))
}
