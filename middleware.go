package main

import (
	"errors"
	"net/http"

	"github.com/laracuentepedro/notely/internal/auth"
	"github.com/laracuentepedro/notely/internal/database"
)

type authedHandler func(http.ResponseWriter, *http.Request, database.User)

// middlewareAuth resolves the ApiKey credential to a user. Requests with no
// credential are rejected as unauthorized; a repeated Authorization header is
// a malformed request, not an auth failure.
func (cfg *apiConfig) middlewareAuth(handler authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiKey, err := auth.GetAPIKey(r.Header)
		if err != nil {
			if errors.Is(err, auth.ErrNoAPIKey) {
				respondWithError(w, http.StatusUnauthorized, "Couldn't find api key")
			} else {
				respondWithError(w, http.StatusBadRequest, err.Error())
			}
			return
		}

		user, err := cfg.db.GetUserByAPIKey(r.Context(), apiKey)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid api key")
			return
		}

		handler(w, r, user)
	}
}
