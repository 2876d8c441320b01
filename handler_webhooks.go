package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/laracuentepedro/notely/internal/auth"
)

func (cfg *apiConfig) handlerPaymentsWebhook(w http.ResponseWriter, r *http.Request) {
	apiKey, err := auth.GetAPIKey(r.Header)
	if err != nil {
		if errors.Is(err, auth.ErrNoAPIKey) {
			respondWithError(w, http.StatusUnauthorized, "Couldn't find api key")
		} else {
			respondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	if apiKey != cfg.paymentsKey {
		respondWithError(w, http.StatusUnauthorized, "Invalid api key")
		return
	}

	type webhookRequest struct {
		Event string `json:"event"`
		Data  struct {
			UserID uuid.UUID `json:"user_id"`
		} `json:"data"`
	}

	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	// ignore any event other than a completed upgrade
	if req.Event != "user.upgraded" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := cfg.db.UpgradeUserToPremium(r.Context(), req.Data.UserID); err != nil {
		respondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
