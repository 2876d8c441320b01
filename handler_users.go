package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laracuentepedro/notely/internal/auth"
	"github.com/laracuentepedro/notely/internal/database"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key"`
	IsPremium bool      `json:"is_premium"`
}

func databaseUserToUser(u database.User) User {
	return User{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Email:     u.Email,
		APIKey:    u.APIKey,
		IsPremium: u.IsPremium,
	}
}

func (cfg *apiConfig) handlerUsersCreate(w http.ResponseWriter, r *http.Request) {
	type userInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input userInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if strings.TrimSpace(input.Email) == "" {
		respondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if input.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Password is required")
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Couldn't hash password")
		return
	}

	now := time.Now().UTC()
	user, err := cfg.db.CreateUser(r.Context(), database.CreateUserParams{
		ID:             uuid.New(),
		CreatedAt:      now,
		UpdatedAt:      now,
		Email:          input.Email,
		HashedPassword: hashed,
		APIKey:         auth.MakeAPIKey(),
	})
	if err != nil {
		log.Printf("Error creating user: %s", err)
		respondWithError(w, http.StatusInternalServerError, "Couldn't create user")
		return
	}

	respondWithJSON(w, http.StatusCreated, databaseUserToUser(user))
}

func (cfg *apiConfig) handlerUsersGet(w http.ResponseWriter, r *http.Request, user database.User) {
	respondWithJSON(w, http.StatusOK, databaseUserToUser(user))
}
