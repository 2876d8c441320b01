package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laracuentepedro/notely/internal/database"
)

type Note struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Body      string    `json:"body"`
	UserID    uuid.UUID `json:"user_id"`
}

func databaseNoteToNote(n database.Note) Note {
	return Note{
		ID:        n.ID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Body:      n.Body,
		UserID:    n.UserID,
	}
}

func (cfg *apiConfig) handlerNotesCreate(w http.ResponseWriter, r *http.Request, user database.User) {
	type noteInput struct {
		Body string `json:"body"`
	}

	var input noteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if strings.TrimSpace(input.Body) == "" {
		respondWithError(w, http.StatusBadRequest, "Note body is required")
		return
	}

	now := time.Now().UTC()
	note, err := cfg.db.CreateNote(r.Context(), database.CreateNoteParams{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Body:      input.Body,
		UserID:    user.ID,
	})
	if err != nil {
		log.Printf("Error creating note: %s", err)
		respondWithError(w, http.StatusInternalServerError, "Couldn't create note")
		return
	}

	respondWithJSON(w, http.StatusCreated, databaseNoteToNote(note))
}

func (cfg *apiConfig) handlerNotesList(w http.ResponseWriter, r *http.Request, user database.User) {
	notes, err := cfg.db.GetNotesForUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing notes: %s", err)
		respondWithError(w, http.StatusInternalServerError, "Couldn't retrieve notes")
		return
	}

	out := []Note{}
	for _, n := range notes {
		out = append(out, databaseNoteToNote(n))
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (cfg *apiConfig) handlerNotesGet(w http.ResponseWriter, r *http.Request, user database.User) {
	noteID, err := uuid.Parse(r.PathValue("noteID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := cfg.db.GetNote(r.Context(), noteID)
	if err != nil || note.UserID != user.ID {
		respondWithError(w, http.StatusNotFound, "Note not found")
		return
	}

	respondWithJSON(w, http.StatusOK, databaseNoteToNote(note))
}

func (cfg *apiConfig) handlerNotesDelete(w http.ResponseWriter, r *http.Request, user database.User) {
	noteID, err := uuid.Parse(r.PathValue("noteID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := cfg.db.GetNote(r.Context(), noteID)
	if err != nil || note.UserID != user.ID {
		respondWithError(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := cfg.db.DeleteNote(r.Context(), note.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Couldn't delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
