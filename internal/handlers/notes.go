package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"planner/internal/handlers/dto"
	"planner/internal/logger"
	"planner/internal/models"
)

type NoteHandler struct {
	notes NoteService
}

func NewNoteHandler(notes NoteService) NoteHandler {
	return NoteHandler{notes: notes}
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	note, err := h.notes.CreateNote(r.Context(), &models.Note{
		Title:       request.Title,
		Description: request.Description,
		UserID:      request.UserID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	note, err := h.notes.GetNote(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch models.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	note, err := h.notes.UpdateNote(r.Context(), id, patch)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.notes.DeleteNote(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, map[string]string{"message": "note deleted"})
}

// CleanupNotes serves DELETE /notes/cleanup/{user_id}/{days}.
func (h *NoteHandler) CleanupNotes(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, err := pathID(r, "user_id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	days, err := pathInt(r, "days")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.notes.PurgeOldNotes(r.Context(), userID, days)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, dto.CleanupResponse{
		Message: fmt.Sprintf("deleted notes older than %d days for user %d", days, userID),
		Deleted: deleted,
	})
}
