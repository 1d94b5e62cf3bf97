package handlers

import (
	"encoding/json"
	"net/http"

	"planner/internal/handlers/dto"
	"planner/internal/logger"
	"planner/internal/models"
)

type UserHandler struct {
	users    UserService
	projects ProjectService
	notes    NoteService
}

func NewUserHandler(users UserService, projects ProjectService, notes NoteService) UserHandler {
	return UserHandler{users: users, projects: projects, notes: notes}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.users.CreateUser(r.Context(), request.Name, request.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.users.UpdateUser(r.Context(), id, patch)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// ListUserProjects serves GET /users/{id}/projects.
func (h *UserHandler) ListUserProjects(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	projects, err := h.projects.ListProjectsByUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, projects)
}

// ListUserNotes serves GET /users/{id}/notes.
func (h *UserHandler) ListUserNotes(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	notes, err := h.notes.ListNotesByUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, notes)
}
