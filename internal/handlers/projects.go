package handlers

import (
	"encoding/json"
	"net/http"

	"planner/internal/handlers/dto"
	"planner/internal/logger"
	"planner/internal/models"
)

type ProjectHandler struct {
	projects ProjectService
}

func NewProjectHandler(projects ProjectService) ProjectHandler {
	return ProjectHandler{projects: projects}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	project, err := h.projects.CreateProject(r.Context(), &models.Project{
		Title:  request.Title,
		UserID: request.UserID,
		Color:  request.Color,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projects.GetProject(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch models.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	project, err := h.projects.UpdateProject(r.Context(), id, patch)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.projects.DeleteProject(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}
