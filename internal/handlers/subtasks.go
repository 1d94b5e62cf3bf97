package handlers

import (
	"encoding/json"
	"net/http"

	"planner/internal/handlers/dto"
	"planner/internal/logger"
	"planner/internal/models"
)

type SubtaskHandler struct {
	subtasks SubtaskService
}

func NewSubtaskHandler(subtasks SubtaskService) SubtaskHandler {
	return SubtaskHandler{subtasks: subtasks}
}

func (h *SubtaskHandler) CreateSubtask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateSubtaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	subtask, err := h.subtasks.CreateSubtask(r.Context(), &models.Subtask{
		Title:       request.Title,
		Description: request.Description,
		TaskID:      request.TaskID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusCreated, subtask)
}

func (h *SubtaskHandler) GetSubtask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	subtask, err := h.subtasks.GetSubtask(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, subtask)
}

func (h *SubtaskHandler) UpdateSubtask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch models.SubtaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	subtask, err := h.subtasks.UpdateSubtask(r.Context(), id, patch)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, subtask)
}

func (h *SubtaskHandler) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.subtasks.DeleteSubtask(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, map[string]string{"message": "subtask deleted"})
}
