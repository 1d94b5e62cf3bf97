package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"planner/internal/handlers/dto"
	"planner/internal/logger"
	"planner/internal/models"
)

type TaskHandler struct {
	tasks    TaskService
	subtasks SubtaskService
}

func NewTaskHandler(tasks TaskService, subtasks SubtaskService) TaskHandler {
	return TaskHandler{tasks: tasks, subtasks: subtasks}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), request.ToTask())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.tasks.GetTask(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, task)
}

// ListTasks serves GET /tasks?user={id}.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, err := queryID(r, "user")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.tasks.ListTasksByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := h.tasks.UpdateTask(r.Context(), id, patch)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

// MarkComplete serves POST /tasks/{id}/complete.
func (h *TaskHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.tasks.MarkTaskComplete(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, task)
}

// ListTaskSubtasks serves GET /tasks/{id}/subtasks.
func (h *TaskHandler) ListTaskSubtasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := pathID(r, "id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	subtasks, err := h.subtasks.ListSubtasksByTask(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, subtasks)
}

// FilterTasks serves GET /tasks/filter/{user_id}/{date}/{finished}.
func (h *TaskHandler) FilterTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, err := pathID(r, "user_id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	dueDate, err := pathDate(r, "date")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	finished, err := pathBool(r, "finished")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.tasks.GetTasksByDateAndStatus(r.Context(), userID, dueDate, finished)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, tasks)
}

// RangeTasks serves GET /tasks/range/{user_id}/{start}/{end}.
func (h *TaskHandler) RangeTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, err := pathID(r, "user_id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := pathDate(r, "start")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := pathDate(r, "end")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.tasks.GetTasksInRange(r.Context(), userID, start, end)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, tasks)
}

// CleanupTasks serves DELETE /tasks/cleanup/{user_id}/{days}.
func (h *TaskHandler) CleanupTasks(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := h.tasks.PurgeOldTasks(r.Context(), userID, days)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, dto.CleanupResponse{
		Message: fmt.Sprintf("deleted tasks older than %d days for user %d", days, userID),
		Deleted: deleted,
	})
}
