package handlers

import (
	"net/http"
	"strconv"

	"planner/internal/logger"
	"planner/internal/models"
)

type ReportHandler struct {
	reports ReportService
}

func NewReportHandler(reports ReportService) ReportHandler {
	return ReportHandler{reports: reports}
}

// TaskCompletionReport serves
// GET /reports/tasks/completion?user_id&start_date&end_date[&finished][&importance].
func (h *ReportHandler) TaskCompletionReport(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, err := queryID(r, "user_id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := queryDate(r, "start_date")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := queryDate(r, "end_date")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.CompletionFilter{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	}

	if raw := r.URL.Query().Get("finished"); raw != "" {
		finished, err := strconv.ParseBool(raw)
		if err != nil {
			responseWithError(w, http.StatusBadRequest, "invalid finished "+strconv.Quote(raw))
			return
		}
		filter.Finished = &finished
	}
	if raw := r.URL.Query().Get("importance"); raw != "" {
		importance, err := strconv.Atoi(raw)
		if err != nil {
			responseWithError(w, http.StatusBadRequest, "invalid importance "+strconv.Quote(raw))
			return
		}
		filter.MinImportance = &importance
	}

	report, err := h.reports.TaskCompletionReport(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, report)
}

// NoteActivityReport serves
// GET /reports/notes/activity?user_id&start_date&end_date.
func (h *ReportHandler) NoteActivityReport(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, err := queryID(r, "user_id")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := queryDate(r, "start_date")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := queryDate(r, "end_date")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.reports.NoteActivityReport(r.Context(), userID, start, end)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, report)
}
