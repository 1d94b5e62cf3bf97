package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"planner/internal/handlers"
	"planner/internal/handlers/dto"
	"planner/internal/logger"
	"planner/internal/models"
	"planner/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) ListTasksByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskService) MarkTaskComplete(ctx context.Context, id int64) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) GetTasksByDateAndStatus(ctx context.Context, userID int64, dueDate models.Date, finished bool) ([]*models.Task, error) {
	args := m.Called(ctx, userID, dueDate, finished)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskService) GetTasksInRange(ctx context.Context, userID int64, start, end models.Date) ([]*models.Task, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskService) PurgeOldTasks(ctx context.Context, userID int64, days int) (int64, error) {
	args := m.Called(ctx, userID, days)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubtaskService struct {
	mock.Mock
}

func (m *MockSubtaskService) CreateSubtask(ctx context.Context, subtask *models.Subtask) (*models.Subtask, error) {
	args := m.Called(ctx, subtask)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subtask), args.Error(1)
}

func (m *MockSubtaskService) GetSubtask(ctx context.Context, id int64) (*models.Subtask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subtask), args.Error(1)
}

func (m *MockSubtaskService) ListSubtasksByTask(ctx context.Context, taskID int64) ([]*models.Subtask, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subtask), args.Error(1)
}

func (m *MockSubtaskService) UpdateSubtask(ctx context.Context, id int64, patch models.SubtaskPatch) (*models.Subtask, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subtask), args.Error(1)
}

func (m *MockSubtaskService) DeleteSubtask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) TaskCompletionReport(ctx context.Context, filter models.CompletionFilter) (*models.CompletionReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompletionReport), args.Error(1)
}

func (m *MockReportService) NoteActivityReport(ctx context.Context, userID int64, start, end models.Date) (*models.NoteActivityReport, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NoteActivityReport), args.Error(1)
}

// newRouter wires mocks into the real route tree so tests exercise the
// same middleware and URL matching as production.
func newRouter(users *MockUserService, tasks *MockTaskService, subtasks *MockSubtaskService, reports *MockReportService) http.Handler {
	h := handlers.Handlers{
		Users:   handlers.NewUserHandler(users, nil, nil),
		Tasks:   handlers.NewTaskHandler(tasks, subtasks),
		Reports: handlers.NewReportHandler(reports),
	}
	return h.Routes()
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateUserReturns201(t *testing.T) {
	users := new(MockUserService)
	router := newRouter(users, nil, nil, nil)

	users.On("CreateUser", mock.Anything, "Ada", "ada@example.com").
		Return(&models.User{UserID: 1, Name: "Ada", Email: "ada@example.com"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/users", dto.CreateUserRequest{
		Name:  "Ada",
		Email: "ada@example.com",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(1), user.UserID)
	users.AssertExpectations(t)
}

func TestCreateUserBadBody(t *testing.T) {
	users := new(MockUserService)
	router := newRouter(users, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNotCalled(t, "CreateUser")
}

func TestGetUserNotFoundBody(t *testing.T) {
	users := new(MockUserService)
	router := newRouter(users, nil, nil, nil)

	users.On("GetUser", mock.Anything, int64(42)).
		Return(nil, service.NewNotFound("user", 42))

	rec := doRequest(t, router, http.MethodGet, "/users/42", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, service.CodeNotFound, body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestGetUserBadID(t *testing.T) {
	users := new(MockUserService)
	router := newRouter(users, nil, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/users/-5", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTaskDistinguishesNullFromOmitted(t *testing.T) {
	tasks := new(MockTaskService)
	router := newRouter(nil, tasks, nil, nil)

	var got models.TaskPatch
	tasks.On("UpdateTask", mock.Anything, int64(7), mock.AnythingOfType("models.TaskPatch")).
		Run(func(args mock.Arguments) {
			got = args.Get(2).(models.TaskPatch)
		}).
		Return(&models.Task{TaskID: 7, Title: "write report"}, nil)

	body := []byte(`{"title": "write report", "description": null}`)
	req := httptest.NewRequest(http.MethodPut, "/tasks/7", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.Title.IsSet())
	assert.True(t, got.Description.IsSet())
	assert.True(t, got.Description.IsNull())
	assert.False(t, got.DueDate.IsSet())
	assert.False(t, got.Importance.IsSet())
}

func TestMarkCompleteReturnsTask(t *testing.T) {
	tasks := new(MockTaskService)
	router := newRouter(nil, tasks, nil, nil)

	finished := models.Today()
	tasks.On("MarkTaskComplete", mock.Anything, int64(3)).
		Return(&models.Task{TaskID: 3, Title: "write report", Finished: true, DateFinished: &finished}, nil)

	rec := doRequest(t, router, http.MethodPost, "/tasks/3/complete", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var task models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.True(t, task.Finished)
	require.NotNil(t, task.DateFinished)
}

func TestFilterTasksParsesPath(t *testing.T) {
	tasks := new(MockTaskService)
	router := newRouter(nil, tasks, nil, nil)

	due := models.NewDate(2024, time.May, 1)
	tasks.On("GetTasksByDateAndStatus", mock.Anything, int64(1), due, false).
		Return([]*models.Task{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/tasks/filter/1/2024-05-01/false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks.AssertExpectations(t)
}

func TestFilterTasksBadDate(t *testing.T) {
	tasks := new(MockTaskService)
	router := newRouter(nil, tasks, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/tasks/filter/1/May-1st/false", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	tasks.AssertNotCalled(t, "GetTasksByDateAndStatus")
}

func TestCleanupTasksReturnsCount(t *testing.T) {
	tasks := new(MockTaskService)
	router := newRouter(nil, tasks, nil, nil)

	tasks.On("PurgeOldTasks", mock.Anything, int64(1), 30).Return(int64(4), nil)

	rec := doRequest(t, router, http.MethodDelete, "/tasks/cleanup/1/30", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.CleanupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body.Deleted)
	assert.NotEmpty(t, body.Message)
}

func TestListTaskSubtasks(t *testing.T) {
	subtasks := new(MockSubtaskService)
	router := newRouter(nil, new(MockTaskService), subtasks, nil)

	subtasks.On("ListSubtasksByTask", mock.Anything, int64(5)).
		Return([]*models.Subtask{{SubtaskID: 9, Title: "outline", TaskID: 5}}, nil)

	rec := doRequest(t, router, http.MethodGet, "/tasks/5/subtasks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []*models.Subtask
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].SubtaskID)
}

func TestCompletionReportQueryParams(t *testing.T) {
	reports := new(MockReportService)
	router := newRouter(nil, nil, nil, reports)

	var got models.CompletionFilter
	reports.On("TaskCompletionReport", mock.Anything, mock.AnythingOfType("models.CompletionFilter")).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(models.CompletionFilter)
		}).
		Return(&models.CompletionReport{TotalTasks: 4, CompletedTasks: 3, CompletionRate: 0.75}, nil)

	rec := doRequest(t, router, http.MethodGet,
		"/reports/tasks/completion?user_id=1&start_date=2024-01-01&end_date=2024-12-31&finished=true&importance=2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, models.NewDate(2024, time.January, 1), got.StartDate)
	require.NotNil(t, got.Finished)
	assert.True(t, *got.Finished)
	require.NotNil(t, got.MinImportance)
	assert.Equal(t, 2, *got.MinImportance)

	var report models.CompletionReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, int64(4), report.TotalTasks)
	assert.InDelta(t, 0.75, report.CompletionRate, 1e-9)
}

func TestCompletionReportMissingParams(t *testing.T) {
	reports := new(MockReportService)
	router := newRouter(nil, nil, nil, reports)

	rec := doRequest(t, router, http.MethodGet, "/reports/tasks/completion?user_id=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	reports.AssertNotCalled(t, "TaskCompletionReport")
}

func TestNoteActivityReport(t *testing.T) {
	reports := new(MockReportService)
	router := newRouter(nil, nil, nil, reports)

	reports.On("NoteActivityReport", mock.Anything, int64(1),
		models.NewDate(2024, time.January, 1), models.NewDate(2024, time.December, 31)).
		Return(&models.NoteActivityReport{TotalNotes: 12}, nil)

	rec := doRequest(t, router, http.MethodGet,
		"/reports/notes/activity?user_id=1&start_date=2024-01-01&end_date=2024-12-31", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var report models.NoteActivityReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, int64(12), report.TotalNotes)
}

func TestValidationErrorMapsTo400(t *testing.T) {
	users := new(MockUserService)
	router := newRouter(users, nil, nil, nil)

	users.On("UpdateUser", mock.Anything, int64(1), mock.Anything).
		Return(nil, service.NewValidationError("email", "must not be null"))

	rec := doRequest(t, router, http.MethodPut, "/users/1", map[string]any{"email": nil})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, service.CodeValidation, body["error"])
}

func TestRequestIDHeaderSet(t *testing.T) {
	users := new(MockUserService)
	router := newRouter(users, nil, nil, nil)

	users.On("ListUsers", mock.Anything).Return([]*models.User{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
