package goal

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/service"
	"github.com/carson-networks/money-tracker/internal/storage"
)

type mockGoalService struct {
	mock.Mock
}

func (m *mockGoalService) Goals(ctx context.Context) []ledger.Goal {
	goals, _ := m.Called(ctx).Get(0).([]ledger.Goal)
	return goals
}

func (m *mockGoalService) GoalProgress(ctx context.Context) ledger.GoalProgress {
	return m.Called(ctx).Get(0).(ledger.GoalProgress)
}

func (m *mockGoalService) CreateGoal(ctx context.Context, input service.GoalInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockGoalService) UpdateGoal(ctx context.Context, input service.GoalInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *mockGoalService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T, svc *mockGoalService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_ListGoals(t *testing.T) {
	svc := new(mockGoalService)
	svc.On("Goals", mock.Anything).Return([]ledger.Goal{
		{ID: "g2", Text: "Learn piano", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "g1", Text: "Visit Japan", Notes: "Kyoto in spring", IsCompleted: true},
	})

	resp := newTestAPI(t, svc).Get("/v1/goal")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListGoalsOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, []Goal{
		{ID: "g2", Text: "Learn piano", CreatedAt: "2024-02-01T00:00:00Z"},
		{ID: "g1", Text: "Visit Japan", Notes: "Kyoto in spring", IsCompleted: true},
	}, body.Body.Goals)
}

func TestHTTP_GoalProgress(t *testing.T) {
	svc := new(mockGoalService)
	svc.On("GoalProgress", mock.Anything).Return(ledger.GoalProgress{Total: 3, Completed: 1, Pending: 2})

	resp := newTestAPI(t, svc).Get("/v1/goal/progress")

	require.Equal(t, http.StatusOK, resp.Code)
	var body GoalProgressOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, 3, body.Body.Total)
	assert.Equal(t, 2, body.Body.Pending)
}

func TestHTTP_CreateGoal(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockGoalService)
	svc.On("CreateGoal", mock.Anything, service.GoalInput{Text: "Run a marathon", Notes: "Berlin"}).Return(id, nil)
	api := newTestAPI(t, svc)

	resp := api.Post("/v1/goal", GoalBody{Text: "Run a marathon", Notes: "Berlin"})
	require.Equal(t, http.StatusCreated, resp.Code)
	var body CreateGoalOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, id.String(), body.Body.ID)

	assert.Equal(t, http.StatusUnprocessableEntity, api.Post("/v1/goal", map[string]any{"notes": "no text"}).Code)
	svc.AssertNumberOfCalls(t, "CreateGoal", 1)
}

func TestHTTP_UpdateAndDeleteGoal(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	missing := uuid.Must(uuid.NewV4())
	svc := new(mockGoalService)
	svc.On("UpdateGoal", mock.Anything, service.GoalInput{ID: id, Text: "Run a marathon", IsCompleted: true}).Return(nil)
	svc.On("DeleteGoal", mock.Anything, id).Return(nil)
	svc.On("DeleteGoal", mock.Anything, missing).Return(storage.ErrNotFound)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusNoContent,
		api.Put("/v1/goal/"+id.String(), GoalBody{Text: "Run a marathon", IsCompleted: true}).Code)
	assert.Equal(t, http.StatusBadRequest,
		api.Put("/v1/goal/nope", GoalBody{Text: "Run a marathon"}).Code)
	assert.Equal(t, http.StatusNoContent, api.Delete("/v1/goal/"+id.String()).Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/v1/goal/"+missing.String()).Code)
	svc.AssertExpectations(t)
}
