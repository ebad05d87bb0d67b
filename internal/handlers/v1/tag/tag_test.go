package tag

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-tracker/internal/service"
	"github.com/carson-networks/money-tracker/internal/storage"
)

type mockTagService struct {
	mock.Mock
}

func (m *mockTagService) Tags(ctx context.Context) []string {
	tags, _ := m.Called(ctx).Get(0).([]string)
	return tags
}

func (m *mockTagService) CreateTag(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *mockTagService) DeleteTag(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func newTestAPI(t *testing.T, svc *mockTagService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTags(t *testing.T) {
	svc := new(mockTagService)
	svc.On("Tags", mock.Anything).Return(nil).Once()
	svc.On("Tags", mock.Anything).Return([]string{"rent", "food"})
	api := newTestAPI(t, svc)

	var body ListTagsOutput
	resp := api.Get("/v1/tag")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, []string{}, body.Body.Tags)

	resp = api.Get("/v1/tag")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, []string{"rent", "food"}, body.Body.Tags)
}

func TestHTTP_CreateTag(t *testing.T) {
	svc := new(mockTagService)
	svc.On("CreateTag", mock.Anything, "travel").Return(nil)
	svc.On("CreateTag", mock.Anything, "  ").Return(fmt.Errorf("%w: tag name is empty", service.ErrInvalidInput))
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusCreated, api.Post("/v1/tag", map[string]any{"name": "travel"}).Code)
	assert.Equal(t, http.StatusBadRequest, api.Post("/v1/tag", map[string]any{"name": "  "}).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, api.Post("/v1/tag", map[string]any{}).Code)
	svc.AssertNumberOfCalls(t, "CreateTag", 2)
}

func TestHTTP_DeleteTag(t *testing.T) {
	svc := new(mockTagService)
	svc.On("DeleteTag", mock.Anything, "rent").Return(nil)
	svc.On("DeleteTag", mock.Anything, "ghost").Return(storage.ErrNotFound)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusNoContent, api.Delete("/v1/tag/rent").Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/v1/tag/ghost").Code)
}
