package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/money-tracker/internal/service"
)

// Handler serves the bucket list under /v1/goal.
type Handler struct {
	GoalService goalService
}

// NewHandler builds the goal handler.
func NewHandler(svc goalService) *Handler {
	return &Handler{GoalService: svc}
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body struct {
		Goals []Goal `json:"goals" doc:"Pending goals first, newest first"`
	}
}

// GoalProgressOutput is the Huma output for goal progress counts.
type GoalProgressOutput struct {
	Body struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
	}
}

// GoalBody is the request body shared by create and update.
type GoalBody struct {
	Text        string `json:"text" required:"true" minLength:"1" maxLength:"500" doc:"What to do"`
	Notes       string `json:"notes,omitempty" maxLength:"2000"`
	IsCompleted bool   `json:"isCompleted,omitempty" doc:"Ignored on create"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	Body GoalBody
}

// CreateGoalOutput returns the new goal ID.
type CreateGoalOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"UUID of the new goal"`
	}
}

// UpdateGoalInput is the Huma input for updating a goal.
type UpdateGoalInput struct {
	ID   string `path:"id" doc:"Goal UUID"`
	Body GoalBody
}

// DeleteGoalInput names the goal to delete.
type DeleteGoalInput struct {
	ID string `path:"id" doc:"Goal UUID"`
}

// Register adds the goal operations to api.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goal",
		Summary:     "List goals",
		Tags:        []string{"Goals"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "get-goal-progress",
		Method:      http.MethodGet,
		Path:        "/v1/goal/progress",
		Summary:     "Goal progress",
		Tags:        []string{"Goals"},
	}, h.progress)

	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goal",
		Summary:       "Create goal",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID:   "update-goal",
		Method:        http.MethodPut,
		Path:          "/v1/goal/{id}",
		Summary:       "Update goal",
		Description:   "Replaces the text, notes and completion of a goal.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-goal",
		Method:        http.MethodDelete,
		Path:          "/v1/goal/{id}",
		Summary:       "Delete goal",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListGoalsOutput, error) {
	goals := h.GoalService.Goals(ctx)
	out := &ListGoalsOutput{}
	out.Body.Goals = make([]Goal, len(goals))
	for i, g := range goals {
		out.Body.Goals[i] = toResponse(g)
	}
	return out, nil
}

func (h *Handler) progress(ctx context.Context, _ *struct{}) (*GoalProgressOutput, error) {
	p := h.GoalService.GoalProgress(ctx)
	out := &GoalProgressOutput{}
	out.Body.Total = p.Total
	out.Body.Completed = p.Completed
	out.Body.Pending = p.Pending
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	id, err := h.GoalService.CreateGoal(ctx, service.GoalInput{
		Text:  input.Body.Text,
		Notes: input.Body.Notes,
	})
	if err != nil {
		return nil, common.ToHTTPError("failed to create goal", err)
	}

	out := &CreateGoalOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateGoalInput) (*struct{}, error) {
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}
	err = h.GoalService.UpdateGoal(ctx, service.GoalInput{
		ID:          id,
		Text:        input.Body.Text,
		Notes:       input.Body.Notes,
		IsCompleted: input.Body.IsCompleted,
	})
	if err != nil {
		return nil, common.ToHTTPError("failed to update goal", err)
	}
	return nil, nil
}

func (h *Handler) delete(ctx context.Context, input *DeleteGoalInput) (*struct{}, error) {
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.GoalService.DeleteGoal(ctx, id); err != nil {
		return nil, common.ToHTTPError("failed to delete goal", err)
	}
	return nil, nil
}
