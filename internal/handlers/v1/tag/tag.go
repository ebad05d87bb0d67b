package tag

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
)

type tagService interface {
	Tags(ctx context.Context) []string
	CreateTag(ctx context.Context, name string) error
	DeleteTag(ctx context.Context, name string) error
}

// Handler serves the tag list under /v1/tag.
type Handler struct {
	TagService tagService
}

// NewHandler builds the tag handler.
func NewHandler(svc tagService) *Handler {
	return &Handler{TagService: svc}
}

// ListTagsOutput is the Huma output for listing tags.
type ListTagsOutput struct {
	Body struct {
		Tags []string `json:"tags" doc:"Tag names in creation order"`
	}
}

// CreateTagInput is the Huma input for creating a tag.
type CreateTagInput struct {
	Body struct {
		Name string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Tag name"`
	}
}

// DeleteTagInput names the tag to delete.
type DeleteTagInput struct {
	Name string `path:"name" doc:"Tag name"`
}

// Register adds the tag operations to api.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tags",
		Method:      http.MethodGet,
		Path:        "/v1/tag",
		Summary:     "List tags",
		Tags:        []string{"Tags"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "create-tag",
		Method:        http.MethodPost,
		Path:          "/v1/tag",
		Summary:       "Create tag",
		Description:   "Adds a tag. Creating an existing tag succeeds without change.",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-tag",
		Method:        http.MethodDelete,
		Path:          "/v1/tag/{name}",
		Summary:       "Delete tag",
		Description:   "Removes a tag from the list. Transactions keep the name.",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListTagsOutput, error) {
	out := &ListTagsOutput{}
	out.Body.Tags = h.TagService.Tags(ctx)
	if out.Body.Tags == nil {
		out.Body.Tags = []string{}
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *CreateTagInput) (*struct{}, error) {
	if err := h.TagService.CreateTag(ctx, input.Body.Name); err != nil {
		return nil, common.ToHTTPError("failed to create tag", err)
	}
	return nil, nil
}

func (h *Handler) delete(ctx context.Context, input *DeleteTagInput) (*struct{}, error) {
	if err := h.TagService.DeleteTag(ctx, input.Name); err != nil {
		return nil, common.ToHTTPError("failed to delete tag", err)
	}
	return nil, nil
}
