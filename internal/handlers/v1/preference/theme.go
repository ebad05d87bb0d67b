package preference

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
)

type themeService interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, dark bool) error
}

// ThemeHandler serves GET and PUT /v1/preference/theme.
type ThemeHandler struct {
	PreferenceService themeService
}

// NewThemeHandler builds the theme preference handler.
func NewThemeHandler(svc themeService) *ThemeHandler {
	return &ThemeHandler{PreferenceService: svc}
}

// ThemeBody is the theme preference as sent and returned.
type ThemeBody struct {
	DarkMode bool `json:"darkMode" doc:"Whether the dark theme is selected"`
}

// ThemeOutput is the Huma output for the theme endpoints.
type ThemeOutput struct {
	Body ThemeBody
}

// SetThemeInput is the Huma input for storing the theme.
type SetThemeInput struct {
	Body ThemeBody
}

// Register adds the theme operations to api.
func (h *ThemeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-theme",
		Method:      http.MethodGet,
		Path:        "/v1/preference/theme",
		Summary:     "Get theme",
		Tags:        []string{"Preferences"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "set-theme",
		Method:      http.MethodPut,
		Path:        "/v1/preference/theme",
		Summary:     "Set theme",
		Tags:        []string{"Preferences"},
	}, h.set)
}

func (h *ThemeHandler) get(ctx context.Context, _ *struct{}) (*ThemeOutput, error) {
	dark, err := h.PreferenceService.DarkMode(ctx)
	if err != nil {
		return nil, common.ToHTTPError("failed to read theme", err)
	}
	return &ThemeOutput{Body: ThemeBody{DarkMode: dark}}, nil
}

func (h *ThemeHandler) set(ctx context.Context, input *SetThemeInput) (*ThemeOutput, error) {
	if err := h.PreferenceService.SetDarkMode(ctx, input.Body.DarkMode); err != nil {
		return nil, common.ToHTTPError("failed to store theme", err)
	}
	return &ThemeOutput{Body: input.Body}, nil
}
