package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
	"github.com/carson-networks/prefin/internal/service"
)

// UpdateUserBody lists the profile fields that can change. Empty fields are
// left alone.
type UpdateUserBody struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Gender   string `json:"gender,omitempty" doc:"male, female or other"`
	Avatar   string `json:"avatar,omitempty" doc:"Avatar image URL; overrides the gender default"`
}

type UpdateUserInput struct {
	Body UpdateUserBody
}

type UpdateUserOutput struct {
	Body struct {
		Msg  string `json:"msg"`
		User User   `json:"user"`
	}
}

// UpdateUserHandler handles PUT /auth/UpdateUser.
type UpdateUserHandler struct {
	Operator apiutil.ActionProcessor
	Session  *apiutil.Session
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(op apiutil.ActionProcessor, session *apiutil.Session) *UpdateUserHandler {
	return &UpdateUserHandler{Operator: op, Session: session}
}

// Register registers the update user endpoint with the Huma API.
func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-current-user",
		Method:      http.MethodPut,
		Path:        "/auth/UpdateUser",
		Summary:     "Update profile",
		Tags:        []string{"Auth"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateUser{
		UserID:   userID,
		Username: input.Body.Username,
		Password: input.Body.Password,
		Gender:   input.Body.Gender,
		Avatar:   input.Body.Avatar,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apiutil.Error(ctx, err, "Update failed")
	}

	out := &UpdateUserOutput{}
	out.Body.Msg = "User updated successfully"
	out.Body.User = toUser(service.UserFromStorage(action.User))
	return out, nil
}
