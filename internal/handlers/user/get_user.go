package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
)

type GetUserOutput struct {
	Body struct {
		User User `json:"user"`
	}
}

// GetUserHandler handles GET /auth/authUser.
type GetUserHandler struct {
	Users   userService
	Session *apiutil.Session
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(users userService, session *apiutil.Session) *GetUserHandler {
	return &GetUserHandler{Users: users, Session: session}
}

// Register registers the get user endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-current-user",
		Method:      http.MethodGet,
		Path:        "/auth/authUser",
		Summary:     "Current user",
		Description: "Returns the profile of the session's user.",
		Tags:        []string{"Auth"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, _ *struct{}) (*GetUserOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	u, err := h.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, apiutil.Error(ctx, err, "Failed to fetch user")
	}

	out := &GetUserOutput{}
	out.Body.User = toUser(u)
	return out, nil
}
