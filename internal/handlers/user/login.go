package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
)

type LoginBody struct {
	Email    string `json:"email,omitempty" doc:"Login email"`
	Password string `json:"password,omitempty" doc:"Plain-text password"`
}

type LoginInput struct {
	Body LoginBody
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	Users   userService
	Tokens  tokenIssuer
	Cookies apiutil.CookieSettings
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(users userService, tokens tokenIssuer, cookies apiutil.CookieSettings) *LoginHandler {
	return &LoginHandler{Users: users, Tokens: tokens, Cookies: cookies}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Checks credentials and starts a session.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*SessionOutput, error) {
	u, err := h.Users.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, apiutil.Error(ctx, err, "Login failed")
	}

	token, err := h.Tokens.Issue(u.ID)
	if err != nil {
		return nil, apiutil.Error(ctx, err, "Login failed")
	}

	out := &SessionOutput{Status: http.StatusOK, SetCookie: h.Cookies.SessionCookie(token)}
	out.Body.Msg = "Login successful"
	out.Body.User = toUser(u)
	return out, nil
}
