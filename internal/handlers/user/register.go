package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
	"github.com/carson-networks/prefin/internal/service"
)

// RegisterBody is the request body for registering a user.
type RegisterBody struct {
	Email    string `json:"email" required:"true" minLength:"1" doc:"Login email"`
	Username string `json:"username" required:"true" minLength:"1" doc:"Display name"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Plain-text password"`
	Gender   string `json:"gender,omitempty" doc:"male, female or other; defaults to other"`
}

type RegisterInput struct {
	Body RegisterBody
}

// SessionOutput is returned by the operations that start a session.
type SessionOutput struct {
	Status    int
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Msg  string `json:"msg"`
		User User   `json:"user"`
	}
}

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	Operator apiutil.ActionProcessor
	Tokens   tokenIssuer
	Cookies  apiutil.CookieSettings
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(op apiutil.ActionProcessor, tokens tokenIssuer, cookies apiutil.CookieSettings) *RegisterHandler {
	return &RegisterHandler{Operator: op, Tokens: tokens, Cookies: cookies}
}

// Register registers the register user endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register",
		Description:   "Creates a user and starts a session.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*SessionOutput, error) {
	action := &actions.RegisterUser{
		Email:    input.Body.Email,
		Username: input.Body.Username,
		Password: input.Body.Password,
		Gender:   input.Body.Gender,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apiutil.Error(ctx, err, "Registration failed")
	}

	token, err := h.Tokens.Issue(action.User.ID)
	if err != nil {
		return nil, apiutil.Error(ctx, err, "Registration failed")
	}

	out := &SessionOutput{Status: http.StatusCreated, SetCookie: h.Cookies.SessionCookie(token)}
	out.Body.Msg = "User registered successfully"
	out.Body.User = toUser(service.UserFromStorage(action.User))
	return out, nil
}
