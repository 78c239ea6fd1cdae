package user

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
	"github.com/carson-networks/prefin/internal/service"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/storagemock"
	storageuser "github.com/carson-networks/prefin/internal/storage/user"
)

// directProcessor runs actions straight against the mocked writer.
type directProcessor struct {
	writer *storage.Writer
}

func (p directProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.writer)
}

type testEnv struct {
	api    humatest.TestAPI
	mocks  *storagemock.Mocks
	codec  *auth.TokenCodec
	cookie string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	_, api := humatest.New(t)
	codec, err := auth.NewTokenCodec("test-secret", auth.DefaultTokenTTL)
	require.NoError(t, err)

	mocks := storagemock.NewMocks(t)
	svc := service.NewService(mocks.Reader())
	op := directProcessor{writer: mocks.Writer()}
	session := apiutil.NewSession(codec)
	cookies := apiutil.CookieSettings{MaxAge: codec.TTL()}

	NewRegisterHandler(op, codec, cookies).Register(api)
	NewLoginHandler(svc.Users, codec, cookies).Register(api)
	NewGetUserHandler(svc.Users, session).Register(api)
	NewUpdateUserHandler(op, session).Register(api)

	token, err := codec.Issue(5)
	require.NoError(t, err)
	return &testEnv{api: api, mocks: mocks, codec: codec, cookie: "Cookie: token=" + token}
}

type sessionBody struct {
	Msg  string `json:"msg"`
	User User   `json:"user"`
}

func decode[T any](t *testing.T, body *strings.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func sessionToken(t *testing.T, header http.Header) string {
	t.Helper()
	resp := http.Response{Header: header}
	for _, c := range resp.Cookies() {
		if c.Name == apiutil.TokenCookieName {
			assert.True(t, c.HttpOnly)
			assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
			assert.Equal(t, "/", c.Path)
			return c.Value
		}
	}
	t.Fatal("no session cookie set")
	return ""
}

func TestHTTP_Register_Success(t *testing.T) {
	env := newTestEnv(t)

	env.mocks.Users.EXPECT().FindByEmail(mock.Anything, "ann@example.com").
		Return(nil, apperr.NotFound("user"))
	env.mocks.Users.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(&storageuser.User{ID: 12, Email: "ann@example.com", Username: "ann", PasswordHash: "$2a$10$secret", Gender: auth.GenderMale, Avatar: auth.AvatarBoy}, nil)

	resp := env.api.Post("/auth/register", RegisterBody{
		Email:    "ann@example.com",
		Username: "ann",
		Password: "hunter22",
		Gender:   "male",
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.NotContains(t, resp.Body.String(), "secret")
	body := decode[sessionBody](t, strings.NewReader(resp.Body.String()))
	assert.Equal(t, "User registered successfully", body.Msg)
	assert.Equal(t, int64(12), body.User.ID)
	assert.Equal(t, auth.AvatarBoy, body.User.Avatar)

	userID, err := env.codec.Verify(sessionToken(t, resp.Header()))
	require.NoError(t, err)
	assert.Equal(t, int64(12), userID)
}

func TestHTTP_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.mocks.Users.EXPECT().FindByEmail(mock.Anything, "ann@example.com").
		Return(&storageuser.User{ID: 1}, nil)

	resp := env.api.Post("/auth/register", RegisterBody{Email: "ann@example.com", Username: "ann", Password: "pw"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decode[huma.ErrorModel](t, strings.NewReader(resp.Body.String()))
	assert.Equal(t, "Email already exists", body.Detail)
	assert.Empty(t, resp.Header().Get("Set-Cookie"))
}

func TestHTTP_Register_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	resp := env.api.Post("/auth/register", map[string]any{"email": "ann@example.com"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_Login_Success(t *testing.T) {
	env := newTestEnv(t)
	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	env.mocks.Users.EXPECT().FindByEmail(mock.Anything, "ann@example.com").
		Return(&storageuser.User{ID: 12, Email: "ann@example.com", PasswordHash: hash}, nil)

	resp := env.api.Post("/auth/login", LoginBody{Email: "ann@example.com", Password: "hunter22"})

	require.Equal(t, http.StatusOK, resp.Code)
	body := decode[sessionBody](t, strings.NewReader(resp.Body.String()))
	assert.Equal(t, "Login successful", body.Msg)
	assert.NotEmpty(t, sessionToken(t, resp.Header()))
}

func TestHTTP_Login_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	env.mocks.Users.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").
		Return(nil, apperr.NotFound("user"))

	resp := env.api.Post("/auth/login", LoginBody{Email: "nobody@example.com", Password: "pw"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decode[huma.ErrorModel](t, strings.NewReader(resp.Body.String()))
	assert.Equal(t, "Invalid credentials", body.Detail)
}

func TestHTTP_GetUser(t *testing.T) {
	env := newTestEnv(t)

	env.mocks.Users.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(&storageuser.User{ID: 5, Username: "bo", Gender: auth.GenderOther, Avatar: auth.AvatarDefault}, nil)

	resp := env.api.Get("/auth/authUser", env.cookie)

	require.Equal(t, http.StatusOK, resp.Code)
	body := decode[struct {
		User User `json:"user"`
	}](t, strings.NewReader(resp.Body.String()))
	assert.Equal(t, "bo", body.User.Username)
	assert.Equal(t, "other", body.User.Gender)
}

func TestHTTP_GetUser_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	resp := env.api.Get("/auth/authUser")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_GetUser_Deleted(t *testing.T) {
	env := newTestEnv(t)

	env.mocks.Users.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, apperr.NotFound("user"))

	resp := env.api.Get("/auth/authUser", env.cookie)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateUser(t *testing.T) {
	env := newTestEnv(t)

	env.mocks.Users.EXPECT().FindByIDForUpdate(mock.Anything, int64(5)).
		Return(&storageuser.User{ID: 5, Username: "bo", Gender: auth.GenderMale, Avatar: auth.AvatarBoy}, nil)
	env.mocks.Users.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *storageuser.User) bool {
		return u.Gender == auth.GenderFemale && u.Avatar == auth.AvatarGirl
	})).Return(&storageuser.User{ID: 5, Username: "bo", Gender: auth.GenderFemale, Avatar: auth.AvatarGirl}, nil)

	resp := env.api.Put("/auth/UpdateUser", env.cookie, UpdateUserBody{Gender: "female"})

	require.Equal(t, http.StatusOK, resp.Code)
	body := decode[sessionBody](t, strings.NewReader(resp.Body.String()))
	assert.Equal(t, "User updated successfully", body.Msg)
	assert.Equal(t, auth.AvatarGirl, body.User.Avatar)
}

func TestHTTP_UpdateUser_InvalidGender(t *testing.T) {
	env := newTestEnv(t)

	env.mocks.Users.EXPECT().FindByIDForUpdate(mock.Anything, int64(5)).
		Return(&storageuser.User{ID: 5, Gender: auth.GenderMale}, nil)

	resp := env.api.Put("/auth/UpdateUser", env.cookie, UpdateUserBody{Gender: "robot"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
