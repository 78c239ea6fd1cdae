package apiutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/logging"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	require.True(t, errors.As(err, &statusErr))
	return statusErr.GetStatus()
}

func TestError_MapsKinds(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, http.StatusBadRequest, statusOf(t, Error(ctx, apperr.Validation("bad"), "x")))
	assert.Equal(t, http.StatusBadRequest, statusOf(t, Error(ctx, apperr.ErrDuplicateEmail, "x")))
	assert.Equal(t, http.StatusBadRequest, statusOf(t, Error(ctx, apperr.ErrInvalidCredentials, "x")))
	assert.Equal(t, http.StatusBadRequest, statusOf(t, Error(ctx, apperr.NoBudgetForMonth("2025-01"), "x")))
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, Error(ctx, apperr.ErrInvalidToken, "x")))
	assert.Equal(t, http.StatusNotFound, statusOf(t, Error(ctx, apperr.NotFound("budget"), "x")))
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, Error(ctx, errors.New("pq: connection refused"), "x")))
}

func TestError_InternalHidesCauseAndLogsIt(t *testing.T) {
	logData := logging.NewLogData(logging.SetupLogging("error"))
	ctx := logging.WithLogData(context.Background(), logData)

	err := Error(ctx, errors.New("pq: password authentication failed"), "Failed to fetch budgets")

	assert.NotContains(t, err.Error(), "password authentication")
	assert.Contains(t, err.Error(), "Failed to fetch budgets")
	assert.Contains(t, logData.Log().Data, "error")
}

func TestSessionCookie(t *testing.T) {
	cookie := CookieSettings{Secure: true, MaxAge: auth.DefaultTokenTTL}.SessionCookie("abc")

	assert.Equal(t, TokenCookieName, cookie.Name)
	assert.Equal(t, "abc", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

type whoAmIOutput struct {
	Body struct {
		UserID int64 `json:"userId"`
	}
}

func newSessionAPI(t *testing.T, codec *auth.TokenCodec) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	session := NewSession(codec)
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Middlewares: session.Require(api),
	}, func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		userID, err := CurrentUserID(ctx)
		if err != nil {
			return nil, err
		}
		out := &whoAmIOutput{}
		out.Body.UserID = userID
		return out, nil
	})
	return api
}

func newCodec(t *testing.T) *auth.TokenCodec {
	t.Helper()
	codec, err := auth.NewTokenCodec("test-secret", auth.DefaultTokenTTL)
	require.NoError(t, err)
	return codec
}

func TestRequireSession_ValidCookie(t *testing.T) {
	codec := newCodec(t)
	token, err := codec.Issue(42)
	require.NoError(t, err)

	resp := newSessionAPI(t, codec).Get("/whoami", "Cookie: theme=dark; token="+token)

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		UserID int64 `json:"userId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body.UserID)
}

func TestRequireSession_MissingCookie(t *testing.T) {
	resp := newSessionAPI(t, newCodec(t)).Get("/whoami")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireSession_BadToken(t *testing.T) {
	other, err := auth.NewTokenCodec("another-secret", auth.DefaultTokenTTL)
	require.NoError(t, err)
	forged, err := other.Issue(42)
	require.NoError(t, err)

	api := newSessionAPI(t, newCodec(t))

	assert.Equal(t, http.StatusUnauthorized, api.Get("/whoami", "Cookie: token="+forged).Code)
	assert.Equal(t, http.StatusUnauthorized, api.Get("/whoami", "Cookie: token=garbage").Code)
}

func TestRequireSession_ExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-8 * 24 * time.Hour)
	old := newCodec(t).WithClock(func() time.Time { return issuedAt })
	token, err := old.Issue(42)
	require.NoError(t, err)

	resp := newSessionAPI(t, newCodec(t)).Get("/whoami", "Cookie: token="+token)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.True(t, strings.Contains(resp.Body.String(), "Invalid or expired token"))
}

func TestUserIDFromContext_Absent(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestMoney(t *testing.T) {
	d := ParseMoney(123.45)
	assert.Equal(t, "123.45", d.String())
	assert.Equal(t, 123.45, Money(d))
}
