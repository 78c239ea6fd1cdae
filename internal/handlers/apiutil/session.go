package apiutil

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/logging"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

type userIDKey struct{}

// CookieSettings controls the attributes of the session cookie.
type CookieSettings struct {
	Secure bool
	MaxAge time.Duration
}

// SessionCookie returns the cookie that stores token.
func (s CookieSettings) SessionCookie(token string) http.Cookie {
	return http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// tokenVerifier is satisfied by *auth.TokenCodec.
type tokenVerifier interface {
	Verify(token string) (int64, error)
}

var _ tokenVerifier = (*auth.TokenCodec)(nil)

// RequireSession rejects requests without a valid session cookie with 401 and
// passes the caller's user id on to the handler through the context.
func RequireSession(api huma.API, verifier tokenVerifier) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.GetLogData(ctx.Context())

		token := readCookie(ctx, TokenCookieName)
		if token == "" {
			if logData != nil {
				logData.AddData("authFailure", "missing token")
			}
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			if logData != nil {
				logData.AddData("authFailure", err.Error())
			}
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if logData != nil {
			logData.AddData("userID", userID)
		}
		next(huma.WithValue(ctx, userIDKey{}, userID))
	}
}

// UserIDFromContext returns the user id RequireSession authenticated.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// CurrentUserID is UserIDFromContext for handlers behind RequireSession. A
// missing id means the operation was registered without the middleware.
func CurrentUserID(ctx context.Context) (int64, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return 0, huma.NewError(http.StatusUnauthorized, "Unauthorized")
	}
	return userID, nil
}

func readCookie(ctx huma.Context, name string) string {
	header := ctx.Header("Cookie")
	if header == "" {
		return ""
	}
	req := http.Request{Header: http.Header{"Cookie": []string{header}}}
	cookie, err := req.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Session builds the per-operation middleware for authenticated routes.
type Session struct {
	verifier tokenVerifier
}

// NewSession creates a new Session.
func NewSession(verifier tokenVerifier) *Session {
	return &Session{verifier: verifier}
}

// Require returns the middlewares an authenticated operation registers with.
func (s *Session) Require(api huma.API) huma.Middlewares {
	return huma.Middlewares{RequireSession(api, s.verifier)}
}
