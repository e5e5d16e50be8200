package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wellux/bloglist-backend/internal/api/httpx"
	"github.com/wellux/bloglist-backend/internal/apperr"
	"github.com/wellux/bloglist-backend/internal/auth"
	"github.com/wellux/bloglist-backend/internal/models"
	repo "github.com/wellux/bloglist-backend/internal/repository"
)

type ctxKey int

const (
	ctxTokenKey ctxKey = iota
	ctxUserKey
)

// TokenFromCtx returns the raw bearer token extracted from the request, if any.
func TokenFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxTokenKey).(string)
	return v, ok
}

// UserFromCtx returns the authenticated user resolved by UserExtractor.
func UserFromCtx(ctx context.Context) (models.User, bool) {
	v, ok := ctx.Value(ctxUserKey).(models.User)
	return v, ok
}

// TokenExtractor is a best-effort parse of the Authorization header. The
// "Bearer " scheme is matched case-insensitively; absence is not an error.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if len(ah) > 7 && strings.EqualFold(ah[:7], "bearer ") {
			ctx := context.WithValue(r.Context(), ctxTokenKey, strings.TrimSpace(ah[7:]))
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// UserExtractor guards routes that mutate blogs. It requires a bearer token,
// verifies it, resolves the user and attaches it to the request context.
type UserExtractor struct {
	TM    *auth.TokenManager
	Users repo.Users
}

func NewUserExtractor(tm *auth.TokenManager, users repo.Users) *UserExtractor {
	return &UserExtractor{TM: tm, Users: users}
}

func (m *UserExtractor) Extract(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := TokenFromCtx(r.Context())
		if !ok {
			httpx.Error(w, apperr.Authentication("token missing"))
			return
		}
		claims, err := m.TM.Parse(token)
		if err != nil {
			httpx.Error(w, err)
			return
		}
		user, err := m.Users.FindByID(r.Context(), claims.UserID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				err = apperr.Authentication("user not found")
			}
			httpx.Error(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
