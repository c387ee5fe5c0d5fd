package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"wedding-planner-go/internal/config"
	eventdomain "wedding-planner-go/internal/domain/event"
	userdomain "wedding-planner-go/internal/domain/user"
	"wedding-planner-go/pkg/logger"
)

type contextKey int

const (
	userKey contextKey = iota
	eventKey
)

// SessionResolver maps an opaque session token to its user.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*userdomain.User, error)
}

// EventLoader fetches the user's event record, if any.
type EventLoader interface {
	GetByUser(ctx context.Context, userID string) (*eventdomain.Event, error)
}

// SessionAuth resolves the session cookie once per request and threads the
// user (and their event, when one exists) through the request context.
type SessionAuth struct {
	cookieName string
	sessions   SessionResolver
	events     EventLoader
	log        logger.Logger
}

func NewSessionAuth(cfg config.SessionConfig, sessions SessionResolver, events EventLoader, log logger.Logger) *SessionAuth {
	return &SessionAuth{
		cookieName: cfg.CookieName,
		sessions:   sessions,
		events:     events,
		log:        log,
	}
}

func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookieName)
		if err != nil || cookie.Value == "" {
			unauthorized(w)
			return
		}

		u, err := a.sessions.Resolve(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, userdomain.ErrSessionNotFound) || errors.Is(err, userdomain.ErrUserNotFound) {
				unauthorized(w)
				return
			}
			a.log.InternalError("auth: resolve session failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, u)

		e, err := a.events.GetByUser(ctx, u.ID)
		if err == nil {
			ctx = context.WithValue(ctx, eventKey, e)
		} else if !errors.Is(err, eventdomain.ErrEventNotFound) {
			a.log.InternalError("auth: load event failed", err, "user_id", u.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (*userdomain.User, bool) {
	u, ok := ctx.Value(userKey).(*userdomain.User)
	return u, ok && u != nil
}

func EventFromContext(ctx context.Context) (*eventdomain.Event, bool) {
	e, ok := ctx.Value(eventKey).(*eventdomain.Event)
	return e, ok && e != nil
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
