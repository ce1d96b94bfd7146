package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tigaron/partner-admin/internal/console/domain"
	"github.com/tigaron/partner-admin/internal/console/store"
	"github.com/tigaron/partner-admin/pkg/cryptox"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
	"github.com/tigaron/partner-admin/pkg/slogx"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService owns the admin login lifecycle: it exchanges credentials
// with the backend, persists the issued token with the admin profile, and
// broadcasts auth-state changes to subscribers.
type SessionService struct {
	Store   store.Store
	Gateway *gatewaysdk.Client

	// TTL bounds session lifetime when the backend token carries no
	// usable expiry claim.
	TTL time.Duration

	Watcher *AuthWatcher
}

// LoginResult is what a successful login hands back to the HTTP layer.
type LoginResult struct {
	Session domain.Session
	Message string
}

// Login authenticates against the backend and persists a session. Any
// previous session holding the same token is replaced atomically.
func (s *SessionService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := slogx.FromContext(ctx)

	data, res, err := s.Gateway.Login(ctx, username, password)
	if err != nil {
		l.Warn("backend login failed", "username", username, "error", err)
		return nil, err
	}

	sid, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate session id", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	sess := domain.Session{
		ID:        sid,
		Token:     data.Token,
		Admin:     data.Admin,
		CreatedAt: now,
		ExpiresAt: s.expiryFor(data.Token, now),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Sessions().DeleteSessionsByTokenFingerprint(ctx, cryptox.FingerprintToken(data.Token)); err != nil {
			return err
		}
		return tx.Sessions().CreateSession(ctx, sess)
	})
	if err != nil {
		l.Error("failed to persist session", "error", err)
		return nil, err
	}

	if s.Watcher != nil {
		s.Watcher.Notify(AuthEvent{Type: AuthLogin, SessionID: sess.ID, Admin: sess.Admin})
	}

	l.Info("admin logged in", "username", data.Admin.Username, "session_id", sess.ID)
	return &LoginResult{Session: sess, Message: res.Message}, nil
}

// Get loads a session by ID. Expired sessions are removed and reported as
// not found.
func (s *SessionService) Get(ctx context.Context, sessionID string) (domain.Session, error) {
	sess, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrSessionNotFound
		}
		return domain.Session{}, err
	}

	if sess.Expired(time.Now().UTC()) {
		_ = s.Store.Sessions().DeleteSession(ctx, sessionID)
		return domain.Session{}, ErrSessionNotFound
	}

	return sess, nil
}

// Logout removes a session. Missing sessions are not an error.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Sessions().DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	if s.Watcher != nil {
		s.Watcher.Notify(AuthEvent{Type: AuthLogout, SessionID: sessionID})
	}

	l.Info("admin logged out", "session_id", sessionID)
	return nil
}

// ClearByToken removes every session holding the given bearer token. This
// runs when the backend answers 401 for the token: the session is dead no
// matter what the store thinks.
func (s *SessionService) ClearByToken(ctx context.Context, token string) {
	l := slogx.FromContext(ctx)

	fp := cryptox.FingerprintToken(token)
	sess, err := s.Store.Sessions().GetSessionByTokenFingerprint(ctx, fp)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Error("failed to look up session for invalid token", "error", err)
		}
		return
	}

	if err := s.Store.Sessions().DeleteSessionsByTokenFingerprint(ctx, fp); err != nil {
		l.Error("failed to clear session for invalid token", "error", err)
		return
	}

	if s.Watcher != nil {
		s.Watcher.Notify(AuthEvent{Type: AuthLogout, SessionID: sess.ID})
	}

	l.Info("cleared session for rejected token", "session_id", sess.ID)
}

// expiryFor derives a session expiry from the token's exp claim when the
// token is a JWT, clamped to TTL otherwise. The claim is read without
// verification; the backend remains the authority on token validity.
func (s *SessionService) expiryFor(token string, now time.Time) time.Time {
	fallback := now.Add(s.TTL)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(now) {
		return fallback
	}

	return exp.Time.UTC()
}
