package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tigaron/partner-admin/internal/console/domain"
	"github.com/tigaron/partner-admin/internal/console/store"
	"github.com/tigaron/partner-admin/pkg/cryptox"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
)

type sessionsRepo struct {
	db dbtx
}

// sessions holds the bearer token encrypted (AES-256-GCM) and indexed only
// by its SHA-256 fingerprint. The admin profile is stored as a JSON blob,
// mirroring what the browser keeps under its admin_user storage key.

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	tokenEnc, err := cryptox.EncryptSecret([]byte(s.Token))
	if err != nil {
		return fmt.Errorf("encrypt session token: %w", err)
	}

	adminJSON, err := json.Marshal(s.Admin)
	if err != nil {
		return fmt.Errorf("marshal admin profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, token_fingerprint, token_encrypted, admin_json, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID,
		cryptox.FingerprintToken(s.Token),
		tokenEnc,
		string(adminJSON),
		s.CreatedAt.UTC(),
		s.ExpiresAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, token_encrypted, admin_json, created_at, expires_at
		FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

func (r *sessionsRepo) GetSessionByTokenFingerprint(ctx context.Context, fingerprint string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, token_encrypted, admin_json, created_at, expires_at
		FROM sessions WHERE token_fingerprint = ?`, fingerprint)
	return scanSession(row)
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

func (r *sessionsRepo) DeleteSessionsByTokenFingerprint(ctx context.Context, fingerprint string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_fingerprint = ?`, fingerprint)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		s         domain.Session
		tokenEnc  []byte
		adminJSON string
	)

	err := row.Scan(&s.ID, &tokenEnc, &adminJSON, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}

	token, err := cryptox.DecryptSecret(tokenEnc)
	if err != nil {
		return domain.Session{}, fmt.Errorf("decrypt session token: %w", err)
	}
	s.Token = string(token)

	var admin gatewaysdk.AdminProfile
	if err := json.Unmarshal([]byte(adminJSON), &admin); err != nil {
		return domain.Session{}, fmt.Errorf("unmarshal admin profile: %w", err)
	}
	s.Admin = admin

	s.CreatedAt = s.CreatedAt.UTC()
	s.ExpiresAt = s.ExpiresAt.UTC()

	return s, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
