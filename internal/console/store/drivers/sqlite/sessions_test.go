package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tigaron/partner-admin/internal/console/domain"
	"github.com/tigaron/partner-admin/internal/console/store"
	"github.com/tigaron/partner-admin/internal/console/store/drivers/sqlite"
	"github.com/tigaron/partner-admin/pkg/cryptox"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	t.Setenv("ADMIN_MASTER_KEY", "test-master-key")
	cryptox.ResetMasterKeyForTesting()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testSession(id, token string) domain.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Session{
		ID:    id,
		Token: token,
		Admin: gatewaysdk.AdminProfile{
			ID:       "a1",
			Username: "admin",
			FullName: "Admin One",
			Email:    "admin@example.com",
			Role:     "superadmin",
		},
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func TestSessions_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := testSession("sid1", "tok123")
	require.NoError(t, s.Sessions().CreateSession(ctx, want))

	got, err := s.Sessions().GetSessionByID(ctx, "sid1")
	require.NoError(t, err)

	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Token, got.Token, "token must round-trip through encryption")
	require.Equal(t, want.Admin, got.Admin)
	require.WithinDuration(t, want.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestSessions_GetByTokenFingerprint(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Sessions().CreateSession(ctx, testSession("sid1", "tok123")))

	got, err := s.Sessions().GetSessionByTokenFingerprint(ctx, cryptox.FingerprintToken("tok123"))
	require.NoError(t, err)
	require.Equal(t, "sid1", got.ID)

	_, err = s.Sessions().GetSessionByTokenFingerprint(ctx, cryptox.FingerprintToken("other"))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessions_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Sessions().GetSessionByID(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessions_DuplicateToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Sessions().CreateSession(ctx, testSession("sid1", "tok123")))
	err := s.Sessions().CreateSession(ctx, testSession("sid2", "tok123"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestSessions_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Sessions().CreateSession(ctx, testSession("sid1", "tok123")))
	require.NoError(t, s.Sessions().DeleteSession(ctx, "sid1"))

	_, err := s.Sessions().GetSessionByID(ctx, "sid1")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again is not an error
	require.NoError(t, s.Sessions().DeleteSession(ctx, "sid1"))
}

func TestSessions_DeleteByTokenFingerprint(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Sessions().CreateSession(ctx, testSession("sid1", "tok123")))
	require.NoError(t, s.Sessions().DeleteSessionsByTokenFingerprint(ctx, cryptox.FingerprintToken("tok123")))

	_, err := s.Sessions().GetSessionByID(ctx, "sid1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessions_DeleteExpired(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	expired := testSession("sid-old", "tok-old")
	expired.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, s.Sessions().CreateSession(ctx, expired))

	live := testSession("sid-live", "tok-live")
	require.NoError(t, s.Sessions().CreateSession(ctx, live))

	require.NoError(t, s.Sessions().DeleteExpiredSessions(ctx))

	_, err := s.Sessions().GetSessionByID(ctx, "sid-old")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Sessions().GetSessionByID(ctx, "sid-live")
	require.NoError(t, err)
}

func TestSessions_WithTx(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Rolled-back writes must not be visible
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Sessions().CreateSession(ctx, testSession("sid1", "tok123")); err != nil {
			return err
		}
		return context.Canceled
	})
	require.Error(t, err)

	_, err = s.Sessions().GetSessionByID(ctx, "sid1")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Committed writes are visible
	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Sessions().CreateSession(ctx, testSession("sid2", "tok456"))
	})
	require.NoError(t, err)

	_, err = s.Sessions().GetSessionByID(ctx, "sid2")
	require.NoError(t, err)
}
