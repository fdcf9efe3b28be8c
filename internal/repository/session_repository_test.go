package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const digest = "a3f5c9000000000000000000000000000000000000000000000000000000beef"

func newSessionRepo(t *testing.T) (*SessionRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSessionRepo(db), mock
}

func TestSessionValidateOK(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, expires_at, revoked_at FROM sessions WHERE token_hash=? LIMIT 1")).
		WithArgs(digest).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(5, time.Now().UTC().Add(time.Hour), nil))

	userID, err := repo.Validate(context.Background(), digest)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), userID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionValidateRevoked(t *testing.T) {
	repo, mock := newSessionRepo(t)

	revoked := time.Now().UTC().Add(-time.Minute)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, expires_at, revoked_at FROM sessions WHERE token_hash=? LIMIT 1")).
		WithArgs(digest).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(5, time.Now().UTC().Add(time.Hour), revoked))

	_, err := repo.Validate(context.Background(), digest)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionValidateExpired(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, expires_at, revoked_at FROM sessions WHERE token_hash=? LIMIT 1")).
		WithArgs(digest).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(5, time.Now().UTC().Add(-time.Minute), nil))

	_, err := repo.Validate(context.Background(), digest)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionValidateMissing(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, expires_at, revoked_at FROM sessions WHERE token_hash=? LIMIT 1")).
		WithArgs(digest).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Validate(context.Background(), digest)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

// Two revocations of the same digest admit exactly one winner. The second
// call hits zero rows and reports false, which the refresh flow treats as a
// spent token.
func TestSessionRevokeSingleWinner(t *testing.T) {
	repo, mock := newSessionRepo(t)

	stmt := regexp.QuoteMeta("UPDATE sessions SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL")
	mock.ExpectExec(stmt).WithArgs(digest).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(stmt).WithArgs(digest).WillReturnResult(sqlmock.NewResult(0, 0))

	won, err := repo.Revoke(context.Background(), digest)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = repo.Revoke(context.Background(), digest)
	require.NoError(t, err)
	assert.False(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRevokeAllForUser(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL")).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.RevokeAllForUser(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionDeleteExpired(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE expires_at < NOW() OR revoked_at IS NOT NULL")).
		WillReturnResult(sqlmock.NewResult(0, 12))

	n, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}
