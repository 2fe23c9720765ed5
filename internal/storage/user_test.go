package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorageWithMock(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreateUser_Success(t *testing.T) {
	store, mock := newStorageWithMock(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), "ada@example.com", "Ada", "hashed").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	user, err := store.CreateUser(context.Background(), "ada@example.com", "Ada", "hashed")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, now, user.CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store, mock := newStorageWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), "ada@example.com", "Ada", "hashed").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := store.CreateUser(context.Background(), "ada@example.com", "Ada", "hashed")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUserByEmail_Success(t *testing.T) {
	store, mock := newStorageWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
		AddRow("user-1", "ada@example.com", "Ada", "hashed", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	user, err := store.GetUserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Ada", user.Name)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	store, mock := newStorageWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
