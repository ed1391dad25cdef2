package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func userColumns() []string {
	return []string{"user_id", "username", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	now := time.Now()
	username := "alice"

	mock.ExpectQuery("SELECT user_id, username, email, password_hash").
		WithArgs(&username, nil).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID, "alice", "alice@example.com", "hash", nil, nil, now, now))

	user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
	assert.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsernameOrEmail_Miss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	username := "ghost"

	mock.ExpectQuery("SELECT user_id, username, email, password_hash").
		WithArgs(&username, nil).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_Miss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()

	mock.ExpectQuery("SELECT user_id, username, email, password_hash").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetAll_Capped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	now := time.Now()

	mock.ExpectQuery("SELECT user_id, username, email, password_hash").
		WithArgs(userListCap).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(uuid.New(), "alice", "alice@example.com", "hash", nil, nil, now, now).
			AddRow(uuid.New(), "bob", "bob@example.com", "hash", nil, nil, now, now))

	users, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	now := time.Now()
	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

	err := repo.Save(context.Background(), models.UserDB{UserID: uuid.New()})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
