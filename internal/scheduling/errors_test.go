package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/logging"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrCapacityExceeded, KindCapacityExceeded},
		{fmt.Errorf("book: %w", ErrAlreadyEnrolled), KindAlreadyEnrolled},
		{ErrDuplicateWaitlist, KindDuplicateWaitlist},
		{invalidRange("end_date", "bad"), KindValidation},
		{&CascadeConflictError{InstanceID: uuid.New()}, KindCascadeConflict},
		{&UnavailableError{Op: "book", Err: errors.New("conn refused")}, KindUnavailable},
		{ErrTokenExpired, KindTokenExpired},
		{errors.New("boom"), KindUnexpected},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorKind(tt.err), "%v", tt.err)
	}

	assert.True(t, IsBusinessOutcome(ErrCapacityExceeded))
	assert.False(t, IsBusinessOutcome(&UnavailableError{Op: "x", Err: errors.New("y")}))
}

func TestStoreErr(t *testing.T) {
	assert.ErrorIs(t, storeErr("get", gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, storeErr("book", ErrCapacityExceeded), ErrCapacityExceeded)

	cause := errors.New("disk full")
	var uErr *UnavailableError
	require.ErrorAs(t, storeErr("book", cause), &uErr)
	assert.Equal(t, "book", uErr.Op)
	assert.ErrorIs(t, uErr, cause)
}

func newMockEngine(t *testing.T) (*Engine, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return NewEngine(Options{
		Store:  repository.NewStore(gormDB),
		Logger: logging.Discard(),
		Now:    func() time.Time { return at(2025, time.January, 1, 9, 0) },
	}), mock
}

func TestBook_StoreUnavailable(t *testing.T) {
	engine, mock := newMockEngine(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := engine.Enrollment.Book(context.Background(), uuid.New(), uuid.New())

	var uErr *UnavailableError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, KindUnavailable, ErrorKind(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinWaitlist_QueryFailureRollsBack(t *testing.T) {
	engine, mock := newMockEngine(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "session_instances"`).WillReturnError(errors.New("read timeout"))
	mock.ExpectRollback()

	_, err := engine.Waitlist.JoinWaitlist(context.Background(), uuid.New(), uuid.New())

	var uErr *UnavailableError
	require.ErrorAs(t, err, &uErr)
	require.NoError(t, mock.ExpectationsWereMet())
}
