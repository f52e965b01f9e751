package storage_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"localkanban/storage"
)

func setupMockDB(t *testing.T) (*storage.SQLiteAdapter, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	return storage.NewSQLiteAdapter(db), mock
}

func TestSQLiteAdapter_Get_Found(t *testing.T) {
	// Arrange
	adapter, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT value FROM kv`).
		WithArgs(storage.KeyTheme).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`"dark"`))

	// Act
	value, ok, err := adapter.Get(context.Background(), storage.KeyTheme)

	// Assert
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"dark"`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteAdapter_Get_NotFound(t *testing.T) {
	// Arrange
	adapter, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT value FROM kv`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	// Act
	value, ok, err := adapter.Get(context.Background(), "missing")

	// Assert: absence is not an error
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteAdapter_Set_Upserts(t *testing.T) {
	// Arrange
	adapter, mock := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO kv`).
		WithArgs(storage.KeyUsers, `{}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Act
	err := adapter.Set(context.Background(), storage.KeyUsers, `{}`)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteAdapter_Delete(t *testing.T) {
	// Arrange
	adapter, mock := setupMockDB(t)

	mock.ExpectExec(`DELETE FROM kv`).
		WithArgs(storage.KeySync).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := adapter.Delete(context.Background(), storage.KeySync)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteAdapter_Get_QueryError(t *testing.T) {
	// Arrange
	adapter, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT value FROM kv`).
		WithArgs(storage.KeyBoards).
		WillReturnError(assert.AnError)

	// Act
	_, ok, err := adapter.Get(context.Background(), storage.KeyBoards)

	// Assert
	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
