package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

func setupPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresStore(db), mock
}

func mustDoc(t *testing.T, project *domain.Project) []byte {
	doc, err := json.Marshal(project)
	require.NoError(t, err)
	return doc
}

func TestPostgresStore_EnsureSchema(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS projects").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save(t *testing.T) {
	store, mock := setupPostgresStore(t)

	t.Run("upserts the whole document", func(t *testing.T) {
		project := sampleProject("p1", domain.Day(2025, time.March, 1))

		mock.ExpectExec("INSERT INTO projects").
			WithArgs("p1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Save(context.Background(), project))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		project := sampleProject("p1", domain.Day(2025, time.March, 1))

		mock.ExpectExec("INSERT INTO projects").
			WithArgs("p1", sqlmock.AnyArg()).
			WillReturnError(sql.ErrConnDone)

		err := store.Save(context.Background(), project)
		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestPostgresStore_Load(t *testing.T) {
	store, mock := setupPostgresStore(t)

	t.Run("decodes and normalizes the document", func(t *testing.T) {
		project := sampleProject("p1", domain.Day(2025, time.March, 1))

		mock.ExpectQuery("SELECT doc FROM projects WHERE").
			WithArgs("p1").
			WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(mustDoc(t, project)))

		loaded, err := store.Load(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, project.Tasks, loaded.Tasks)
		assert.Equal(t, project.TaskGroups, loaded.TaskGroups)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to the domain error", func(t *testing.T) {
		mock.ExpectQuery("SELECT doc FROM projects WHERE").
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := store.Load(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("legacy document revives empty collections", func(t *testing.T) {
		legacy := []byte(`{"id":"old","name":"Legacy","tasks":[]}`)

		mock.ExpectQuery("SELECT doc FROM projects WHERE").
			WithArgs("old").
			WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(legacy))

		loaded, err := store.Load(context.Background(), "old")
		require.NoError(t, err)
		require.NotNil(t, loaded.TaskGroups)
		require.NotNil(t, loaded.ExecutingUnits)
	})
}

func TestPostgresStore_LoadAll(t *testing.T) {
	store, mock := setupPostgresStore(t)

	newer := sampleProject("newer", domain.Day(2025, time.March, 10))
	older := sampleProject("older", domain.Day(2025, time.March, 1))

	mock.ExpectQuery("SELECT doc FROM projects").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).
			AddRow(mustDoc(t, newer)).
			AddRow(mustDoc(t, older)))

	projects, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "older", projects[0].ID, "projects come back oldest first")
	assert.Equal(t, "newer", projects[1].ID)
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock := setupPostgresStore(t)

	t.Run("removes the row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM projects").
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Delete(context.Background(), "p1"))
	})

	t.Run("missing row maps to the domain error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM projects").
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, store.Delete(context.Background(), "nope"), domain.ErrProjectNotFound)
	})
}
