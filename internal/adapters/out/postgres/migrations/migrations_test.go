package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	src, err := iofs.New(files, sourceDir)
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)

	var versions []uint
	for {
		versions = append(versions, version)

		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "missing up migration for %d", version)
		body, err := io.ReadAll(up)
		require.NoError(t, err)
		up.Close()
		assert.NotEmpty(t, strings.TrimSpace(string(body)))

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "missing down migration for %d", version)
		down.Close()

		next, err := src.Next(version)
		if err != nil {
			break
		}
		version = next
	}

	assert.Equal(t, []uint{1, 2}, versions)
}

func TestItemsTableReferencesOrders(t *testing.T) {
	body, err := files.ReadFile("sql/000002_create_sales_items.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "REFERENCES sales_orders (id)")
}

func TestDownRejectsNonPositiveSteps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Down(db, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpPropagatesDriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(assert.AnError)

	err = Up(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init migration driver")
}
