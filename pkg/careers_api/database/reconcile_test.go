package database_test

import (
	"context"
	"testing"

	"github.com/agricom-careers/careers-api/pkg/careers_api/database"
	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestReconcile_CreatesTableAndIndexes(t *testing.T) {
	db := openDB(t)
	r := database.NewReconciler(db)

	require.NoError(t, r.Reconcile(context.Background()))

	m := db.Migrator()
	app := &models.Application{}
	assert.True(t, m.HasTable(app))
	for _, field := range []string{"FullName", "Skills", "CVData", "CoverLetterMimetype", "Notes"} {
		assert.True(t, m.HasColumn(app, field), "column %s", field)
	}
	for _, field := range []string{"Email", "Position", "Status"} {
		assert.True(t, m.HasIndex(app, field), "index on %s", field)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	db := openDB(t)
	r := database.NewReconciler(db)

	require.NoError(t, r.Reconcile(context.Background()))
	require.NoError(t, r.Reconcile(context.Background()))

	// the reconciled schema accepts a full row
	app := &models.Application{
		Reference: "r1",
		FullName:  "Jane Doe",
		Email:     "jane@x.com",
		Phone:     "123",
		Position:  "Agronomist",
		Consent:   true,
		Status:    models.StatusPending,
	}
	require.NoError(t, db.Create(app).Error)
}

func TestReconcile_AddsMissingColumns(t *testing.T) {
	db := openDB(t)

	// a partially migrated database from an older revision
	require.NoError(t, db.Exec(`CREATE TABLE applications (
		id integer PRIMARY KEY AUTOINCREMENT,
		full_name text NOT NULL,
		email text NOT NULL,
		phone text NOT NULL,
		position text NOT NULL,
		consent numeric NOT NULL
	)`).Error)

	r := database.NewReconciler(db)
	require.NoError(t, r.Reconcile(context.Background()))

	m := db.Migrator()
	app := &models.Application{}
	for _, field := range []string{"AlxStatus", "Notes", "Skills", "CVData", "CVFilename", "Status", "SubmittedAt"} {
		assert.True(t, m.HasColumn(app, field), "column %s", field)
	}

	// pre-existing columns survive untouched
	assert.True(t, m.HasColumn(app, "FullName"))
}

func TestReconcile_NilDB(t *testing.T) {
	r := database.NewReconciler(nil)
	assert.Error(t, r.Reconcile(context.Background()))
}
