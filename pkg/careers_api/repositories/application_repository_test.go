package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"github.com/agricom-careers/careers-api/pkg/careers_api/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Application{}))
	return db
}

func str(s string) *string { return &s }

func sampleApplication() *models.Application {
	return &models.Application{
		Reference: "ref-1",
		FullName:  "Jane Doe",
		Email:     "jane@x.com",
		Phone:     "123",
		Location:  "Nairobi",
		AlxStatus: "Not specified",
		Position:  "Agronomist",
		Skills:    pq.StringArray{"soil", "GIS"},
		Consent:   true,
		Status:    models.StatusPending,
	}
}

func TestApplicationRepository_InsertAndGet(t *testing.T) {
	repo := repositories.NewApplicationRepository(setupDB(t))

	app := sampleApplication()
	require.NoError(t, repo.Insert(context.Background(), app))
	assert.NotZero(t, app.ID)
	assert.False(t, app.SubmittedAt.IsZero())

	got, err := repo.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, pq.StringArray{"soil", "GIS"}, got.Skills)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.CVFilename)
}

func TestApplicationRepository_GetByID_NotFound(t *testing.T) {
	repo := repositories.NewApplicationRepository(setupDB(t))

	got, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestApplicationRepository_ListSummaries(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewApplicationRepository(db)

	first := sampleApplication()
	require.NoError(t, repo.Insert(context.Background(), first))
	second := sampleApplication()
	second.Reference = "ref-2"
	second.FullName = "John Roe"
	second.Status = models.StatusReviewed
	require.NoError(t, repo.Insert(context.Background(), second))

	apps, pagination, err := repo.ListSummaries(context.Background(), 1, 100, nil)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
	assert.Equal(t, 2, pagination.TotalRecords)
	assert.Equal(t, 1, pagination.TotalPages)
	assert.Nil(t, pagination.Next)

	reviewed := models.StatusReviewed
	apps, _, err = repo.ListSummaries(context.Background(), 1, 100, &reviewed)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "John Roe", apps[0].FullName)
}

func TestApplicationRepository_ListSummaries_Pagination(t *testing.T) {
	repo := repositories.NewApplicationRepository(setupDB(t))

	for i := 0; i < 5; i++ {
		app := sampleApplication()
		app.Reference = "ref"
		require.NoError(t, repo.Insert(context.Background(), app))
	}

	apps, pagination, err := repo.ListSummaries(context.Background(), 2, 2, nil)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
	assert.Equal(t, 5, pagination.TotalRecords)
	assert.Equal(t, 3, pagination.TotalPages)
	require.NotNil(t, pagination.Next)
	assert.Equal(t, 3, *pagination.Next)
	require.NotNil(t, pagination.Previous)
	assert.Equal(t, 1, *pagination.Previous)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	repo := repositories.NewApplicationRepository(setupDB(t))

	app := sampleApplication()
	require.NoError(t, repo.Insert(context.Background(), app))

	updated, err := repo.UpdateStatus(context.Background(), app.ID, models.StatusAccepted, str("strong candidate"))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.Equal(t, "strong candidate", updated.Notes)

	// submitted_at is immutable through status updates
	assert.WithinDuration(t, app.SubmittedAt, updated.SubmittedAt, time.Second)

	missing, err := repo.UpdateStatus(context.Background(), 999, models.StatusAccepted, nil)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApplicationRepository_Delete(t *testing.T) {
	repo := repositories.NewApplicationRepository(setupDB(t))

	app := sampleApplication()
	require.NoError(t, repo.Insert(context.Background(), app))

	require.NoError(t, repo.Delete(context.Background(), app.ID))

	got, err := repo.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repo.Delete(context.Background(), app.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApplicationRepository_AttachmentRoundTrip(t *testing.T) {
	repo := repositories.NewApplicationRepository(setupDB(t))

	raw := []byte("%PDF-1.4 fake resume bytes")
	app := sampleApplication()
	app.CVData = raw
	app.CVFilename = str("resume.pdf")
	app.CVMimetype = str("application/pdf")
	require.NoError(t, repo.Insert(context.Background(), app))

	att, err := repo.GetAttachment(context.Background(), app.ID, models.AttachmentCV)
	require.NoError(t, err)
	require.NotNil(t, att)
	assert.Equal(t, raw, att.Data)
	assert.Equal(t, "resume.pdf", att.Filename)
	assert.Equal(t, "application/pdf", att.Mimetype)

	// the other attachment of the same row is absent
	cl, err := repo.GetAttachment(context.Background(), app.ID, models.AttachmentCoverLetter)
	require.NoError(t, err)
	assert.Nil(t, cl)

	// missing row
	att, err = repo.GetAttachment(context.Background(), 999, models.AttachmentCV)
	require.NoError(t, err)
	assert.Nil(t, att)
}

func TestApplicationRepository_BlobsExcludedFromProjections(t *testing.T) {
	repo := repositories.NewApplicationRepository(setupDB(t))

	app := sampleApplication()
	app.CVData = []byte("bytes")
	app.CVFilename = str("cv.pdf")
	app.CVMimetype = str("application/pdf")
	require.NoError(t, repo.Insert(context.Background(), app))

	got, err := repo.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CVData)
	require.NotNil(t, got.CVFilename)
	assert.Equal(t, "cv.pdf", *got.CVFilename)

	apps, _, err := repo.ListSummaries(context.Background(), 1, 100, nil)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Nil(t, apps[0].CVData)
}

func TestApplicationRepository_NilDB(t *testing.T) {
	repo := repositories.NewApplicationRepository(nil)

	err := repo.Insert(context.Background(), sampleApplication())
	assert.ErrorIs(t, err, repositories.ErrDatabaseUnavailable)
	assert.ErrorIs(t, repo.Ping(context.Background()), repositories.ErrDatabaseUnavailable)
}
