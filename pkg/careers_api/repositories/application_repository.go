package repositories

import (
	"context"
	"errors"
	"math"

	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"gorm.io/gorm"
)

// ErrDatabaseUnavailable is returned when the service came up without a
// working database connection.
var ErrDatabaseUnavailable = errors.New("database unavailable")

// nonBlobColumns is every applications column except the attachment bytes.
// List and detail projections always select this set; the blobs are only
// fetched by GetAttachment.
var nonBlobColumns = []string{
	"id", "reference", "full_name", "email", "phone", "location", "alx_status",
	"position", "education", "current_role_text", "experience",
	"technical_skills", "domain_knowledge", "portfolio_link", "motivation",
	"skills", "cv_filename", "cv_mimetype", "cover_letter_filename",
	"cover_letter_mimetype", "consent", "submitted_at", "status", "notes",
}

type ApplicationRepository interface {
	Insert(ctx context.Context, app *models.Application) error
	ListSummaries(ctx context.Context, page, perPage int, status *string) ([]models.Application, models.Pagination, error)
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status string, notes *string) (*models.Application, error)
	Delete(ctx context.Context, id uint) error
	GetAttachment(ctx context.Context, id uint, kind models.AttachmentKind) (*models.Attachment, error)
	Ping(ctx context.Context) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) conn(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, ErrDatabaseUnavailable
	}
	return r.db.WithContext(ctx), nil
}

func (r *applicationRepository) Insert(ctx context.Context, app *models.Application) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Create(app).Error
}

func (r *applicationRepository) ListSummaries(ctx context.Context, page, perPage int, status *string) ([]models.Application, models.Pagination, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	base := func() *gorm.DB {
		q := db.Model(&models.Application{})
		if status != nil && *status != "" {
			q = q.Where("status = ?", *status)
		}
		return q
	}

	var totalRecords int64
	if err := base().Count(&totalRecords).Error; err != nil {
		return nil, models.Pagination{}, err
	}

	offset := (page - 1) * perPage
	var apps []models.Application
	if err := base().
		Select(nonBlobColumns).
		Order("submitted_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&apps).Error; err != nil {
		return nil, models.Pagination{}, err
	}

	totalPages := int(math.Ceil(float64(totalRecords) / float64(perPage)))
	pagination := models.Pagination{
		CurrentPage:    page,
		RecordsPerPage: perPage,
		TotalPages:     totalPages,
		TotalRecords:   int(totalRecords),
	}
	if page < totalPages {
		next := page + 1
		pagination.Next = &next
	}
	if page > 1 {
		prev := page - 1
		pagination.Previous = &prev
	}

	return apps, pagination, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var app models.Application
	err = db.Select(nonBlobColumns).First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status string, notes *string) (*models.Application, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	res := db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "notes": notes})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	res := db.Delete(&models.Application{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepository) GetAttachment(ctx context.Context, id uint, kind models.AttachmentKind) (*models.Attachment, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var app models.Application
	columns := []string{"cv_data", "cv_filename", "cv_mimetype"}
	if kind == models.AttachmentCoverLetter {
		columns = []string{"cover_letter_data", "cover_letter_filename", "cover_letter_mimetype"}
	}
	err = db.Select(columns).First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	data, filename, mimetype := app.CVData, app.CVFilename, app.CVMimetype
	if kind == models.AttachmentCoverLetter {
		data, filename, mimetype = app.CoverLetterData, app.CoverLetterFilename, app.CoverLetterMimetype
	}
	if len(data) == 0 || filename == nil || mimetype == nil {
		return nil, nil
	}
	return &models.Attachment{Data: data, Filename: *filename, Mimetype: *mimetype}, nil
}

func (r *applicationRepository) Ping(ctx context.Context) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Exec("SELECT 1").Error
}
