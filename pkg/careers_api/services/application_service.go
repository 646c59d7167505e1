package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/agricom-careers/careers-api/pkg/careers_api/helpers/problem"
	"github.com/agricom-careers/careers-api/pkg/careers_api/helpers/util"
	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"github.com/agricom-careers/careers-api/pkg/careers_api/repositories"
	"github.com/lib/pq"
	"github.com/teris-io/shortid"
	"gorm.io/gorm"
)

// SchemaReconciler is the slice of the database reconciler the service needs
// for its one-shot recovery pass on detected schema errors.
type SchemaReconciler interface {
	Reconcile(ctx context.Context) error
}

// ApplicationService implements the submission and admin-review lifecycle on
// top of the repository.
type ApplicationService struct {
	repo       repositories.ApplicationRepository
	reconciler SchemaReconciler
}

func NewApplicationService(repo repositories.ApplicationRepository, reconciler SchemaReconciler) *ApplicationService {
	return &ApplicationService{repo: repo, reconciler: reconciler}
}

// Submit validates and persists one application. Optional fields fall back to
// defined defaults so insertion never fails on their absence alone.
func (s *ApplicationService) Submit(ctx context.Context, sub *models.Submission) (*models.SubmitResponse, error) {
	var invalid []problem.InvalidParam
	required := []struct{ name, value string }{
		{"fullName", sub.FullName},
		{"email", sub.Email},
		{"phone", sub.Phone},
		{"position", sub.Position},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			invalid = append(invalid, problem.InvalidParam{Name: f.name, Reason: "is required"})
		}
	}
	if !bool(sub.Consent) {
		invalid = append(invalid, problem.InvalidParam{Name: "consent", Reason: "must be given"})
	}
	if len(invalid) > 0 {
		return nil, problem.NewBadRequest("Missing required fields", invalid...)
	}

	alxStatus := sub.AlxStatus
	if alxStatus == "" {
		alxStatus = "Not specified"
	}
	skills := sub.Skills
	if skills == nil {
		skills = models.StringList{}
	}

	app := &models.Application{
		Reference:       shortid.MustGenerate(),
		FullName:        sub.FullName,
		Email:           sub.Email,
		Phone:           sub.Phone,
		Location:        sub.Location,
		AlxStatus:       alxStatus,
		Position:        sub.Position,
		Education:       sub.Education,
		CurrentRole:     sub.CurrentRole,
		Experience:      sub.Experience,
		TechnicalSkills: sub.TechnicalSkills,
		DomainKnowledge: sub.DomainKnowledge,
		PortfolioLink:   sub.PortfolioLink,
		Motivation:      sub.Motivation,
		Skills:          pq.StringArray(skills),
		Consent:         bool(sub.Consent),
		Status:          models.StatusPending,
	}
	if sub.CV != nil {
		app.CVData = sub.CV.Data
		app.CVFilename = &sub.CV.Filename
		app.CVMimetype = &sub.CV.Mimetype
	}
	if sub.CoverLetter != nil {
		app.CoverLetterData = sub.CoverLetter.Data
		app.CoverLetterFilename = &sub.CoverLetter.Filename
		app.CoverLetterMimetype = &sub.CoverLetter.Mimetype
	}

	if err := s.repo.Insert(ctx, app); err != nil {
		return nil, s.recoverSchema(ctx, err)
	}

	return &models.SubmitResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationId: app.ID,
		Reference:     app.Reference,
		SubmittedAt:   app.SubmittedAt,
	}, nil
}

func (s *ApplicationService) List(ctx context.Context, p *models.ListApplicationsParams) ([]models.ApplicationSummary, models.Pagination, error) {
	apps, pagination, err := s.repo.ListSummaries(ctx, p.Page, p.PerPage, p.Status)
	if err != nil {
		return nil, models.Pagination{}, s.recoverSchema(ctx, err)
	}

	summaries := make([]models.ApplicationSummary, len(apps))
	for i, app := range apps {
		summaries[i] = util.ToSummary(&app)
	}
	return summaries, pagination, nil
}

func (s *ApplicationService) Retrieve(ctx context.Context, id uint) (*models.ApplicationDetail, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.recoverSchema(ctx, err)
	}
	if app == nil {
		return nil, nil
	}
	return util.ToDetail(app), nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, in *models.UpdateStatusInput) (*models.ApplicationDetail, error) {
	if !models.ValidStatus(in.Status) {
		return nil, problem.NewBadRequest("Invalid status",
			problem.InvalidParam{Name: "status", Reason: "must be one of pending, reviewed, accepted, rejected"})
	}

	app, err := s.repo.UpdateStatus(ctx, in.Id, in.Status, in.Notes)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}
	return util.ToDetail(app), nil
}

func (s *ApplicationService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return problem.NewNotFound("Application not found")
	}
	return err
}

func (s *ApplicationService) Attachment(ctx context.Context, id uint, kind models.AttachmentKind) (*models.Attachment, error) {
	att, err := s.repo.GetAttachment(ctx, id, kind)
	if err != nil {
		return nil, s.recoverSchema(ctx, err)
	}
	return att, nil
}

func (s *ApplicationService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// recoverSchema runs exactly one reconciliation pass when err looks like a
// missing-column failure and surfaces a remediation hint instead of retrying;
// anything else passes through unchanged.
func (s *ApplicationService) recoverSchema(ctx context.Context, err error) error {
	if !isMissingColumnErr(err) {
		return err
	}
	log.Printf("[WARN] schema mismatch detected, reconciling: %v", err)
	if rerr := s.reconciler.Reconcile(ctx); rerr != nil {
		log.Printf("[WARN] reconciliation failed: %v", rerr)
	}
	return problem.NewSchemaError(
		"Request failed due to a database schema mismatch",
		"the schema has been reconciled, please retry the request",
	)
}

func isMissingColumnErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if strings.Contains(msg, "no such column") {
		return true
	}
	return strings.Contains(msg, "column") && strings.Contains(msg, "does not exist")
}
