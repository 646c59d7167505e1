package handler

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/agricom-careers/careers-api/pkg/careers_api/helpers/problem"
	"github.com/agricom-careers/careers-api/pkg/careers_api/helpers/util"
	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"github.com/agricom-careers/careers-api/pkg/careers_api/services"
	"github.com/gin-gonic/gin"
)

// ApplicationsAPIController binds HTTP requests to the ApplicationService
type ApplicationsAPIController struct {
	Service     *services.ApplicationService
	Reconciler  services.SchemaReconciler
	ServiceName string
	Port        string
}

// NewApplicationsAPIController creates a new controller
func NewApplicationsAPIController(s *services.ApplicationService, r services.SchemaReconciler) *ApplicationsAPIController {
	return &ApplicationsAPIController{
		Service:     s,
		Reconciler:  r,
		ServiceName: "Agricom Careers Backend",
	}
}

// SubmitApplication handles POST /applications, accepting either a multipart
// form (with optional cv / coverLetter files) or a JSON body.
func (c *ApplicationsAPIController) SubmitApplication(ctx *gin.Context) (*models.SubmitResponse, error) {
	sub, err := parseSubmission(ctx)
	if err != nil {
		return nil, err
	}
	return c.Service.Submit(ctx.Request.Context(), sub)
}

func parseSubmission(ctx *gin.Context) (*models.Submission, error) {
	if ctx.ContentType() != "multipart/form-data" {
		var sub models.Submission
		if err := ctx.ShouldBindJSON(&sub); err != nil {
			return nil, problem.NewBadRequest("Invalid request body",
				problem.InvalidParam{Name: "body", Reason: err.Error()})
		}
		return &sub, nil
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, problem.NewBadRequest("Invalid multipart form",
			problem.InvalidParam{Name: "body", Reason: err.Error()})
	}

	sub := &models.Submission{
		FullName:        formValue(form, "fullName"),
		Email:           formValue(form, "email"),
		Phone:           formValue(form, "phone"),
		Location:        formValue(form, "location"),
		AlxStatus:       formValue(form, "alxStatus"),
		Position:        formValue(form, "position"),
		Education:       formValue(form, "education"),
		CurrentRole:     formValue(form, "currentRole"),
		Experience:      formValue(form, "experience"),
		TechnicalSkills: formValue(form, "technicalSkills"),
		DomainKnowledge: formValue(form, "domainKnowledge"),
		PortfolioLink:   formValue(form, "portfolioLink"),
		Motivation:      formValue(form, "motivation"),
		Skills:          models.NormalizeSkills(form.Value["skills"]...),
		Consent:         models.Checkbox(models.ParseCheckbox(formValue(form, "consent"))),
	}

	sub.CV, sub.CoverLetter, err = services.EncodeUploads(formFile(form, "cv"), formFile(form, "coverLetter"))
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func formFile(form *multipart.Form, key string) *multipart.FileHeader {
	if files := form.File[key]; len(files) > 0 {
		return files[0]
	}
	return nil
}

// ListApplications handles GET /applications
func (c *ApplicationsAPIController) ListApplications(ctx *gin.Context, p *models.ListApplicationsParams) ([]models.ApplicationSummary, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 100
	}
	summaries, pagination, err := c.Service.List(ctx.Request.Context(), p)
	if err != nil {
		return nil, err
	}
	util.SetPaginationHeaders(ctx.Request, ctx.Header, pagination)
	return summaries, nil
}

// RetrieveApplication handles GET /applications/:id
func (c *ApplicationsAPIController) RetrieveApplication(ctx *gin.Context, p *models.ApplicationParams) (*models.ApplicationEnvelope, error) {
	detail, err := c.Service.Retrieve(ctx.Request.Context(), p.Id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, problem.NewNotFound("Application not found")
	}
	return &models.ApplicationEnvelope{Success: true, Application: detail}, nil
}

// UpdateApplicationStatus handles PUT /applications/:id
func (c *ApplicationsAPIController) UpdateApplicationStatus(ctx *gin.Context, in *models.UpdateStatusInput) (*models.UpdateStatusResponse, error) {
	detail, err := c.Service.UpdateStatus(ctx.Request.Context(), in)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, problem.NewNotFound("Application not found")
	}
	return &models.UpdateStatusResponse{
		Success:     true,
		Message:     "Status updated successfully",
		Application: detail,
	}, nil
}

// DeleteApplication handles DELETE /applications/:id
func (c *ApplicationsAPIController) DeleteApplication(ctx *gin.Context, p *models.ApplicationParams) (*models.DeleteResponse, error) {
	if err := c.Service.Delete(ctx.Request.Context(), p.Id); err != nil {
		return nil, err
	}
	return &models.DeleteResponse{Success: true, Message: "Application deleted successfully"}, nil
}

// ReconcileSchema handles POST /admin/reconcile
func (c *ApplicationsAPIController) ReconcileSchema(ctx *gin.Context) (*models.ReconcileResponse, error) {
	if err := c.Reconciler.Reconcile(ctx.Request.Context()); err != nil {
		return nil, problem.NewInternalServerError("Schema reconciliation failed")
	}
	return &models.ReconcileResponse{Success: true, Message: "Database schema reconciled"}, nil
}

// Health handles GET /health
func (c *ApplicationsAPIController) Health(ctx *gin.Context) (*models.HealthResponse, error) {
	return &models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   c.ServiceName,
		Port:      c.Port,
	}, nil
}

// DBCheck handles GET /db-check. It always answers with a structured status
// so external monitors can tell a dead database from a dead process.
func (c *ApplicationsAPIController) DBCheck(ctx *gin.Context) error {
	if err := c.Service.Ping(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.DBCheckResponse{
			Status:   "ERROR",
			Database: "Disconnected",
			Error:    "database unreachable",
		})
		return nil
	}
	ctx.JSON(http.StatusOK, models.DBCheckResponse{
		Status:   "OK",
		Database: "Connected",
		DBTime:   time.Now().UTC().Format(time.RFC3339),
		Table:    "applications",
	})
	return nil
}
