package handler

import (
	"fmt"
	"net/http"

	"github.com/agricom-careers/careers-api/pkg/careers_api/helpers/problem"
	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"github.com/gin-gonic/gin"
)

// DownloadCV handles GET /files/cv/:id
func (c *ApplicationsAPIController) DownloadCV(ctx *gin.Context, p *models.ApplicationParams) error {
	return c.serveAttachment(ctx, p.Id, models.AttachmentCV, "attachment")
}

// ViewCV handles GET /files/cv/:id/view
func (c *ApplicationsAPIController) ViewCV(ctx *gin.Context, p *models.ApplicationParams) error {
	return c.serveAttachment(ctx, p.Id, models.AttachmentCV, "inline")
}

// DownloadCoverLetter handles GET /files/cover-letter/:id
func (c *ApplicationsAPIController) DownloadCoverLetter(ctx *gin.Context, p *models.ApplicationParams) error {
	return c.serveAttachment(ctx, p.Id, models.AttachmentCoverLetter, "attachment")
}

// ViewCoverLetter handles GET /files/cover-letter/:id/view
func (c *ApplicationsAPIController) ViewCoverLetter(ctx *gin.Context, p *models.ApplicationParams) error {
	return c.serveAttachment(ctx, p.Id, models.AttachmentCoverLetter, "inline")
}

// serveAttachment streams the stored bytes back. The attachment and inline
// modes differ only in the Content-Disposition header.
func (c *ApplicationsAPIController) serveAttachment(ctx *gin.Context, id uint, kind models.AttachmentKind, disposition string) error {
	att, err := c.Service.Attachment(ctx.Request.Context(), id, kind)
	if err != nil {
		return err
	}
	if att == nil {
		return problem.NewNotFound("Attachment not found")
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, att.Filename))
	ctx.Data(http.StatusOK, att.Mimetype, att.Data)
	return nil
}
