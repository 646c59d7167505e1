package util

import (
	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
)

// ToSummary builds the blob-free list projection. The stored trio discipline
// (blob never present without filename) lets the flags derive from filenames.
func ToSummary(app *models.Application) models.ApplicationSummary {
	return models.ApplicationSummary{
		Id:             app.ID,
		Reference:      app.Reference,
		FullName:       app.FullName,
		Email:          app.Email,
		Phone:          app.Phone,
		Location:       app.Location,
		Position:       app.Position,
		Experience:     app.Experience,
		Skills:         append([]string{}, app.Skills...),
		HasCV:          app.CVFilename != nil,
		HasCoverLetter: app.CoverLetterFilename != nil,
		SubmittedAt:    app.SubmittedAt,
		Status:         app.Status,
	}
}

func ToDetail(app *models.Application) *models.ApplicationDetail {
	return &models.ApplicationDetail{
		ApplicationSummary:  ToSummary(app),
		AlxStatus:           app.AlxStatus,
		Education:           app.Education,
		CurrentRole:         app.CurrentRole,
		TechnicalSkills:     app.TechnicalSkills,
		DomainKnowledge:     app.DomainKnowledge,
		PortfolioLink:       app.PortfolioLink,
		Motivation:          app.Motivation,
		Consent:             app.Consent,
		Notes:               app.Notes,
		CVFilename:          app.CVFilename,
		CoverLetterFilename: app.CoverLetterFilename,
	}
}
