package database

import (
	"context"
	"log"

	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"gorm.io/gorm"
)

// reconcileColumns lists every field of the applications table by struct field
// name, in the order they are added to a partially migrated database.
var reconcileColumns = []string{
	"Reference",
	"FullName",
	"Email",
	"Phone",
	"Location",
	"AlxStatus",
	"Position",
	"Education",
	"CurrentRole",
	"Experience",
	"TechnicalSkills",
	"DomainKnowledge",
	"PortfolioLink",
	"Motivation",
	"Skills",
	"CVData",
	"CVFilename",
	"CVMimetype",
	"CoverLetterData",
	"CoverLetterFilename",
	"CoverLetterMimetype",
	"Consent",
	"SubmittedAt",
	"Status",
	"Notes",
}

// reconcileIndexes are the lookup-acceleration indexes; email is deliberately
// non-unique, repeat applicants are allowed.
var reconcileIndexes = []string{"Email", "Position", "Status"}

// Reconciler aligns the live schema with the expected applications column set.
// It is additive-only: columns are never dropped, and a failure to add one
// column does not abort the rest.
type Reconciler struct {
	db *gorm.DB
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

// Reconcile is safe to run on every process start, again on a detected
// missing-column error, and concurrently with live traffic: every step is an
// existence check followed by an idempotent create.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	if r.db == nil {
		return gorm.ErrInvalidDB
	}
	m := r.db.WithContext(ctx).Migrator()
	app := &models.Application{}

	if !m.HasTable(app) {
		if err := m.CreateTable(app); err != nil {
			return err
		}
		log.Println("[INFO] created applications table")
	} else {
		for _, field := range reconcileColumns {
			if m.HasColumn(app, field) {
				continue
			}
			if err := m.AddColumn(app, field); err != nil {
				log.Printf("[WARN] could not add column %s: %v", field, err)
				continue
			}
			log.Printf("[INFO] added missing column %s", field)
		}
	}

	for _, field := range reconcileIndexes {
		if m.HasIndex(app, field) {
			continue
		}
		if err := m.CreateIndex(app, field); err != nil {
			log.Printf("[WARN] could not create index on %s: %v", field, err)
		}
	}

	return nil
}
