package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

// SequenceNumberGenerator issues numbers like TKT-20260131-0042 from a
// per-organization, per-day counter row. The row is locked for update, so
// concurrent creates within one organization serialize on it and never
// see the same slot.
type SequenceNumberGenerator struct {
	db *gorm.DB
}

func NewSequenceNumberGenerator(gdb *gorm.DB) *SequenceNumberGenerator {
	return &SequenceNumberGenerator{db: gdb}
}

func (g *SequenceNumberGenerator) Generate(ctx context.Context, organizationID uint) (string, error) {
	if organizationID == 0 {
		return "", fmt.Errorf("organization ID is required")
	}

	day := time.Now().UTC().Format("20060102")
	tx := db.GetTxFromContext(ctx, g.db)

	// SQLite has no row locks and rejects FOR UPDATE; its writes
	// serialize on the database file anyway.
	query := tx
	if tx.Dialector.Name() == "mysql" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var seq models.TicketSequenceModel
	err := query.
		Where("organization_id = ? AND day = ?", organizationID, day).
		First(&seq).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		seq = models.TicketSequenceModel{OrganizationID: organizationID, Day: day, Counter: 1}
		if err := tx.Create(&seq).Error; err != nil {
			return "", fmt.Errorf("failed to create ticket sequence: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("failed to load ticket sequence: %w", err)
	default:
		seq.Counter++
		if err := tx.Model(&seq).Update("counter", seq.Counter).Error; err != nil {
			return "", fmt.Errorf("failed to advance ticket sequence: %w", err)
		}
	}

	return fmt.Sprintf("TKT-%s-%04d", day, seq.Counter), nil
}
