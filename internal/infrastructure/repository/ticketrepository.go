package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type TicketRepository struct {
	db        *gorm.DB
	mapper    mappers.TicketMapper
	generator ticket.NumberGenerator
}

func NewTicketRepository(gdb *gorm.DB, generator ticket.NumberGenerator) *TicketRepository {
	return &TicketRepository{
		db:        gdb,
		mapper:    mappers.NewTicketMapper(),
		generator: generator,
	}
}

// Save inserts the ticket and its freshly generated number in one
// transaction, so a failed insert never burns a sequence slot visible to
// other creates.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		txCtx := db.WithTx(ctx, tx)

		if len(t.Number()) == 0 {
			number, err := r.generator.Generate(txCtx, t.OrganizationID())
			if err != nil {
				return fmt.Errorf("failed to generate ticket number: %w", err)
			}
			if err := t.SetNumber(number); err != nil {
				return err
			}
		}

		model, err := r.mapper.ToModel(t)
		if err != nil {
			return err
		}
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}
		return t.SetID(model.ID)
	})
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByUUID(ctx context.Context, uuid string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("uuid = ?", uuid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Search(ctx context.Context, filter ticket.SearchFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).
		Where("organization_id = ?", filter.OrganizationID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if len(filter.Query) > 0 {
		// Case-insensitive substring match over the searchable columns.
		needle := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where(
			"LOWER(mobile_no) LIKE ? OR LOWER(client_file_no) LIKE ? OR LOWER(client_name) LIKE ? OR LOWER(number) LIKE ?",
			needle, needle, needle, needle,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.TicketModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, organizationID uint) (ticket.StatusCounts, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// OPEN and CLOSED are reserved words in MySQL, hence the _count
	// aliases.
	var row struct {
		TotalCount      int64
		OpenCount       int64
		InProgressCount int64
		ClosedCount     int64
		AssignedCount   int64
	}
	err := tx.Model(&models.TicketModel{}).
		Select(
			"COUNT(*) AS total_count, "+
				"SUM(CASE WHEN status = 'open' THEN 1 ELSE 0 END) AS open_count, "+
				"SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END) AS in_progress_count, "+
				"SUM(CASE WHEN status = 'closed' THEN 1 ELSE 0 END) AS closed_count, "+
				"SUM(CASE WHEN assignee_id IS NOT NULL THEN 1 ELSE 0 END) AS assigned_count").
		Where("organization_id = ?", organizationID).
		Scan(&row).Error
	if err != nil {
		return ticket.StatusCounts{}, fmt.Errorf("failed to count tickets: %w", err)
	}
	return ticket.StatusCounts{
		Total:      row.TotalCount,
		Open:       row.OpenCount,
		InProgress: row.InProgressCount,
		Closed:     row.ClosedCount,
		Assigned:   row.AssignedCount,
	}, nil
}

func (r *TicketRepository) CountClosedSince(ctx context.Context, organizationID uint, since time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.TicketModel{}).
		Where("organization_id = ? AND status = 'closed' AND closed_on >= ?", organizationID, since.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count closed tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) AverageResolutionHours(ctx context.Context, organizationID uint) (float64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// Timestamps are stored as unix millis, so the average difference is
	// converted to hours here.
	var avgMillis float64
	err := tx.Model(&models.TicketModel{}).
		Select("COALESCE(AVG(closed_on - created_at), 0)").
		Where("organization_id = ? AND status = 'closed' AND closed_on IS NOT NULL", organizationID).
		Scan(&avgMillis).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average resolution time: %w", err)
	}
	return avgMillis / float64(3600*1000), nil
}
