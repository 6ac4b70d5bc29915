package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// FileStore persists attachment bytes and returns a client-facing URL.
type FileStore interface {
	Store(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
}

type FileUpload struct {
	Name    string
	Size    int64
	MIME    string
	Content io.Reader
}

type UploadAttachmentsCommand struct {
	TicketUUID     string
	OrganizationID uint
	UploadedBy     uint
	Files          []FileUpload
}

type RejectedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// UploadAttachmentsResult reports per-file outcomes; one bad file never
// fails the batch.
type UploadAttachmentsResult struct {
	Accepted []dto.AttachmentDTO `json:"accepted"`
	Rejected []RejectedFile      `json:"rejected"`
}

type UploadAttachmentsUseCase struct {
	ticketRepo ticket.Repository
	fileStore  FileStore
	logger     logger.Interface
}

func NewUploadAttachmentsUseCase(
	ticketRepo ticket.Repository,
	fileStore FileStore,
	logger logger.Interface,
) *UploadAttachmentsUseCase {
	return &UploadAttachmentsUseCase{
		ticketRepo: ticketRepo,
		fileStore:  fileStore,
		logger:     logger,
	}
}

func (uc *UploadAttachmentsUseCase) Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*UploadAttachmentsResult, error) {
	if len(cmd.TicketUUID) == 0 {
		return nil, errors.NewValidationError("ticket UUID is required")
	}
	if cmd.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if len(cmd.Files) == 0 {
		return nil, errors.NewValidationError("no files provided")
	}

	t, err := uc.ticketRepo.GetByUUID(ctx, cmd.TicketUUID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if t.OrganizationID() != cmd.OrganizationID {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	result := &UploadAttachmentsResult{
		Accepted: []dto.AttachmentDTO{},
		Rejected: []RejectedFile{},
	}

	for _, file := range cmd.Files {
		att, err := uc.storeFile(ctx, t, file)
		if err != nil {
			uc.logger.Warnw("attachment rejected",
				"ticket_uuid", t.UUID(),
				"file", file.Name,
				"reason", err)
			result.Rejected = append(result.Rejected, RejectedFile{Name: file.Name, Reason: err.Error()})
			continue
		}
		t.AddAttachment(att)
		result.Accepted = append(result.Accepted, dto.AttachmentDTO{Name: att.Name, Size: att.Size, MIME: att.MIME, URL: att.URL})
	}

	if len(result.Accepted) > 0 {
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to persist attachments", "error", err, "ticket_uuid", t.UUID())
			return nil, errors.NewInternalError("failed to persist attachments")
		}
	}

	return result, nil
}

func (uc *UploadAttachmentsUseCase) storeFile(ctx context.Context, t *ticket.Ticket, file FileUpload) (ticket.Attachment, error) {
	if err := ticket.ValidateAttachmentMeta(file.Name, file.Size, file.MIME); err != nil {
		return ticket.Attachment{}, err
	}
	if file.Size <= 0 {
		return ticket.Attachment{}, fmt.Errorf("attachment is empty")
	}

	key := fmt.Sprintf("org/%d/tickets/%s/%s-%s", t.OrganizationID(), t.UUID(), uuid.NewString(), file.Name)
	url, err := uc.fileStore.Store(ctx, key, file.Content, file.Size, file.MIME)
	if err != nil {
		return ticket.Attachment{}, fmt.Errorf("failed to store file")
	}

	return ticket.NewAttachment(file.Name, file.Size, file.MIME, url)
}
