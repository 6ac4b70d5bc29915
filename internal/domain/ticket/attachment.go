package ticket

import "fmt"

// MaxAttachmentSize is the per-file upload limit in bytes.
const MaxAttachmentSize = 10 * 1024 * 1024

// allowedAttachmentTypes is the fixed MIME allow-list for uploads.
var allowedAttachmentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Attachment is a file linked to a ticket. Attachments are validated per
// file; a rejected file never aborts the rest of an upload batch.
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
	URL  string `json:"url"`
}

// NewAttachment validates the upload metadata and returns the attachment.
func NewAttachment(name string, size int64, mime, url string) (Attachment, error) {
	if len(name) == 0 {
		return Attachment{}, fmt.Errorf("attachment name is required")
	}
	if size <= 0 {
		return Attachment{}, fmt.Errorf("attachment is empty")
	}
	if size > MaxAttachmentSize {
		return Attachment{}, fmt.Errorf("attachment %s exceeds the 10MB limit", name)
	}
	if !allowedAttachmentTypes[mime] {
		return Attachment{}, fmt.Errorf("attachment type %s is not supported", mime)
	}
	if len(url) == 0 {
		return Attachment{}, fmt.Errorf("attachment storage URL is required")
	}
	return Attachment{Name: name, Size: size, MIME: mime, URL: url}, nil
}

// ValidateAttachmentMeta checks size and MIME type before any bytes are
// stored, so oversized or disallowed files are rejected without I/O.
func ValidateAttachmentMeta(name string, size int64, mime string) error {
	if size > MaxAttachmentSize {
		return fmt.Errorf("attachment %s exceeds the 10MB limit", name)
	}
	if !allowedAttachmentTypes[mime] {
		return fmt.Errorf("attachment type %s is not supported", mime)
	}
	return nil
}
