package organization

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Theme carries the per-tenant branding colors rendered by clients.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
}

// Organization is a tenant. Every ticket, notification and membership is
// scoped to exactly one organization.
type Organization struct {
	id        uint
	uuid      string
	name      string
	slug      string
	theme     Theme
	logoURL   string
	createdAt time.Time
	updatedAt time.Time
	version   int
}

func NewOrganization(name, slug string, theme Theme, logoURL string) (*Organization, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("organization name exceeds maximum length")
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid organization slug: %s", slug)
	}

	now := time.Now()
	return &Organization{
		uuid:      uuid.NewString(),
		name:      name,
		slug:      slug,
		theme:     theme,
		logoURL:   logoURL,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

func ReconstructOrganization(id uint, orgUUID, name, slug string, theme Theme, logoURL string, createdAt, updatedAt time.Time, version int) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("organization slug is required")
	}

	return &Organization{
		id:        id,
		uuid:      orgUUID,
		name:      name,
		slug:      slug,
		theme:     theme,
		logoURL:   logoURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
	}, nil
}

func (o *Organization) ID() uint             { return o.id }
func (o *Organization) UUID() string         { return o.uuid }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) Slug() string         { return o.slug }
func (o *Organization) Theme() Theme         { return o.theme }
func (o *Organization) LogoURL() string      { return o.logoURL }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }
func (o *Organization) Version() int         { return o.version }

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

// Rename changes the display name; the slug stays stable because it is
// part of public URLs.
func (o *Organization) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("organization name is required")
	}
	o.name = name
	o.touch()
	return nil
}

func (o *Organization) UpdateTheme(theme Theme) {
	o.theme = theme
	o.touch()
}

func (o *Organization) UpdateLogo(logoURL string) {
	o.logoURL = logoURL
	o.touch()
}

func (o *Organization) touch() {
	o.updatedAt = time.Now()
	o.version++
}
