package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PasswordHasher abstracts the hash scheme so the aggregate never touches
// bcrypt directly.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is a helpdesk operator. Tenancy is carried by memberships, not by
// the user itself.
type User struct {
	id           uint
	uuid         string
	email        string
	name         string
	passwordHash *string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
	version      int
}

func NewUser(email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email: %s", email)
	}
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &User{
		uuid:      uuid.NewString(),
		email:     email,
		name:      name,
		active:    true,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

func ReconstructUser(id uint, userUUID, email, name string, passwordHash *string, active bool, createdAt, updatedAt time.Time, version int) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &User{
		id:           id,
		uuid:         userUUID,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) UUID() string         { return u.uuid }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) IsActive() bool       { return u.active }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
func (u *User) Version() int         { return u.version }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = &hash
	u.touch()
	return nil
}

func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == nil || len(*u.passwordHash) == 0 {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(password, *u.passwordHash); err != nil {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

// PasswordHash exposes the stored hash for persistence mapping only.
func (u *User) PasswordHash() *string { return u.passwordHash }

func (u *User) Deactivate() {
	if !u.active {
		return
	}
	u.active = false
	u.touch()
}

func (u *User) Activate() {
	if u.active {
		return
	}
	u.active = true
	u.touch()
}

func (u *User) Rename(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now()
	u.version++
}
