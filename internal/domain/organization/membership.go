package organization

import (
	"fmt"
	"time"
)

// Role is what a member may do inside one organization. Roles are scoped
// per membership, not per user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

// Membership links a user to an organization with a role.
type Membership struct {
	id             uint
	userID         uint
	organizationID uint
	role           Role
	createdAt      time.Time
}

func NewMembership(userID, organizationID uint, role Role) (*Membership, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Membership{
		userID:         userID,
		organizationID: organizationID,
		role:           role,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructMembership(id, userID, organizationID uint, role Role, createdAt time.Time) (*Membership, error) {
	if id == 0 {
		return nil, fmt.Errorf("membership ID cannot be zero")
	}
	m, err := NewMembership(userID, organizationID, role)
	if err != nil {
		return nil, err
	}
	m.id = id
	m.createdAt = createdAt
	return m, nil
}

func (m *Membership) ID() uint             { return m.id }
func (m *Membership) UserID() uint         { return m.userID }
func (m *Membership) OrganizationID() uint { return m.organizationID }
func (m *Membership) Role() Role           { return m.role }
func (m *Membership) CreatedAt() time.Time { return m.createdAt }

func (m *Membership) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("membership ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("membership ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Membership) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	m.role = role
	return nil
}
