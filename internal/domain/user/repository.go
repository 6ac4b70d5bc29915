package user

import "context"

// Repository is the persistence port for users.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ListByIDs resolves assignee and closer names in bulk for listings.
	ListByIDs(ctx context.Context, ids []uint) ([]*User, error)
	ListByOrganization(ctx context.Context, organizationID uint) ([]*User, error)
}
