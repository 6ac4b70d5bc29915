package organization

import "context"

// Repository is the persistence port for organizations.
type Repository interface {
	Save(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id uint) (*Organization, error)
	GetBySlug(ctx context.Context, slug string) (*Organization, error)
	List(ctx context.Context) ([]*Organization, error)
}

// MembershipRepository manages the user/organization links.
type MembershipRepository interface {
	Save(ctx context.Context, m *Membership) error
	Get(ctx context.Context, userID, organizationID uint) (*Membership, error)
	// ListByUser returns every membership of one user, used to build the
	// organization picker after login.
	ListByUser(ctx context.Context, userID uint) ([]*Membership, error)
	ListByOrganization(ctx context.Context, organizationID uint) ([]*Membership, error)
	Delete(ctx context.Context, userID, organizationID uint) error
}
