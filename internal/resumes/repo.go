package resumes

import "context"

// Repository persists builder documents, scoped by owner.
type Repository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, userID, id string) (*Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, userID, id string) error
}
