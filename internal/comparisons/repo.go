package comparisons

import "context"

// Repository persists comparison records, scoped by owner.
type Repository interface {
	Create(ctx context.Context, cmp *Comparison) error
	GetByID(ctx context.Context, userID, id string) (*Comparison, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Comparison, error)
}
