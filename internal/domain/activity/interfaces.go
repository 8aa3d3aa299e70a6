package activity

import "context"

// Repository provides persistence operations for the activity directory.
type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}
