package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/activity"
)

// ActivityRepository manages activity directory persistence
type ActivityRepository interface {
	List(ctx context.Context) ([]activity.Activity, error)
	Get(ctx context.Context, name string) (*activity.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
	Seed(ctx context.Context, activities []activity.Activity) error
}
