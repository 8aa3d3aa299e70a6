package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/repository"
)

// ActivityRepository implements repository.ActivityRepository for SQLite
type ActivityRepository struct {
	db *DB
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns every activity with its roster in signup order
func (r *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	query := `
		SELECT name, description, schedule, max_participants
		FROM activities
		ORDER BY rowid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		var a activity.Activity
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}

	for i := range activities {
		roster, err := r.roster(ctx, activities[i].Name)
		if err != nil {
			return nil, err
		}
		activities[i].Participants = roster
	}

	return activities, nil
}

// Get retrieves an activity by name
func (r *ActivityRepository) Get(ctx context.Context, name string) (*activity.Activity, error) {
	query := `
		SELECT name, description, schedule, max_participants
		FROM activities
		WHERE name = ?
	`

	var a activity.Activity
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&a.Name,
		&a.Description,
		&a.Schedule,
		&a.MaxParticipants,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	roster, err := r.roster(ctx, name)
	if err != nil {
		return nil, err
	}
	a.Participants = roster

	return &a, nil
}

// AddParticipant appends email to the named activity's roster
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := activityExists(ctx, tx, name); err != nil {
		return err
	}

	query := `
		INSERT INTO participants (activity_name, email, position)
		VALUES (?, ?, (
			SELECT COALESCE(MAX(position) + 1, 0)
			FROM participants WHERE activity_name = ?
		))
	`
	if _, err := tx.ExecContext(ctx, query, name, email, name); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to add participant: %w", err)
	}

	return tx.Commit()
}

// RemoveParticipant removes email from the named activity's roster.
// Positions of the remaining participants are untouched, so relative
// order is preserved.
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := activityExists(ctx, tx, name); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM participants WHERE activity_name = ? AND email = ?`,
		name, email,
	)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotOnRoster
	}

	return tx.Commit()
}

// Seed inserts the startup directory. Existing activities are left alone,
// so re-running against a populated store is a no-op.
func (r *ActivityRepository) Seed(ctx context.Context, activities []activity.Activity) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, a := range activities {
		result, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO activities (name, description, schedule, max_participants)
			 VALUES (?, ?, ?, ?)`,
			a.Name, a.Description, a.Schedule, a.MaxParticipants,
		)
		if err != nil {
			return fmt.Errorf("failed to seed activity %q: %w", a.Name, err)
		}
		inserted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check seed insert: %w", err)
		}
		if inserted == 0 {
			continue
		}

		for i, email := range a.Participants {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO participants (activity_name, email, position) VALUES (?, ?, ?)`,
				a.Name, email, i,
			); err != nil {
				return fmt.Errorf("failed to seed roster for %q: %w", a.Name, err)
			}
		}
	}

	return tx.Commit()
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func activityExists(ctx context.Context, q querier, name string) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM activities WHERE name = ?`, name).Scan(&one)
	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) roster(ctx context.Context, name string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT email FROM participants WHERE activity_name = ? ORDER BY position`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	defer rows.Close()

	// Empty rosters serialize as [], not null.
	roster := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		roster = append(roster, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster: %w", err)
	}

	return roster, nil
}
