package activity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	repository "github.com/mergington/activities/internal/repository/repoerr"
)

// Service handles directory operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// List returns the full directory keyed by activity name.
func (s *Service) List(ctx context.Context) (Directory, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	dir := make(Directory, len(activities))
	for _, a := range activities {
		dir[a.Name] = a
	}
	return dir, nil
}

// Get fetches a single activity by name.
func (s *Service) Get(ctx context.Context, name string) (*Activity, error) {
	a, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("getting activity: %w", err)
	}
	return a, nil
}

// Signup appends email to the named activity's roster. The email is
// appended at the end; max_participants is descriptive metadata and is
// not enforced as a capacity limit.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}

	if err := s.repo.AddParticipant(ctx, name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrActivityNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return ErrAlreadySignedUp
		}
		return fmt.Errorf("adding participant: %w", err)
	}

	s.logger.Info("participant signed up", "activity", name, "email", email)
	return nil
}

// Unregister removes email from the named activity's roster. Relative
// order of the remaining participants is preserved.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}

	if err := s.repo.RemoveParticipant(ctx, name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrActivityNotFound
		case errors.Is(err, repository.ErrNotOnRoster):
			return ErrNotRegistered
		}
		return fmt.Errorf("removing participant: %w", err)
	}

	s.logger.Info("participant unregistered", "activity", name, "email", email)
	return nil
}
