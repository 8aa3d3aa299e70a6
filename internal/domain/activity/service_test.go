package activity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/repository"
	"github.com/mergington/activities/internal/repository/mocks"
)

func TestActivityService_List(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("List", ctx).Return([]activity.Activity{
		{Name: "Basketball", Description: "Hoops", Schedule: "Tuesdays", MaxParticipants: 15, Participants: []string{"liam@mergington.edu"}},
		{Name: "Chess Club", Description: "Chess", Schedule: "Fridays", MaxParticipants: 12, Participants: []string{}},
	}, nil)

	svc := activity.NewService(repo, nil)
	dir, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, dir, 2)
	require.Equal(t, []string{"liam@mergington.edu"}, dir["Basketball"].Participants)
	require.Empty(t, dir["Chess Club"].Participants)
}

func TestActivityService_Signup(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("AddParticipant", ctx, "Basketball", "new@mergington.edu").Return(nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.Signup(ctx, "Basketball", "new@mergington.edu"))
	repo.AssertExpectations(t)
}

func TestActivityService_SignupUnknownActivity(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("AddParticipant", ctx, "Water Polo", "new@mergington.edu").Return(repository.ErrNotFound)

	svc := activity.NewService(repo, nil)
	err := svc.Signup(ctx, "Water Polo", "new@mergington.edu")
	require.ErrorIs(t, err, activity.ErrActivityNotFound)
}

func TestActivityService_SignupDuplicate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("AddParticipant", ctx, "Basketball", "liam@mergington.edu").Return(repository.ErrDuplicate)

	svc := activity.NewService(repo, nil)
	err := svc.Signup(ctx, "Basketball", "liam@mergington.edu")
	require.ErrorIs(t, err, activity.ErrAlreadySignedUp)
}

func TestActivityService_SignupEmptyEmail(t *testing.T) {
	repo := &mocks.ActivityRepository{}

	svc := activity.NewService(repo, nil)
	err := svc.Signup(context.Background(), "Basketball", "  ")
	require.ErrorIs(t, err, activity.ErrInvalidInput)
	repo.AssertNotCalled(t, "AddParticipant")
}

func TestActivityService_Unregister(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("RemoveParticipant", ctx, "Basketball", "liam@mergington.edu").Return(nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.Unregister(ctx, "Basketball", "liam@mergington.edu"))
	repo.AssertExpectations(t)
}

func TestActivityService_UnregisterNotOnRoster(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("RemoveParticipant", ctx, "Math Club", "ghost@mergington.edu").Return(repository.ErrNotOnRoster)

	svc := activity.NewService(repo, nil)
	err := svc.Unregister(ctx, "Math Club", "ghost@mergington.edu")
	require.ErrorIs(t, err, activity.ErrNotRegistered)
}

func TestActivityService_UnregisterUnknownActivity(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("RemoveParticipant", ctx, "Water Polo", "liam@mergington.edu").Return(repository.ErrNotFound)

	svc := activity.NewService(repo, nil)
	err := svc.Unregister(ctx, "Water Polo", "liam@mergington.edu")
	require.ErrorIs(t, err, activity.ErrActivityNotFound)
}
