package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/sqlite"
	"github.com/mergington/activities/internal/transport"
)

// TestServer bundles a seeded in-memory store behind a live HTTP server.
type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Repo   *sqlite.ActivityRepository
}

// New starts a server backed by a fresh in-memory database seeded with
// the default directory.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	repo := sqlite.NewActivityRepository(db)
	require.NoError(t, repo.Seed(context.Background(), activity.DefaultDirectory()))

	svc := activity.NewService(repo, nil)
	server := httptest.NewServer(transport.NewServer(svc, nil))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server: server,
		DB:     db,
		Repo:   repo,
	}
}
