package functional_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/testserver"
)

type activityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func getActivities(t *testing.T, baseURL string) map[string]activityView {
	t.Helper()

	resp, err := http.Get(baseURL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities map[string]activityView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))
	return activities
}

func post(t *testing.T, baseURL, activity, action, email string) (int, map[string]string) {
	t.Helper()

	endpoint := baseURL + "/activities/" + url.PathEscape(activity) + "/" + action +
		"?email=" + url.QueryEscape(email)
	resp, err := http.Post(endpoint, "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestGetActivities(t *testing.T) {
	ts := testserver.New(t)
	activities := getActivities(t, ts.Server.URL)

	require.NotEmpty(t, activities)
	require.Contains(t, activities, "Basketball")

	for name, a := range activities {
		require.NotEmpty(t, a.Description, "activity %q has no description", name)
		require.NotEmpty(t, a.Schedule, "activity %q has no schedule", name)
		require.Positive(t, a.MaxParticipants, "activity %q has no capacity", name)
		require.NotNil(t, a.Participants, "activity %q roster is null", name)
	}

	var hasParticipants bool
	for _, a := range activities {
		if len(a.Participants) > 0 {
			hasParticipants = true
			break
		}
	}
	require.True(t, hasParticipants, "no seeded activity has participants")
}

func TestSignupNewParticipant(t *testing.T) {
	ts := testserver.New(t)

	status, body := post(t, ts.Server.URL, "Tennis Club", "signup", "newuser@example.com")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body["message"], "newuser@example.com")
}

func TestSignupDuplicateParticipant(t *testing.T) {
	ts := testserver.New(t)

	status, _ := post(t, ts.Server.URL, "Art Club", "signup", "duplicate@example.com")
	require.Equal(t, http.StatusOK, status)

	status, body := post(t, ts.Server.URL, "Art Club", "signup", "duplicate@example.com")
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body["detail"], "already signed up")
}

func TestSignupUnknownActivity(t *testing.T) {
	ts := testserver.New(t)

	status, body := post(t, ts.Server.URL, "Invalid Activity", "signup", "test@example.com")
	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, body["detail"], "not found")
}

func TestSignupAddsParticipant(t *testing.T) {
	ts := testserver.New(t)

	before := getActivities(t, ts.Server.URL)["Drama Club"].Participants

	status, _ := post(t, ts.Server.URL, "Drama Club", "signup", "verify@example.com")
	require.Equal(t, http.StatusOK, status)

	after := getActivities(t, ts.Server.URL)["Drama Club"].Participants
	require.Len(t, after, len(before)+1)
	require.Contains(t, after, "verify@example.com")
	// Appended at the end; existing order preserved.
	require.Equal(t, before, after[:len(before)])
	require.Equal(t, "verify@example.com", after[len(after)-1])
}

func TestUnregisterParticipant(t *testing.T) {
	ts := testserver.New(t)

	status, _ := post(t, ts.Server.URL, "Basketball", "signup", "unregister@example.com")
	require.Equal(t, http.StatusOK, status)

	status, body := post(t, ts.Server.URL, "Basketball", "unregister", "unregister@example.com")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body["message"], "unregister@example.com")
}

func TestUnregisterAbsentParticipant(t *testing.T) {
	ts := testserver.New(t)

	status, body := post(t, ts.Server.URL, "Math Club", "unregister", "nonexistent@example.com")
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body["detail"], "not registered")
}

func TestUnregisterUnknownActivity(t *testing.T) {
	ts := testserver.New(t)

	status, body := post(t, ts.Server.URL, "Invalid Activity", "unregister", "test@example.com")
	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, body["detail"], "not found")
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	ts := testserver.New(t)

	before := getActivities(t, ts.Server.URL)["Robotics Club"].Participants

	status, _ := post(t, ts.Server.URL, "Robotics Club", "signup", "removetest@example.com")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, getActivities(t, ts.Server.URL)["Robotics Club"].Participants, "removetest@example.com")

	status, _ = post(t, ts.Server.URL, "Robotics Club", "unregister", "removetest@example.com")
	require.Equal(t, http.StatusOK, status)

	after := getActivities(t, ts.Server.URL)["Robotics Club"].Participants
	require.Equal(t, before, after)
}

func TestRootResolvesToIndex(t *testing.T) {
	ts := testserver.New(t)

	// Default client follows the redirect to the static page.
	resp, err := http.Get(ts.Server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
