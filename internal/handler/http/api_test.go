package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI wires the whole stack over an in-memory SQLite database.
func newTestAPI(t *testing.T) (*httptest.Server, *store.DB) {
	t.Helper()

	log := logger.Nop()

	db, err := store.NewConnectSQLite(context.Background(), ":memory:", log)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	services, err := service.NewServices(
		store.NewStorages(db, log),
		config.StructuredConfig{App: config.App{Version: "test"}},
		clockwork.NewRealClock(),
		log,
	)
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, log).Init())
	t.Cleanup(func() {
		srv.Close()
		_ = db.Close()
	})

	return srv, db
}

func postUser(t *testing.T, srv *httptest.Server, body string) (int, string) {
	t.Helper()

	resp, err := http.Post(srv.URL+"/api/users", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(data)
}

func getUsers(t *testing.T, srv *httptest.Server) []models.User {
	t.Helper()

	resp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))

	return users
}

func getHealth(t *testing.T, srv *httptest.Server) (int, models.HealthResponse) {
	t.Helper()

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var report models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))

	return resp.StatusCode, report
}

func TestAPI_ListUsersEmpty(t *testing.T) {
	srv, _ := newTestAPI(t)

	resp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestAPI_CreatedUserIsListedOnce(t *testing.T) {
	srv, _ := newTestAPI(t)

	status, body := postUser(t, srv, `{"username":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, status)

	var created models.User
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	users := getUsers(t, srv)

	matches := 0
	for _, u := range users {
		if u.ID == created.ID {
			matches++
			assert.Equal(t, created.Username, u.Username)
			assert.Equal(t, created.Email, u.Email)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestAPI_DuplicateUsernameConflicts(t *testing.T) {
	srv, _ := newTestAPI(t)

	status, _ := postUser(t, srv, `{"username":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, status)
	before := getUsers(t, srv)

	status, body := postUser(t, srv, `{"username":"alice","email":"another@example.com"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.JSONEq(t, `{"error":"Username or email already exists"}`, body)

	assert.Equal(t, before, getUsers(t, srv))
}

func TestAPI_DuplicateEmailConflicts(t *testing.T) {
	srv, _ := newTestAPI(t)

	status, _ := postUser(t, srv, `{"username":"alice","email":"shared@example.com"}`)
	require.Equal(t, http.StatusCreated, status)

	status, _ = postUser(t, srv, `{"username":"bob","email":"shared@example.com"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Len(t, getUsers(t, srv), 1)
}

func TestAPI_MissingFieldsRejected(t *testing.T) {
	srv, _ := newTestAPI(t)

	for _, body := range []string{
		`{"username":"alice"}`,
		`{"email":"alice@example.com"}`,
		`{"username":"","email":"alice@example.com"}`,
		`{}`,
	} {
		status, resp := postUser(t, srv, body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.JSONEq(t, `{"error":"Username and email are required"}`, resp)
	}

	assert.Empty(t, getUsers(t, srv))
}

func TestAPI_EmptyBodyIsMissingFields(t *testing.T) {
	srv, _ := newTestAPI(t)

	status, resp := postUser(t, srv, ``)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Username and email are required"}`, resp)
	assert.Empty(t, getUsers(t, srv))
}

func TestAPI_MalformedJSONRejected(t *testing.T) {
	srv, _ := newTestAPI(t)

	status, resp := postUser(t, srv, `{"username":"alice",`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Invalid JSON was passed"}`, resp)
	assert.Empty(t, getUsers(t, srv))
}

func TestAPI_UsersSortedByID(t *testing.T) {
	srv, _ := newTestAPI(t)

	for _, name := range []string{"carol", "alice", "bob"} {
		status, _ := postUser(t, srv, `{"username":"`+name+`","email":"`+name+`@example.com"}`)
		require.Equal(t, http.StatusCreated, status)
	}

	users := getUsers(t, srv)
	require.Len(t, users, 3)
	for i := 1; i < len(users); i++ {
		assert.Less(t, users[i-1].ID, users[i].ID)
	}
	assert.Equal(t, "carol", users[0].Username)
}

func TestAPI_HealthFollowsDatabase(t *testing.T) {
	srv, db := newTestAPI(t)

	status, report := getHealth(t, srv)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.HealthStatusHealthy, report.Status)
	assert.Equal(t, models.DatabaseConnected, report.Database)
	assert.NotEmpty(t, report.Timestamp)

	require.NoError(t, db.Close())

	status, report = getHealth(t, srv)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, models.HealthStatusUnhealthy, report.Status)
	assert.Equal(t, models.DatabaseDisconnected, report.Database)
}

func TestAPI_UnregisteredMethodIsNotFound(t *testing.T) {
	srv, _ := newTestAPI(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/users", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Not found"}`, string(body))
}

func TestAPI_MetricsExposed(t *testing.T) {
	srv, _ := newTestAPI(t)

	getUsers(t, srv)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "registry_http_requests_total")
}
