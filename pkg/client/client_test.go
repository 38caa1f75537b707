package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// fakeAPI answers the auth routes with canned envelopes.
func fakeAPI(t *testing.T) (*httptest.Server, *recorder) {
	t.Helper()
	calls := &recorder{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		calls.add("login")
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		if body["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Invalid credentials","error":"unauthorized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"message":"Login successful","token":"tok-1",
			"user":{"id":"u1","email":"sen@example.com","role":"clinic","userType":"doctor"}}`))
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		calls.add("me")
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Authentication required"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"u1","email":"sen@example.com","role":"clinic","userType":"doctor","nmrNumber":"NMR-1"}}`))
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		calls.add("logout:" + r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Logged out successfully"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, calls
}

func newClient(t *testing.T, url string) *Client {
	t.Helper()
	s, err := LoadSession(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return New(url+"/", s)
}

func TestClient_LoginMeLogout(t *testing.T) {
	srv, calls := fakeAPI(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()

	user, err := c.Login(ctx, "sen@example.com", "secret123", "clinic")
	require.NoError(t, err)
	assert.Equal(t, "doctor", user.UserType)
	assert.Equal(t, "tok-1", c.Session().Token())
	assert.Equal(t, RouteDoctorDashboard, Destination(c.Session().User()))

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sen@example.com", me.Email)

	require.NoError(t, c.Logout(ctx))
	assert.False(t, c.Session().Authenticated())
	assert.Equal(t, []string{"login", "me", "logout:Bearer tok-1"}, calls.list())
}

func TestClient_LoginRejected(t *testing.T) {
	srv, _ := fakeAPI(t)
	c := newClient(t, srv.URL)

	_, err := c.Login(context.Background(), "sen@example.com", "wrong", "clinic")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Error())
	assert.False(t, c.Session().Authenticated())
}

func TestClient_MeSignedOut(t *testing.T) {
	srv, calls := fakeAPI(t)
	c := newClient(t, srv.URL)

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Empty(t, calls.list())

	// logout without a session only clears local state
	assert.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, calls.list())
}
