package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	signedOut, err := LoadSession(filepath.Join(t.TempDir(), "out.json"))
	require.NoError(t, err)
	signedIn, err := LoadSession(filepath.Join(t.TempDir(), "in.json"))
	require.NoError(t, err)
	require.NoError(t, signedIn.Login(User{ID: "u1", Role: "patient"}, "tok"))

	tests := []struct {
		route   string
		out, in string
	}{
		{RouteLogin, "", RouteHome},
		{RouteSignup, "", RouteHome},
		{RouteHome, RouteLogin, ""},
		{RouteDoctorDashboard, RouteLogin, ""},
		{RouteAdminDashboard, RouteLogin, ""},
		{RouteRoot, RouteSignup, RouteSignup},
		{"/nowhere", RouteSignup, RouteSignup},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.out, signedOut.Guard(tt.route))
			assert.Equal(t, tt.in, signedIn.Guard(tt.route))
		})
	}
}

func TestDestination(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{"patient", &User{Role: "patient"}, RoutePatientDashboard},
		{"admin", &User{Role: "admin"}, RouteAdminDashboard},
		{"doctor", &User{Role: "clinic", UserType: "doctor"}, RouteDoctorDashboard},
		{"nurse", &User{Role: "clinic", UserType: "nurse"}, RouteNurseDashboard},
		{"receptionist", &User{Role: "clinic", UserType: "receptionist"}, RouteReceptionistDashboard},
		{"clinic without sub-role", &User{Role: "clinic"}, RouteHome},
		{"unknown role", &User{Role: "janitor"}, RouteHome},
		{"nobody", nil, RouteLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Destination(tt.user))
		})
	}
}
