package client

const (
	RouteRoot   = "/"
	RouteLogin  = "/login"
	RouteSignup = "/signup"
	RouteHome   = "/home"

	RoutePatientDashboard      = "/patient-dashboard"
	RouteDoctorDashboard       = "/doctor-dashboard"
	RouteNurseDashboard        = "/nurse-dashboard"
	RouteReceptionistDashboard = "/receptionist-dashboard"
	RouteAdminDashboard        = "/admin-dashboard"
)

var protectedRoutes = map[string]bool{
	RouteHome:                  true,
	RoutePatientDashboard:      true,
	RouteDoctorDashboard:       true,
	RouteNurseDashboard:        true,
	RouteReceptionistDashboard: true,
	RouteAdminDashboard:        true,
}

// Guard returns where a visit to route should be sent instead, or "" when
// the route may be shown. Unknown routes fall back to signup.
func (s *Session) Guard(route string) string {
	authenticated := s.Authenticated()

	switch {
	case route == RouteLogin || route == RouteSignup:
		if authenticated {
			return RouteHome
		}
		return ""
	case protectedRoutes[route]:
		if !authenticated {
			return RouteLogin
		}
		return ""
	default:
		return RouteSignup
	}
}

// Destination picks the dashboard for user. Clinic accounts are routed by
// sub-role; anything unrecognised lands on the home screen.
func Destination(user *User) string {
	if user == nil {
		return RouteLogin
	}

	switch user.Role {
	case "patient":
		return RoutePatientDashboard
	case "admin":
		return RouteAdminDashboard
	case "clinic":
		switch user.UserType {
		case "doctor":
			return RouteDoctorDashboard
		case "nurse":
			return RouteNurseDashboard
		case "receptionist":
			return RouteReceptionistDashboard
		}
	}
	return RouteHome
}
