package server

// Route path constants
const (
	RouteHealth = "/healthz"

	// Session routes, all guarded by RequireSession
	RouteSession       = "/api/session"
	RouteSessionTouch  = "/api/session/touch"
	RouteSessionLogout = "/api/session/logout"
)
