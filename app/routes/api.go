// Package routes declares the HTTP surface. Paths mirror the contract
// the booking frontend already speaks.
package routes

import (
	"net/http"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/controllers"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/metrics"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/middleware"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/rbac"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/router"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/ws"
)

// Deps carries the constructed controllers and extra handlers the route
// table mounts.
type Deps struct {
	Auth         *controllers.AuthController
	Bookings     *controllers.BookingController
	Admin        *controllers.AdminController
	Messages     *controllers.MessageController
	Destinations *controllers.DestinationController
	AdminFeed    *ws.Hub
	GraphQL      http.HandlerFunc
}

// RegisterAPI mounts every route on r.
func RegisterAPI(r *router.Router, d Deps) {
	// Public surface.
	r.Post("/auth/signup", "auth.signup", d.Auth.Signup)
	r.Post("/auth/login", "auth.login", d.Auth.Login)
	r.Get("/auth/me", "auth.me", d.Auth.Me)
	r.Post("/auth/logout", "auth.logout", d.Auth.Logout)
	r.Get("/destinations", "destinations.index", d.Destinations.Index)
	r.Post("/messages", "messages.store", d.Messages.Store)
	r.Get("/metrics", "metrics", metrics.Handler())

	// Any authenticated user.
	user := r.Group("", middleware.Auth)
	user.Post("/bookings", "bookings.store", d.Bookings.Store)
	user.Get("/bookings/mine", "bookings.mine", d.Bookings.Mine)

	// Admin only.
	admin := r.Group("/admin", middleware.Auth, rbac.HasRole(models.RoleAdmin))
	admin.Get("/bookings", "admin.bookings", d.Admin.Bookings)
	admin.Get("/stats", "admin.stats", d.Admin.Stats)
	admin.Get("/users", "admin.users", d.Admin.Users)
	admin.Delete("/users/{id}", "admin.users.delete", d.Admin.DeleteUser)
	admin.Get("/messages", "admin.messages", d.Admin.Messages)
	admin.Post("/graphql", "admin.graphql", d.GraphQL)

	// Live event feed for the dashboard.
	r.Get("/ws/admin", "ws.admin", d.AdminFeed.Serve,
		middleware.Auth, rbac.HasRole(models.RoleAdmin))
}
