package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
	"github.com/Naxdouglas/contract-renewal-sys/internal/dashboard"
	"github.com/Naxdouglas/contract-renewal-sys/internal/document"
	"github.com/Naxdouglas/contract-renewal-sys/internal/notification"
	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
	"github.com/Naxdouglas/contract-renewal-sys/internal/renewal"
	"github.com/Naxdouglas/contract-renewal-sys/internal/ticket"
	"github.com/Naxdouglas/contract-renewal-sys/internal/transport/middleware"
	"github.com/Naxdouglas/contract-renewal-sys/internal/transport/swagger"
	"github.com/Naxdouglas/contract-renewal-sys/internal/user"
	"github.com/go-chi/chi"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	User         *user.Handler
	Officer      *officer.Handler
	Renewal      *renewal.Handler
	Ticket       *ticket.Handler
	Notification *notification.Handler
	Document     *document.Handler
	Dashboard    *dashboard.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	rbac := auth.NewRBACAuthorization(auth.NewRoleChecker(), logger)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Everything below requires a session.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)
			pr.Get("/dashboard", h.Dashboard.GetDashboard)

			pr.Get("/notifications", h.Notification.GetNotifications)
			pr.Patch("/notifications/{id}/read", h.Notification.MarkNotificationRead)

			pr.Get("/tickets", h.Ticket.GetTickets)
			pr.Post("/tickets", h.Ticket.CreateTicket)
			pr.Group(func(tr chi.Router) {
				tr.Use(rbac.RequireRole(auth.RoleHR))
				tr.Patch("/tickets/{id}/close", h.Ticket.CloseTicket)
			})

			// User administration
			pr.Route("/users", func(ur chi.Router) {
				ur.Use(rbac.RequireAdmin())
				ur.Get("/", h.User.GetUsers)
				ur.Post("/", h.User.CreateUser)
				ur.Put("/{id}", h.User.UpdateUser)
				ur.Delete("/{id}", h.User.DeleteUser)
			})

			// Officer records: HR owns the roster, Managers and Approvers
			// may read it while reviewing.
			pr.Route("/officers", func(or chi.Router) {
				or.Group(func(rr chi.Router) {
					rr.Use(rbac.RequireRole(auth.RoleHR, auth.RoleManager, auth.RoleApprover))
					rr.Get("/", h.Officer.GetOfficers)
					rr.Get("/{id}", h.Officer.GetOfficer)
				})

				or.Group(func(hr chi.Router) {
					hr.Use(rbac.RequireHR())
					hr.Post("/", h.Officer.CreateOfficer)
					hr.Patch("/{id}/renew", h.Officer.RenewContract)
					hr.Patch("/{id}/approve-renewal", h.Officer.ApproveRenewal)
					hr.Patch("/{id}/compliance", h.Officer.ToggleCompliance)
					hr.Patch("/{id}/terminate", h.Officer.TerminateOfficer)
				})
			})

			pr.Group(func(hr chi.Router) {
				hr.Use(rbac.RequireHR())
				hr.Get("/reports/officers", h.Officer.OfficerReport)
				hr.Post("/documents/upload/{officerID}", h.Document.UploadDocument)
			})

			// Renewal workflow
			pr.Route("/renewal-requests", func(rr chi.Router) {
				rr.Group(func(lr chi.Router) {
					lr.Use(rbac.RequireRole(auth.RoleHR, auth.RoleManager, auth.RoleApprover))
					lr.Get("/", h.Renewal.GetRequests)
					lr.Get("/{id}", h.Renewal.GetRequest)
				})

				rr.Group(func(sr chi.Router) {
					sr.Use(rbac.RequireHR())
					sr.Post("/", h.Renewal.SubmitRequest)
				})

				rr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequireManager())
					mr.Post("/{id}/recommend", h.Renewal.RecommendRequest)
				})

				rr.Group(func(ar chi.Router) {
					ar.Use(rbac.RequireApprover())
					ar.Patch("/{id}/decide", h.Renewal.DecideRequest)
				})
			})
		})
	})
}
