package api

import (
	"net/http"

	"gazeta-portal/api/handlers"
	"gazeta-portal/core/rbac"
)

func (s *Server) registerRoutes() {
	h := s.newHandlerDeps()

	s.router.Use(s.recoverMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.metricsMiddleware)

	s.router.MethodFunc("GET", "/", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(handlers.SessionCookie); err == nil && c.Value != "" {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	// Session surface.
	s.router.MethodFunc("GET", "/login", h.LoginPage)
	s.router.MethodFunc("POST", "/login", h.Login)
	s.router.MethodFunc("GET", "/logout", s.withSession(h.Logout))

	// Authenticated portal.
	s.router.MethodFunc("GET", "/dashboard", s.withSession(h.Dashboard))
	s.router.MethodFunc("GET", "/welcome", s.withSession(s.requirePermission(rbac.PermManageSettings)(h.WelcomePage)))
	s.router.MethodFunc("POST", "/welcome/complete", s.withSession(s.requirePermission(rbac.PermManageSettings)(h.CompleteOnboarding)))

	s.router.MethodFunc("POST", "/students", s.withSession(s.requirePermission(rbac.PermManageStudents)(h.CreateStudent)))
	s.router.MethodFunc("POST", "/students/{id}/toggle", s.withSession(s.requirePermission(rbac.PermManageStudents)(h.ToggleStudentPortal)))

	s.router.MethodFunc("POST", "/journals", s.withSession(s.requirePermission(rbac.PermManageJournals)(h.CreateJournal)))

	s.router.MethodFunc("POST", "/assets", s.withSession(s.requirePermission(rbac.PermManageAssets)(h.CreateAsset)))
	s.router.MethodFunc("GET", "/uploads/{kind}/{name}", s.withSession(h.Download))

	s.router.MethodFunc("POST", "/rules", s.withSession(s.requirePermission(rbac.PermManageRules)(h.UpdateRules)))

	s.router.MethodFunc("POST", "/announcements", s.withSession(s.requirePermission(rbac.PermManageAnnouncements)(h.CreateAnnouncement)))
	s.router.MethodFunc("POST", "/announcements/{id}/remove", s.withSession(s.requirePermission(rbac.PermManageAnnouncements)(h.RemoveAnnouncement)))

	s.router.MethodFunc("POST", "/calendar", s.withSession(s.requirePermission(rbac.PermManageCalendar)(h.AddEvent)))

	s.router.MethodFunc("POST", "/departments", s.withSession(s.requirePermission(rbac.PermManageDepartments)(h.CreateDepartment)))
	s.router.MethodFunc("POST", "/departments/{id}/queue/{queueID}/{action}", s.withSession(s.requirePermission(rbac.PermApproveDepartments)(h.DecideQueue)))
	s.router.MethodFunc("POST", "/departments/{id}/members", s.withSession(s.requirePermission(rbac.PermManageDepartments)(h.AddMember)))
	s.router.MethodFunc("GET", "/departments/{id}/qr", s.withSession(h.JoinQR))

	s.router.MethodFunc("POST", "/tickets", s.withSession(h.OpenTicket))
	s.router.MethodFunc("POST", "/tickets/{id}/reply", s.withSession(h.ReplyTicket))
	s.router.MethodFunc("POST", "/tickets/{id}/close", s.withSession(s.requirePermission(rbac.PermManageTickets)(h.CloseTicket)))
	s.router.MethodFunc("POST", "/tickets/{id}/delete", s.withSession(s.requirePermission(rbac.PermManageTickets)(h.DeleteTicket)))

	s.router.MethodFunc("POST", "/roles", s.withSession(s.requirePermission(rbac.PermManageRoles)(h.CreateRole)))
	s.router.MethodFunc("POST", "/users", s.withSession(s.requirePermission(rbac.PermManageUsers)(h.CreateUser)))
	s.router.MethodFunc("POST", "/users/{id}/role", s.withSession(s.requirePermission(rbac.PermManageRoles)(h.SetUserRole)))
	s.router.MethodFunc("POST", "/users/{id}/toggle", s.withSession(s.requirePermission(rbac.PermManageUsers)(h.ToggleUserPortal)))

	s.router.MethodFunc("POST", "/settings", s.withSession(s.requirePermission(rbac.PermManageSettings)(h.UpdateVisual)))
	s.router.MethodFunc("POST", "/settings/widgets", s.withSession(s.requirePermission(rbac.PermManageSettings)(h.SaveWidgets)))

	// Capability URLs, reachable without a session.
	s.router.MethodFunc("GET", "/departments/apply/{token}", h.ApplyPage)
	s.router.MethodFunc("POST", "/departments/apply/{token}", h.ApplySubmit)
	s.router.MethodFunc("GET", "/approve/{token}", h.ApprovalPage)
	s.router.MethodFunc("POST", "/approve/{token}", h.ApprovalDecide)

	s.registerObservabilityRoutes()
}
