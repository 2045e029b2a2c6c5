package api

import (
	"context"
	"net/http"
	"time"

	"gazeta-portal/api/handlers"
	"gazeta-portal/core/auth"
	"gazeta-portal/core/rbac"
	"gazeta-portal/core/store"
)

// withSession admits only requests carrying a live session cookie; everything
// else is redirected to the login page with a notice. The session record (the
// principal snapshot) rides the request context from here on.
func (s *Server) withSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(handlers.SessionCookie)
		if err != nil || cookie.Value == "" {
			handlers.Flash(w, "Entre com um usuário habilitado para continuar", "warning")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		sr, err := s.sessions.GetSession(r.Context(), cookie.Value)
		if err != nil {
			s.logger.Errorf("session lookup: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if sr == nil {
			handlers.Flash(w, "Sessão expirada", "warning")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if ru, ok := r.Context().Value(requestUserKey{}).(*requestUser); ok {
			ru.name = sr.Username
		}
		ctx := context.WithValue(r.Context(), auth.SessionContextKey, sr)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// requirePermission gates a handler on one permission token from the session's
// snapshot. Authentication is always checked first (withSession wraps this).
func (s *Server) requirePermission(perm rbac.Permission) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			val := r.Context().Value(auth.SessionContextKey)
			if val == nil {
				handlers.Flash(w, "Sessão expirada", "warning")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			sr := val.(*store.SessionRecord)
			if !sr.Has(perm) {
				if s.logger != nil {
					s.logger.Printf("PERM fail %s %s user=%s need=%s", r.Method, r.URL.Path, sr.Username, perm)
				}
				handlers.Flash(w, "Você não tem permissão para essa ação", "danger")
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}

// requestUser is a mutable context slot the session middleware fills in so the
// response log line can name the principal. Public routes stay "-".
type requestUser struct{ name string }

type requestUserKey struct{}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ru := &requestUser{name: "-"}
		r = r.WithContext(context.WithValue(r.Context(), requestUserKey{}, ru))
		if s.logger != nil {
			s.logger.Printf("REQ %s %s", r.Method, r.URL.Path)
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if s.logger != nil {
			s.logger.Printf("RESP %s %s user=%s status=%d dur=%s", r.Method, r.URL.Path, ru.name, rec.status, time.Since(start))
		}
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if s.logger != nil {
					s.logger.Errorf("PANIC %s %s: %v", r.Method, r.URL.Path, rec)
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
