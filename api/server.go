package api

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"
	"time"

	"gazeta-portal/api/handlers"
	"gazeta-portal/config"
	"gazeta-portal/core/auth"
	"gazeta-portal/core/blob"
	"gazeta-portal/core/store"
	"gazeta-portal/core/utils"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

type Server struct {
	cfg            *config.AppConfig
	db             *sql.DB
	router         chi.Router
	httpServer     *http.Server
	logger         *utils.Logger
	sessionManager *auth.SessionManager
	resolver       *auth.Resolver

	sessions      store.SessionStore
	students      store.StudentsStore
	journals      store.JournalsStore
	assets        store.AssetsStore
	rules         store.RulesStore
	announcements store.AnnouncementsStore
	calendar      store.CalendarStore
	departments   store.DepartmentsStore
	tickets       store.TicketsStore
	users         store.UsersStore
	roles         store.RolesStore
	settings      store.SettingsStore

	journalBlobs *blob.Store
	assetBlobs   *blob.Store

	reqTotal    *prometheus.CounterVec
	reqDuration *prometheus.HistogramVec
}

func NewServer(cfg *config.AppConfig, db *sql.DB, logger *utils.Logger) (*Server, error) {
	docs := store.NewDocuments(db)
	sessions := store.NewSessionsStore(db)
	users := store.NewUsersStore(docs)
	roles := store.NewRolesStore(docs)

	journalBlobs, err := blob.NewStore(filepath.Join(cfg.UploadRoot, "journals"), blob.JournalExtensions, cfg.MaxUpload)
	if err != nil {
		return nil, err
	}
	assetBlobs, err := blob.NewStore(filepath.Join(cfg.UploadRoot, "assets"), blob.AssetExtensions, cfg.MaxUpload)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:            cfg,
		db:             db,
		router:         chi.NewRouter(),
		logger:         logger,
		sessionManager: auth.NewSessionManager(sessions, cfg, logger),
		resolver:       auth.NewResolver(cfg, users, roles),
		sessions:       sessions,
		students:       store.NewStudentsStore(docs),
		journals:       store.NewJournalsStore(docs),
		assets:         store.NewAssetsStore(docs),
		rules:          store.NewRulesStore(docs),
		announcements:  store.NewAnnouncementsStore(docs),
		calendar:       store.NewCalendarStore(docs),
		departments:    store.NewDepartmentsStore(docs),
		tickets:        store.NewTicketsStore(docs),
		users:          users,
		roles:          roles,
		settings:       store.NewSettingsStore(docs),
		journalBlobs:   journalBlobs,
		assetBlobs:     assetBlobs,
	}
	s.reqTotal, s.reqDuration = newRequestMetrics()
	s.registerRoutes()
	return s, nil
}

func (s *Server) newHandlerDeps() *handlers.Deps {
	return &handlers.Deps{
		Cfg:            s.cfg,
		Logger:         s.logger,
		Resolver:       s.resolver,
		SessionManager: s.sessionManager,
		Students:       s.students,
		Journals:       s.journals,
		Assets:         s.assets,
		Rules:          s.rules,
		Announcements:  s.announcements,
		Calendar:       s.calendar,
		Departments:    s.departments,
		Tickets:        s.tickets,
		Users:          s.users,
		Roles:          s.roles,
		Settings:       s.settings,
		JournalBlobs:   s.journalBlobs,
		AssetBlobs:     s.assetBlobs,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
