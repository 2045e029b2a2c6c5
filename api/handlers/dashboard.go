package handlers

import (
	"net/http"

	"gazeta-portal/core/rbac"
	"gazeta-portal/core/store"
)

var dashboardTabs = map[string]bool{
	"inicio":        true,
	"students":      true,
	"journals":      true,
	"assets":        true,
	"rules":         true,
	"announcements": true,
	"calendar":      true,
	"departments":   true,
	"tickets":       true,
	"accounts":      true,
	"settings":      true,
}

type dashboardView struct {
	Tab     string
	BaseURL string

	Widgets          []store.Widget
	Students         []store.Student
	Journals         []store.Journal
	Assets           []store.Asset
	Rules            store.Rules
	Announcements    []store.Announcement
	Events           []store.Event
	NextEvent        *store.Event
	Departments      []store.Department
	Tickets          []store.Ticket
	Users            []store.User
	Roles            []rbac.Role
	KnownPermissions []rbac.Permission
	Reasons          []string

	StudentCount    int
	OpenTickets     int
	PendingRequests int
}

// Dashboard is the single authenticated page. Every collection is rendered
// into one of its tabs; permissions gate the mutating forms, not the reading.
func (d *Deps) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := Session(r)

	settings, err := d.Settings.Get(ctx)
	if err != nil {
		d.fail(w, r, err, "Falha ao carregar configurações")
		return
	}
	if !settings.OnboardingDone && sess.Has(rbac.PermManageSettings) {
		http.Redirect(w, r, "/welcome", http.StatusSeeOther)
		return
	}

	tab := r.URL.Query().Get("tab")
	if !dashboardTabs[tab] {
		tab = "inicio"
	}

	view := dashboardView{
		Tab:              tab,
		BaseURL:          d.Cfg.BaseURL(),
		KnownPermissions: rbac.KnownPermissions(),
		Reasons:          TicketReasons,
	}
	if view.Widgets, err = d.Settings.NormalizeWidgets(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar o painel")
		return
	}
	if view.Students, err = d.Students.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar fichas")
		return
	}
	if view.Journals, err = d.Journals.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar edições")
		return
	}
	if view.Assets, err = d.Assets.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar arquivos")
		return
	}
	if view.Rules, err = d.Rules.Get(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar regras")
		return
	}
	if view.Announcements, err = d.Announcements.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar avisos")
		return
	}
	if view.Events, err = d.Calendar.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar agenda")
		return
	}
	if view.NextEvent, err = d.Calendar.NextEvent(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar agenda")
		return
	}
	if view.Departments, err = d.Departments.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar departamentos")
		return
	}
	if view.Tickets, err = d.Tickets.VisibleTo(ctx, sess.Username, sess.Has(rbac.PermManageTickets)); err != nil {
		d.fail(w, r, err, "Falha ao carregar tickets")
		return
	}
	if sess.Has(rbac.PermManageUsers) {
		if view.Users, err = d.Users.List(ctx); err != nil {
			d.fail(w, r, err, "Falha ao carregar contas")
			return
		}
	}
	if view.Roles, err = d.Roles.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar cargos")
		return
	}
	if view.StudentCount, err = d.Students.Count(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar o painel")
		return
	}
	if view.OpenTickets, err = d.Tickets.OpenCount(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar o painel")
		return
	}
	if view.PendingRequests, err = d.Departments.PendingCount(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar o painel")
		return
	}

	d.render(w, r, "dashboard.html", "Painel", view)
}

type welcomeView struct {
	Departments      []store.Department
	Users            []store.User
	Roles            []rbac.Role
	KnownPermissions []rbac.Permission
}

// WelcomePage is the first-run wizard. It reuses the regular create endpoints
// through redirect_to, and stays open until a department and a portal account
// exist.
func (d *Deps) WelcomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view := welcomeView{KnownPermissions: rbac.KnownPermissions()}
	var err error
	if view.Departments, err = d.Departments.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar configurações")
		return
	}
	if view.Users, err = d.Users.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar configurações")
		return
	}
	if view.Roles, err = d.Roles.List(ctx); err != nil {
		d.fail(w, r, err, "Falha ao carregar configurações")
		return
	}
	d.render(w, r, "welcome.html", "Bem-vindo", view)
}

func (d *Deps) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	depts, err := d.Departments.Count(ctx)
	if err != nil {
		d.fail(w, r, err, "Falha ao concluir configuração")
		return
	}
	users, err := d.Users.Count(ctx)
	if err != nil {
		d.fail(w, r, err, "Falha ao concluir configuração")
		return
	}
	if depts == 0 || users == 0 {
		Flash(w, "Crie ao menos um departamento e um usuário para finalizar", "warning")
		http.Redirect(w, r, "/welcome", http.StatusSeeOther)
		return
	}
	if err := d.Settings.CompleteOnboarding(ctx); err != nil {
		d.fail(w, r, err, "Falha ao concluir configuração")
		return
	}
	d.done(w, r, "Configuração inicial concluída!", "")
}
