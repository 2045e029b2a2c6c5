package rbac

import (
	"sort"
	"strings"
)

// Permission is an opaque token gating one class of mutating operation. The
// registry stores whatever tokens a role was created with; unknown tokens are
// inert rather than rejected, so this list exists for seeding and for building
// the settings UI, not for validation.
type Permission string

const (
	PermManageStudents      Permission = "manage_students"
	PermManageJournals      Permission = "manage_journals"
	PermManageAssets        Permission = "manage_assets"
	PermManageRules         Permission = "manage_rules"
	PermManageAnnouncements Permission = "manage_announcements"
	PermManageCalendar      Permission = "manage_calendar"
	PermManageDepartments   Permission = "manage_departments"
	PermApproveDepartments  Permission = "approve_departments"
	PermManageSettings      Permission = "manage_settings"
	PermManageRoles         Permission = "manage_roles"
	PermManageUsers         Permission = "manage_users"
	PermManageTickets       Permission = "manage_tickets"
)

var knownPermissions = []Permission{
	PermManageStudents,
	PermManageJournals,
	PermManageAssets,
	PermManageRules,
	PermManageAnnouncements,
	PermManageCalendar,
	PermManageDepartments,
	PermApproveDepartments,
	PermManageSettings,
	PermManageRoles,
	PermManageUsers,
	PermManageTickets,
}

func KnownPermissions() []Permission {
	out := make([]Permission, len(knownPermissions))
	copy(out, knownPermissions)
	return out
}

type Role struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
}

func (r Role) Has(p Permission) bool {
	for _, rp := range r.Permissions {
		if rp == p {
			return true
		}
	}
	return false
}

// ParsePermissions trims and lowercases submitted token strings, dropping
// empties. Unknown tokens pass through untouched.
func ParsePermissions(in []string) []Permission {
	out := make([]Permission, 0, len(in))
	for _, raw := range in {
		tok := strings.ToLower(strings.TrimSpace(raw))
		if tok == "" {
			continue
		}
		out = append(out, Permission(tok))
	}
	return out
}

// Union returns the sorted set of every token used by any of the given roles.
func Union(roles []Role) []Permission {
	set := map[Permission]struct{}{}
	for _, r := range roles {
		for _, p := range r.Permissions {
			set[p] = struct{}{}
		}
	}
	out := make([]Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
