package rbac

// AdminRoleName is the implicit role granted to static configuration accounts.
const AdminRoleName = "Administrador"

// DefaultRoles seeds the registry on first start. The portal predates the
// closed permission list, so seed contents stay byte-stable for storage
// compatibility with existing roles documents.
func DefaultRoles() []Role {
	return []Role{
		{
			Name:        AdminRoleName,
			Description: "Acesso total ao painel e configurações",
			Permissions: []Permission{
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
			},
		},
		{
			Name:        "Gerente",
			Description: "Cuida de pessoas, calendários e arquivos",
			Permissions: []Permission{
				PermManageStudents,
				PermManageAssets,
				PermManageCalendar,
				PermManageAnnouncements,
				PermManageDepartments,
				PermManageTickets,
			},
		},
		{
			Name:        "Diretor de Departamento",
			Description: "Aprova filas e acompanha entregas do time",
			Permissions: []Permission{
				PermManageAssets,
				PermManageCalendar,
				PermApproveDepartments,
				PermManageTickets,
			},
		},
		{
			Name:        "Colaborador",
			Description: "Acesso apenas para consultar materiais",
			Permissions: []Permission{},
		},
	}
}

// ticketRoles are the roles that must always hold manage_tickets; older roles
// documents were written before the help desk existed.
var ticketRoles = map[string]struct{}{
	AdminRoleName:             {},
	"Gerente":                 {},
	"Diretor de Departamento": {},
}

// EnsureTicketPermission backfills manage_tickets on the built-in staff roles.
// Returns true when any role changed.
func EnsureTicketPermission(roles []Role) bool {
	changed := false
	for i := range roles {
		if _, ok := ticketRoles[roles[i].Name]; !ok {
			continue
		}
		if !roles[i].Has(PermManageTickets) {
			roles[i].Permissions = append(roles[i].Permissions, PermManageTickets)
			changed = true
		}
	}
	return changed
}
