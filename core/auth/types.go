package auth

import (
	"errors"

	"gazeta-portal/core/rbac"
)

// ErrDenied covers every failed authentication: unknown username, wrong
// password, or a disabled portal account. Callers get no finer detail.
var ErrDenied = errors.New("credenciais inválidas ou acesso bloqueado")

type Credentials struct {
	Username string
	Password string
}

// Principal is the authenticated identity attached to a session. The
// permission set is a snapshot of the role at login time; role edits take
// effect only on the next login.
type Principal struct {
	Username    string
	Role        string
	Permissions []rbac.Permission
}

func (p *Principal) Has(perm rbac.Permission) bool {
	if p == nil {
		return false
	}
	for _, pp := range p.Permissions {
		if pp == perm {
			return true
		}
	}
	return false
}
