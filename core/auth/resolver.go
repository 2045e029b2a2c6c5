package auth

import (
	"context"
	"crypto/subtle"

	"gazeta-portal/config"
	"gazeta-portal/core/rbac"
	"gazeta-portal/core/store"
)

// Resolver maps submitted credentials to a Principal. Two credential sources
// are consulted in order: the static admin list from trusted configuration
// (plaintext pairs, implicit Administrador role), then the dynamic user store
// (argon2 hash, portal_enabled required). First confirmed match wins.
type Resolver struct {
	cfg   *config.AppConfig
	users store.UsersStore
	roles store.RolesStore
}

func NewResolver(cfg *config.AppConfig, users store.UsersStore, roles store.RolesStore) *Resolver {
	return &Resolver{cfg: cfg, users: users, roles: roles}
}

func (r *Resolver) Authenticate(ctx context.Context, username, password string) (*Principal, error) {
	for _, admin := range r.cfg.AdminUsers {
		userOK := subtle.ConstantTimeCompare([]byte(admin.Username), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(admin.Password), []byte(password)) == 1
		if !userOK || !passOK {
			continue
		}
		perms, err := r.roles.PermissionsOf(ctx, rbac.AdminRoleName)
		if err != nil {
			return nil, err
		}
		if len(perms) == 0 {
			// Someone edited the Administrador role away; static accounts still
			// get everything any stored role grants.
			perms, err = r.roles.AllPermissions(ctx)
			if err != nil {
				return nil, err
			}
		}
		return &Principal{Username: username, Role: rbac.AdminRoleName, Permissions: perms}, nil
	}

	user, err := r.users.FindByUsername(ctx, username)
	if err != nil && err != store.ErrNotFound {
		return nil, err
	}
	if user == nil || !user.PortalEnabled {
		return nil, ErrDenied
	}
	ph, err := ParsePasswordHash(user.PasswordHash, user.PasswordSalt)
	if err != nil {
		return nil, ErrDenied
	}
	ok, err := VerifyPassword(password, r.cfg.Pepper, ph)
	if err != nil || !ok {
		return nil, ErrDenied
	}
	perms, err := r.roles.PermissionsOf(ctx, user.Role)
	if err != nil {
		return nil, err
	}
	return &Principal{Username: username, Role: user.Role, Permissions: perms}, nil
}
