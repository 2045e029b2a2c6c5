package bootstrap

import (
	"context"
	"database/sql"

	"gazeta-portal/core/store"
	"gazeta-portal/core/utils"
)

// EnsureSeedData installs the default roles, the first department and the
// site settings document so a fresh install is usable before onboarding.
func EnsureSeedData(ctx context.Context, db *sql.DB, logger *utils.Logger) error {
	docs := store.NewDocuments(db)
	return EnsureSeedDataWithStores(ctx,
		store.NewRolesStore(docs),
		store.NewDepartmentsStore(docs),
		store.NewSettingsStore(docs),
		logger,
	)
}

func EnsureSeedDataWithStores(ctx context.Context, roles store.RolesStore, departments store.DepartmentsStore, settings store.SettingsStore, logger *utils.Logger) error {
	if err := roles.EnsureSeed(ctx); err != nil {
		return err
	}
	n, err := departments.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		dept, err := departments.Create(ctx, store.Department{
			Name:        "Redação",
			Description: "Produção de textos e pautas do jornal",
			Director:    "Definir diretor",
		})
		if err != nil {
			return err
		}
		if logger != nil {
			logger.Printf("seeded department %s", dept.Name)
		}
	}
	// Materializes the settings document with its defaults.
	if _, err := settings.Get(ctx); err != nil {
		return err
	}
	return nil
}
