// Package migration reconciles the database schema on startup.
package migration

import (
	invoicedomain "github.com/smartbizsa/backend/internal/invoice/domain"
	tenantdomain "github.com/smartbizsa/backend/internal/tenant/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

// Run migrates every persisted model. Parent tables first so the foreign key
// constraints resolve.
func Run(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&tenantdomain.User{},
		&tenantdomain.Business{},
		&tenantdomain.ChatHistory{},
		&invoicedomain.Invoice{},
	)
	if err != nil {
		log.Error("schema migration failed", zap.Error(err))
		return err
	}
	log.Info("schema migration complete")
	return nil
}
