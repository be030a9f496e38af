package main

import (
	"github.com/smartbizsa/backend/internal/advisory"
	"github.com/smartbizsa/backend/internal/config"
	"github.com/smartbizsa/backend/internal/invoice"
	"github.com/smartbizsa/backend/internal/logger"
	"github.com/smartbizsa/backend/internal/migration"
	"github.com/smartbizsa/backend/internal/server"
	"github.com/smartbizsa/backend/internal/tenant"
	"github.com/smartbizsa/backend/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		db.Module,
		migration.Module,

		// Functional domains
		tenant.Module,
		invoice.Module,
		advisory.Module,

		server.Module,
	)

	app.Run()
}
