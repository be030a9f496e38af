package tenant

import (
	"github.com/smartbizsa/backend/internal/tenant/repository"
	"github.com/smartbizsa/backend/internal/tenant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tenant.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
