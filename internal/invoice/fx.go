package invoice

import (
	"github.com/smartbizsa/backend/internal/invoice/render"
	"github.com/smartbizsa/backend/internal/invoice/repository"
	"github.com/smartbizsa/backend/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.New),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
