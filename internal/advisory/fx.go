package advisory

import (
	"github.com/smartbizsa/backend/internal/advisory/chat"
	"github.com/smartbizsa/backend/internal/advisory/smartsql"
	"github.com/smartbizsa/backend/internal/advisory/speech"
	"go.uber.org/fx"
)

var Module = fx.Module("advisory.service",
	fx.Provide(
		chat.New,
		speech.New,
		smartsql.New,
	),
)
