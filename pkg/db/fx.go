package db

import (
	"github.com/smartbizsa/backend/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("db",
	fx.Provide(New),
)

func New(cfg config.Config) (*gorm.DB, error) {
	dialect, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	return gorm.Open(dialect, &gorm.Config{
		TranslateError: true,
	})
}
