package bootstrap

import (
	"smart-parking/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads .env if present, then the environment. Missing .env
// is fine; containers inject real env vars.
func LoadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.LoadConfig()
}
