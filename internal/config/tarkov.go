package config

import (
	"time"

	"tarkov_market/internal/domain/value"
)

type Tarkov struct {
	APIURL          string        `env:"TARKOV_API_URL" envDefault:"https://api.tarkov.dev/graphql"`
	Language        string        `env:"TARKOV_LANGUAGE" envDefault:"en"`
	GameMode        string        `env:"TARKOV_GAME_MODE" envDefault:"regular"`
	RefreshInterval time.Duration `env:"TARKOV_REFRESH_INTERVAL" envDefault:"5m"`
	RequestTimeout  time.Duration `env:"TARKOV_REQUEST_TIMEOUT" envDefault:"30s"`
	CacheTTL        time.Duration `env:"TARKOV_CACHE_TTL" envDefault:"5m"`
	LogFieldMaxLen  int           `env:"TARKOV_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

func (t Tarkov) GetLanguage() value.Language {
	return value.Language(t.Language)
}

func (t Tarkov) GetGameMode() value.GameMode {
	return value.GameMode(t.GameMode)
}
