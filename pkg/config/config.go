package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		Debug     bool   `env:"DEV_MODE" env-default:"false"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Tumblr struct {
		APIKey  string        `env:"TUMBLR_API_KEY" env-default:""`
		BlogURL string        `env:"TUMBLR_BLOG_URL" env-default:"https://api.tumblr.com/v2/blog/www.humansofnewyork.com"`
		Timeout time.Duration `env:"TUMBLR_TIMEOUT" env-default:"30s"`
	}
	Selection struct {
		LongCaptionLength int    `env:"SELECTION_LONG_CAPTION_LENGTH" env-default:"500"`
		LongPostMaxDraws  uint64 `env:"SELECTION_LONG_POST_MAX_DRAWS" env-default:"100"`
	}
	Monitor struct {
		Interval time.Duration `env:"MONITOR_INTERVAL" env-default:"5m"`
	}
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Otel struct {
		Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
		ServiceName string `env:"OTEL_SERVICE_NAME" env-default:"hony-redirect"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// IsDevelopment reports whether the service runs with the development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
