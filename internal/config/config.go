package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"quoteintake/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type (
	Config struct {
		App       App       `env-prefix:"APP_"`
		Logger    Logger    `env-prefix:"LOGGER_"`
		Postgres  Postgres  `env-prefix:"DB_"`
		HTTP      HTTP      `env-prefix:"HTTP_"`
		Cache     Cache     `env-prefix:"CACHE_"`
		Metrics   Metrics   `env-prefix:"METRICS_"`
		Mail      Mail      `env-prefix:"MAIL_"`
		Notify    Notify    `env-prefix:"NOTIFY_"`
		RateLimit RateLimit `env-prefix:"RATE_LIMIT_"`
		Admin     Admin     `env-prefix:"ADMIN_"`
		CORS      CORS      `env-prefix:"CORS_"`
		Env       string    `                        env:"ENV" env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `env:"NAME"    validate:"required" env-default:"quote-service"`
		Version string `env:"VERSION" validate:"required" env-default:"dev"`
	}

	Postgres struct {
		Host           string        `env:"HOST"             validate:"required"`
		Port           string        `env:"PORT"             validate:"required"                                  env-default:"5432"`
		Name           string        `env:"NAME"             validate:"required"`
		User           string        `env:"USER"             validate:"required"`
		Password       string        `env:"PASSWORD"         validate:"required"`
		SSLMode        string        `env:"SSL_MODE"         validate:"required"                                  env-default:"disable"`
		PoolMax        int32         `env:"POOL_MAX"         validate:"min=1,max=100"                             env-default:"10"`
		ConnAttempts   int           `env:"CONN_ATTEMPTS"    validate:"min=1,max=10"                              env-default:"5"`
		BaseRetryDelay time.Duration `env:"BASE_RETRY_DELAY" validate:"gte=10ms,lte=10s"                          env-default:"100ms"`
		MaxRetryDelay  time.Duration `env:"MAX_RETRY_DELAY"  validate:"gte=100ms,lte=30s,gtefield=BaseRetryDelay" env-default:"5s"`
		TxAttempts     int           `env:"TX_ATTEMPTS"      validate:"min=1,max=10"                              env-default:"3"`
		AutoMigrate    bool          `env:"AUTO_MIGRATE"                                                          env-default:"true"`
	}

	HTTP struct {
		Host              string        `env:"HOST"                validate:"required"         env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required"         env-default:"5000"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=60s" env-default:"10s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=2m"  env-default:"75s"`
		IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"        validate:"gte=10ms,lte=5m"  env-default:"60s"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    validate:"gte=10ms,lte=30s" env-default:"10s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s" env-default:"5s"`
		MaxBodyBytes      int64         `env:"MAX_BODY_BYTES"      validate:"min=1024"         env-default:"16777216"`
	}

	Cache struct {
		Capacity        int           `env:"CAPACITY"         validate:"required,min=1,max=1000000" env-default:"1000"`
		TTL             time.Duration `env:"TTL"              validate:"required,gt=0s,lte=24h"     env-default:"5m"`
		CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" validate:"gt=0s,lte=24h"              env-default:"1m"`
	}

	Metrics struct {
		Enabled           bool          `env:"ENABLED"                                                 env-default:"true"`
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required"                 env-default:"9090"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	Mail struct {
		Host      string        `env:"SERVER"         validate:"required,hostname"            env-default:"smtp.gmail.com"`
		Port      int           `env:"PORT"           validate:"gte=1,lte=65535"              env-default:"587"`
		Username  string        `env:"USERNAME"       validate:"required"`
		Password  string        `env:"PASSWORD"`
		From      string        `env:"DEFAULT_SENDER" validate:"required,email"`
		Operator  string        `env:"OPERATOR"       validate:"omitempty,email"`
		TLSPolicy string        `env:"TLS_POLICY"     validate:"oneof=mandatory opportunistic none ssl" env-default:"mandatory"`
		Timeout   time.Duration `env:"TIMEOUT"        validate:"gte=1s,lte=2m"                env-default:"30s"`
	}

	Notify struct {
		Brand       string `env:"BRAND"        validate:"required" env-default:"Micheli Personalizados"`
		TemplateDir string `env:"TEMPLATE_DIR"`
	}

	RateLimit struct {
		Enabled bool          `env:"ENABLED"                                  env-default:"true"`
		Limit   int64         `env:"LIMIT"   validate:"min=1"                 env-default:"10"`
		Period  time.Duration `env:"PERIOD"  validate:"gte=1s,lte=24h"        env-default:"1m"`
	}

	Admin struct {
		Username string `env:"USERNAME"`
		Password string `env:"PASSWORD" validate:"required_with=Username"`
	}

	CORS struct {
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:","`
	}

	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info"                    validate:"oneof=debug info warn error"`
		Filename   string `env:"FILENAME"    env-default:"./logs/orcamentos.log"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"10"                      validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"10"                      validate:"min=0,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"                      validate:"min=1,max=365"`
	}
)

// OperatorAddress is where operator notifications go; it defaults to the
// sender mailbox.
func (m *Mail) OperatorAddress() string {
	if m.Operator != "" {
		return m.Operator
	}
	return m.From
}

func (p *Postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.Name,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}

// Load reads the config file at path, or at CONFIG_PATH when path is empty.
// A .env file in the working directory, if any, is loaded into the process
// environment first so it can feed both CONFIG_PATH and env overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return nil, entity.ErrConfigPathNotSet
	}
	return LoadPath(path)
}

func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("%s: checking config file: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: read config: %w", op, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func Validate(cfg *Config) error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			validationErrors := make([]string, 0, len(validationErrs))
			for _, ve := range validationErrs {
				validationErrors = append(validationErrors,
					fmt.Sprintf("%s=%v must satisfy '%s'", ve.Namespace(), ve.Value(), ve.Tag()))
			}
			return fmt.Errorf("config validation: %v", strings.Join(validationErrors, "; "))
		}
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
