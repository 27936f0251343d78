package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"     validate:"required"`
	Logger     LoggerConfig     `yaml:"logger"     validate:"required"`
	Gin        GinConfig        `yaml:"gin"        validate:"required"`
	Matching   MatchingConfig   `yaml:"matching"   validate:"required"`
	Lifecycle  LifecycleConfig  `yaml:"lifecycle"  validate:"required"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// BackendConfig drives cmd/matching_service.
type BackendConfig struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
	Pool     PoolConfig     `yaml:"pool"     validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// MatchingConfig locates the remote matching service. Each operation may be
// served from its own host; an empty override falls back to BaseURL.
type MatchingConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"MATCHING_BASE_URL"       validate:"required,url"`
	SlotListURL   string        `yaml:"slot_list_url"  env:"MATCHING_SLOT_LIST_URL"  validate:"omitempty,url"`
	SlotDetailURL string        `yaml:"slot_detail_url" env:"MATCHING_SLOT_DETAIL_URL" validate:"omitempty,url"`
	ActivitiesURL string        `yaml:"activities_url" env:"MATCHING_ACTIVITIES_URL" validate:"omitempty,url"`
	RegisterURL   string        `yaml:"register_url"   env:"MATCHING_REGISTER_URL"   validate:"omitempty,url"`
	Timeout       time.Duration `yaml:"timeout"        env:"MATCHING_TIMEOUT"        env-default:"10s" validate:"gt=0"`
	Debug         bool          `yaml:"debug"          env:"MATCHING_DEBUG"          env-default:"false"`
}

type LifecycleConfig struct {
	FoundDwell      time.Duration `yaml:"found_dwell"      env:"LIFECYCLE_FOUND_DWELL"      env-default:"3s" validate:"gt=0"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"LIFECYCLE_REFRESH_INTERVAL" env-default:"5s" validate:"gt=0"`
	// WatchIdleTTL drops a watch nobody has polled for this long.
	WatchIdleTTL time.Duration `yaml:"watch_idle_ttl" env:"LIFECYCLE_WATCH_IDLE_TTL" env-default:"2m" validate:"gt=0"`
}

type SimulationConfig struct {
	Enabled         bool    `yaml:"enabled"          env:"SIMULATION_ENABLED"          env-default:"false"`
	JoinProbability float64 `yaml:"join_probability" env:"SIMULATION_JOIN_PROBABILITY" env-default:"0.3" validate:"gte=0,lte=1"`
	Seed            int64   `yaml:"seed"             env:"SIMULATION_SEED"             env-default:"0"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"slotmatcher"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// PoolConfig holds the capacity used when a hobby row carries none.
type PoolConfig struct {
	DefaultMinCapacity int `yaml:"default_min_capacity" env:"POOL_DEFAULT_MIN_CAPACITY" env-default:"2" validate:"min=1"`
	DefaultMaxCapacity int `yaml:"default_max_capacity" env:"POOL_DEFAULT_MAX_CAPACITY" env-default:"6" validate:"gtefield=DefaultMinCapacity"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}

func MustLoadBackend() *BackendConfig {
	var cfg BackendConfig
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load backend config: %v", err))
	}
	return &cfg
}
