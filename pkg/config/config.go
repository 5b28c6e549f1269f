package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MOTOSHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"MOTOSHOP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MOTOSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MOTOSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MOTOSHOP_DB_DSN"`
	Driver string `envconfig:"MOTOSHOP_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"MOTOSHOP_DB_HOST"`
	Port     int    `envconfig:"MOTOSHOP_DB_PORT" default:"5432"`
	User     string `envconfig:"MOTOSHOP_DB_USER"`
	Password string `envconfig:"MOTOSHOP_DB_PASSWORD"`
	Name     string `envconfig:"MOTOSHOP_DB_NAME"`
	SSLMode  string `envconfig:"MOTOSHOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MOTOSHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MOTOSHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MOTOSHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MOTOSHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MOTOSHOP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MOTOSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"MOTOSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"MOTOSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MOTOSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MOTOSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MOTOSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MOTOSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MOTOSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"MOTOSHOP_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"MOTOSHOP_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"MOTOSHOP_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"MOTOSHOP_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MOTOSHOP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MOTOSHOP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MOTOSHOP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MOTOSHOP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MOTOSHOP_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MOTOSHOP_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MOTOSHOP_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MOTOSHOP_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
