// Package config loads settings from config.toml with VENA_ environment
// overrides on top.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Sync     SyncConfig
	Mail     MailConfig
}

type AppConfig struct {
	Name string
	Env  string // development, staging, production
	Port string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
	ConnMaxIdleTime int // minutes
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret                 string
	RefreshSecret          string
	AccessTokenExpiration  time.Duration
	RefreshTokenExpiration time.Duration
	Issuer                 string
}

// CookieConfig shapes the refresh-token cookie.
type CookieConfig struct {
	Domain   string // empty means current domain
	Path     string
	Secure   bool
	SameSite string // strict, lax, none
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or a file path
}

type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string

	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// The auth limiter is separate and much tighter, it throttles
	// credential guessing on login and register.
	AuthRateLimitEnabled  bool
	AuthRateLimitRequests int
	AuthRateLimitWindow   time.Duration
}

// SyncConfig tunes the remote gateway client and full workspace loads.
type SyncConfig struct {
	GatewayTimeout    time.Duration // per-attempt timeout for one remote call
	GatewayMaxRetries int           // retries after the first attempt
	GatewayRetryDelay time.Duration // initial backoff, doubled per attempt
	LoadTimeout       time.Duration // budget for a full workspace load
}

type MailConfig struct {
	Enabled  bool
	FromName string
	FromAddr string
}

// Load reads configuration in priority order: VENA_ environment variables,
// then config.toml, then built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars carry it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("VENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App:      loadApp(v),
		Database: loadDatabase(v),
		Redis:    loadRedis(v),
		JWT:      loadJWT(v),
		Cookie:   loadCookie(v),
		Log:      loadLog(v),
		HTTP:     loadHTTP(v),
		Sync:     loadSync(v),
		Mail:     loadMail(v),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadApp(v *viper.Viper) AppConfig {
	cfg := AppConfig{
		Name: v.GetString("app.name"),
		Env:  v.GetString("app.env"),
		Port: v.GetString("app.port"),
	}
	defaultString(&cfg.Name, "vena-backend")
	defaultString(&cfg.Env, "development")
	defaultString(&cfg.Port, "8080")
	return cfg
}

func loadDatabase(v *viper.Viper) DatabaseConfig {
	cfg := DatabaseConfig{
		Host:            v.GetString("database.host"),
		Port:            v.GetInt("database.port"),
		User:            v.GetString("database.user"),
		Password:        v.GetString("database.password"),
		DBName:          v.GetString("database.dbname"),
		SSLMode:         v.GetString("database.sslmode"),
		MaxOpenConns:    v.GetInt("database.max_open_conns"),
		MaxIdleConns:    v.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
		ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
	}
	defaultString(&cfg.Host, "localhost")
	defaultInt(&cfg.Port, 5432)
	defaultString(&cfg.User, "postgres")
	defaultString(&cfg.DBName, "vena")
	defaultString(&cfg.SSLMode, "disable")
	defaultInt(&cfg.MaxOpenConns, 25)
	defaultInt(&cfg.MaxIdleConns, 5)
	defaultInt(&cfg.ConnMaxLifetime, 60)
	defaultInt(&cfg.ConnMaxIdleTime, 30)
	return cfg
}

func loadRedis(v *viper.Viper) RedisConfig {
	cfg := RedisConfig{
		Host:     v.GetString("redis.host"),
		Port:     v.GetInt("redis.port"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
	defaultString(&cfg.Host, "localhost")
	defaultInt(&cfg.Port, 6379)
	return cfg
}

func loadJWT(v *viper.Viper) JWTConfig {
	cfg := JWTConfig{
		Secret:                 v.GetString("jwt.secret"),
		RefreshSecret:          v.GetString("jwt.refresh_secret"),
		AccessTokenExpiration:  v.GetDuration("jwt.access_token_expiration"),
		RefreshTokenExpiration: v.GetDuration("jwt.refresh_token_expiration"),
		Issuer:                 v.GetString("jwt.issuer"),
	}
	defaultDuration(&cfg.AccessTokenExpiration, 15*time.Minute)
	defaultDuration(&cfg.RefreshTokenExpiration, 168*time.Hour)
	defaultString(&cfg.Issuer, "vena-backend")
	return cfg
}

func loadCookie(v *viper.Viper) CookieConfig {
	cfg := CookieConfig{
		Domain:   v.GetString("cookie.domain"),
		Path:     v.GetString("cookie.path"),
		Secure:   v.GetBool("cookie.secure"),
		SameSite: v.GetString("cookie.same_site"),
	}
	defaultString(&cfg.Path, "/")
	defaultString(&cfg.SameSite, "lax")
	return cfg
}

func loadLog(v *viper.Viper) LogConfig {
	cfg := LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
		Output: v.GetString("log.output"),
	}
	defaultString(&cfg.Level, "info")
	defaultString(&cfg.Format, "console")
	defaultString(&cfg.Output, "stdout")
	return cfg
}

func loadHTTP(v *viper.Viper) HTTPConfig {
	cfg := HTTPConfig{
		ReadTimeout:      v.GetDuration("http.read_timeout"),
		WriteTimeout:     v.GetDuration("http.write_timeout"),
		IdleTimeout:      v.GetDuration("http.idle_timeout"),
		MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
		MaxBodySize:      v.GetInt64("http.max_body_size"),
		CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
		CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
		TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),

		RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
		RateLimitRequests: v.GetInt("http.rate_limit_requests"),
		RateLimitWindow:   v.GetDuration("http.rate_limit_window"),

		AuthRateLimitEnabled:  v.GetBool("http.auth_rate_limit_enabled"),
		AuthRateLimitRequests: v.GetInt("http.auth_rate_limit_requests"),
		AuthRateLimitWindow:   v.GetDuration("http.auth_rate_limit_window"),
	}
	defaultDuration(&cfg.ReadTimeout, 15*time.Second)
	defaultDuration(&cfg.WriteTimeout, 15*time.Second)
	defaultDuration(&cfg.IdleTimeout, 60*time.Second)
	defaultInt(&cfg.MaxHeaderBytes, 1<<20)
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = 10 << 20
	}
	// CORS origins get no "*" fallback. An empty list allows no cross-origin
	// requests until origins are configured explicitly.
	if len(cfg.CORSAllowMethods) == 0 {
		cfg.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.CORSAllowHeaders) == 0 {
		cfg.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
	defaultInt(&cfg.RateLimitRequests, 100)
	defaultDuration(&cfg.RateLimitWindow, time.Minute)
	defaultInt(&cfg.AuthRateLimitRequests, 5)
	defaultDuration(&cfg.AuthRateLimitWindow, time.Minute)
	return cfg
}

func loadSync(v *viper.Viper) SyncConfig {
	cfg := SyncConfig{
		GatewayTimeout:    v.GetDuration("sync.gateway_timeout"),
		GatewayMaxRetries: v.GetInt("sync.gateway_max_retries"),
		GatewayRetryDelay: v.GetDuration("sync.gateway_retry_delay"),
		LoadTimeout:       v.GetDuration("sync.load_timeout"),
	}
	defaultDuration(&cfg.GatewayTimeout, 10*time.Second)
	defaultInt(&cfg.GatewayMaxRetries, 2)
	defaultDuration(&cfg.GatewayRetryDelay, 200*time.Millisecond)
	defaultDuration(&cfg.LoadTimeout, 60*time.Second)
	return cfg
}

func loadMail(v *viper.Viper) MailConfig {
	cfg := MailConfig{
		Enabled:  v.GetBool("mail.enabled"),
		FromName: v.GetString("mail.from_name"),
		FromAddr: v.GetString("mail.from_addr"),
	}
	defaultString(&cfg.FromName, "Vena Pictures")
	defaultString(&cfg.FromAddr, "noreply@venapictures.local")
	return cfg
}

func defaultString(field *string, def string) {
	if *field == "" {
		*field = def
	}
}

func defaultInt(field *int, def int) {
	if *field == 0 {
		*field = def
	}
}

func defaultDuration(field *time.Duration, def time.Duration) {
	if *field == 0 {
		*field = def
	}
}

func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.App.Env == "production" {
		if c.JWT.Secret == "" {
			return fmt.Errorf("jwt.secret is required in production")
		}
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("jwt.secret must be at least 32 characters in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		if !c.Cookie.Secure {
			return fmt.Errorf("cookie.secure must be true in production (HTTPS required for secure cookies)")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// DSN builds the postgres connection string with escaped credentials.
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
