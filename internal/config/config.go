package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type AppConf struct {
	Env                 string `mapstructure:"env"`
	Port                int    `mapstructure:"port"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `mapstructure:"idle_timeout_seconds"`
	ShutdownSeconds     int    `mapstructure:"shutdown_seconds"`
}

type MongoConf struct {
	URI                   string `mapstructure:"uri"`
	Database              string `mapstructure:"database"`
	Collection            string `mapstructure:"collection"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds"`
}

type RedisConf struct {
	Addr                  string `mapstructure:"addr"`
	Password              string `mapstructure:"password"`
	DB                    int    `mapstructure:"db"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds"`
}

type SessionConf struct {
	Secret       string `mapstructure:"secret"`
	TTLHours     int    `mapstructure:"ttl_hours"`
	CookieName   string `mapstructure:"cookie_name"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

type SecurityConf struct {
	PasswordHashCost       int `mapstructure:"password_hash_cost"`
	LoginRateLimit         int `mapstructure:"login_rate_limit"`
	LoginRateWindowSeconds int `mapstructure:"login_rate_window_seconds"`
}

type Config struct {
	App      AppConf      `mapstructure:"app"`
	Mongo    MongoConf    `mapstructure:"mongo"`
	Redis    RedisConf    `mapstructure:"redis"`
	Session  SessionConf  `mapstructure:"session"`
	Security SecurityConf `mapstructure:"security"`

	// derived
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
	LoginRateWindow time.Duration

	MongoConnectTimeout time.Duration
	RedisConnectTimeout time.Duration
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// env overrides for the secrets that never belong in the file
	if s := v.GetString("SESSION_SECRET"); s != "" {
		cfg.Session.Secret = s
	}
	if s := v.GetString("MONGO_URI"); s != "" {
		cfg.Mongo.URI = s
	}
	if s := v.GetString("REDIS_ADDR"); s != "" {
		cfg.Redis.Addr = s
	}
	if s := v.GetString("REDIS_PASSWORD"); s != "" {
		cfg.Redis.Password = s
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 8081
	}
	if cfg.App.ReadTimeoutSeconds == 0 {
		cfg.App.ReadTimeoutSeconds = 15
	}
	if cfg.App.WriteTimeoutSeconds == 0 {
		cfg.App.WriteTimeoutSeconds = 15
	}
	if cfg.App.IdleTimeoutSeconds == 0 {
		cfg.App.IdleTimeoutSeconds = 60
	}
	if cfg.App.ShutdownSeconds == 0 {
		cfg.App.ShutdownSeconds = 10
	}
	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = 24
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "session_token"
	}
	if cfg.Mongo.Collection == "" {
		cfg.Mongo.Collection = "users"
	}
	if cfg.Mongo.ConnectTimeoutSeconds == 0 {
		cfg.Mongo.ConnectTimeoutSeconds = 15
	}
	if cfg.Redis.ConnectTimeoutSeconds == 0 {
		cfg.Redis.ConnectTimeoutSeconds = 5
	}
	if cfg.Security.LoginRateLimit == 0 {
		cfg.Security.LoginRateLimit = 10
	}
	if cfg.Security.LoginRateWindowSeconds == 0 {
		cfg.Security.LoginRateWindowSeconds = 60
	}

	cfg.ReadTimeout = time.Duration(cfg.App.ReadTimeoutSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteTimeoutSeconds) * time.Second
	cfg.IdleTimeout = time.Duration(cfg.App.IdleTimeoutSeconds) * time.Second
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSeconds) * time.Second
	cfg.SessionTTL = time.Duration(cfg.Session.TTLHours) * time.Hour
	cfg.LoginRateWindow = time.Duration(cfg.Security.LoginRateWindowSeconds) * time.Second
	cfg.MongoConnectTimeout = time.Duration(cfg.Mongo.ConnectTimeoutSeconds) * time.Second
	cfg.RedisConnectTimeout = time.Duration(cfg.Redis.ConnectTimeoutSeconds) * time.Second

	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret is required (session.secret or SESSION_SECRET)")
	}

	return &cfg, nil
}
