// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Name        string `mapstructure:"name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type JWTConfig struct {
	SecretKey       string        `mapstructure:"secret_key"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // "log" | "smtp" | "ses"
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" | "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	SES      SESConfig      `mapstructure:"ses"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// LoadConfig reads configs/config.yaml (plus environment overrides) and
// returns the assembled configuration. The result is injected into services
// explicitly; there is no package-level config singleton.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	v.BindEnv("mailer.type", "MAILER_TYPE")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	// Defaults for anything the file or environment left unset.
	if cfg.App.Name == "" {
		cfg.App.Name = AppName
	}
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.JWT.RefreshTokenTTL <= 0 {
		cfg.JWT.RefreshTokenTTL = DefaultRefreshTokenTTL
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	return &cfg, nil
}
