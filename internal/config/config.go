package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Feed        Feed        `mapstructure:",squash"`
	FeedRefresh FeedRefresh `mapstructure:",squash"`
	RateLimit   RateLimit   `mapstructure:",squash"`
	CORS        CORS        `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required"`
}

type App struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

// Feed descreve de onde e como as planilhas são lidas
type Feed struct {
	CampaignURL       string        `mapstructure:"campaign_feed_url"`
	CreditURL         string        `mapstructure:"credit_feed_url"`
	Delimiter         string        `mapstructure:"feed_delimiter" validate:"len=1"`
	Encoding          string        `mapstructure:"feed_encoding" validate:"oneof=utf-8 windows-1252 iso-8859-1"`
	Timeout           time.Duration `mapstructure:"feed_timeout" validate:"gt=0"`
	CacheTTLSeconds   int           `mapstructure:"feed_cache_ttl_seconds" validate:"gte=0"`
	RequestsPerSecond float64       `mapstructure:"feed_requests_per_second" validate:"gt=0"`
}

type FeedRefresh struct {
	CronSchedule string `mapstructure:"feed_refresh_cron" validate:"required"`
	Enabled      bool   `mapstructure:"feed_refresh_enabled"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rate_limit_rps" validate:"gte=0"`
	Burst int     `mapstructure:"rate_limit_burst" validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// CacheTTL converte o TTL configurado em segundos
func (f Feed) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLSeconds) * time.Second
}

// DelimiterRune devolve o separador de campos configurado
func (f Feed) DelimiterRune() rune {
	for _, r := range f.Delimiter {
		return r
	}
	return ','
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("CAMPAIGN_FEED_URL", "")
	viper.SetDefault("CREDIT_FEED_URL", "")
	viper.SetDefault("FEED_DELIMITER", ",")
	viper.SetDefault("FEED_ENCODING", "utf-8")
	viper.SetDefault("FEED_TIMEOUT", "30s")
	viper.SetDefault("FEED_CACHE_TTL_SECONDS", 300) // 5 minutos
	viper.SetDefault("FEED_REQUESTS_PER_SECOND", 2)

	viper.SetDefault("FEED_REFRESH_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("FEED_REFRESH_ENABLED", false)

	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os valores carregados antes de iniciar a aplicação
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "configuração inválida")
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
