package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	HypeAudit      HypeAudit      `mapstructure:",squash"`
	Matching       Matching       `mapstructure:",squash"`
	MetricsRefresh MetricsRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret          string        `mapstructure:"auth_secret"`
	TokenExpiration time.Duration `mapstructure:"auth_token_expiration"`
}

// HypeAudit configura o cliente do provedor externo de métricas de audiência
type HypeAudit struct {
	BaseURL        string        `mapstructure:"hypeaudit_base_url"`
	AccessToken    string        `mapstructure:"hypeaudit_access_token"`
	RequestTimeout time.Duration `mapstructure:"hypeaudit_request_timeout"`
	RetryMax       int           `mapstructure:"hypeaudit_retry_max"`
	RetryWaitBase  time.Duration `mapstructure:"hypeaudit_retry_wait_base"`
	RetryWaitMax   time.Duration `mapstructure:"hypeaudit_retry_wait_max"`
	RatePerSecond  float64       `mapstructure:"hypeaudit_rate_per_second"`
}

// Matching configura os parâmetros do pipeline de busca
type Matching struct {
	PoolSize                   int           `mapstructure:"matching_pool_size"`
	VerifyCap                  int           `mapstructure:"matching_verify_cap"`
	VerifyWorkers              int           `mapstructure:"matching_verify_workers"`
	FreshnessWindow            time.Duration `mapstructure:"matching_freshness_window"`
	CelebrityFollowerThreshold int           `mapstructure:"matching_celebrity_follower_threshold"`
	SearchTimeout              time.Duration `mapstructure:"matching_search_timeout"`
}

// MetricsRefresh configura o job de reverificação de métricas antigas
type MetricsRefresh struct {
	CronSchedule string `mapstructure:"metrics_refresh_cron"`
	Enabled      bool   `mapstructure:"metrics_refresh_enabled"`
	BatchSize    int    `mapstructure:"metrics_refresh_batch_size"`
	DelaySeconds int    `mapstructure:"metrics_refresh_delay_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creators")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_EXPIRATION", "24h")

	viper.SetDefault("HYPEAUDIT_BASE_URL", "https://api.hypeaudit.io/v2")
	viper.SetDefault("HYPEAUDIT_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("HYPEAUDIT_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("HYPEAUDIT_RETRY_MAX", 3) // Tentativas extras em 429/5xx
	viper.SetDefault("HYPEAUDIT_RETRY_WAIT_BASE", "1s")
	viper.SetDefault("HYPEAUDIT_RETRY_WAIT_MAX", "30s")
	viper.SetDefault("HYPEAUDIT_RATE_PER_SECOND", 2.0)

	viper.SetDefault("MATCHING_POOL_SIZE", 200)    // Pool inicial do catálogo
	viper.SetDefault("MATCHING_VERIFY_CAP", 15)    // Máximo de candidatos verificados por busca
	viper.SetDefault("MATCHING_VERIFY_WORKERS", 5) // Chamadas externas em voo
	viper.SetDefault("MATCHING_FRESHNESS_WINDOW", "168h")
	viper.SetDefault("MATCHING_CELEBRITY_FOLLOWER_THRESHOLD", 1000000)
	viper.SetDefault("MATCHING_SEARCH_TIMEOUT", "60s")

	viper.SetDefault("METRICS_REFRESH_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("METRICS_REFRESH_ENABLED", false)
	viper.SetDefault("METRICS_REFRESH_BATCH_SIZE", 50)
	viper.SetDefault("METRICS_REFRESH_DELAY_SECONDS", 2)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
