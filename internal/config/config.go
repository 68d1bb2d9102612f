package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	AdSense      AdSense      `mapstructure:",squash"`
	Registry     Registry     `mapstructure:",squash"`
	Earnings     Earnings     `mapstructure:",squash"`
	Summary      Summary      `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	EarningsSync EarningsSync `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
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

type AdSense struct {
	BaseURL        string `mapstructure:"adsense_base_url"`
	TokenURL       string `mapstructure:"adsense_token_url"`
	RequestTimeout int    `mapstructure:"adsense_request_timeout_seconds"`
}

type Registry struct {
	FilePath  string `mapstructure:"registry_file_path"`
	BackupDir string `mapstructure:"registry_backup_dir"`
}

type Earnings struct {
	MaxLookbackDays int `mapstructure:"earnings_max_lookback_days"`
}

type Summary struct {
	MaxConcurrent         int `mapstructure:"summary_max_concurrent"`
	AccountTimeoutSeconds int `mapstructure:"summary_account_timeout_seconds"`
}

type Cache struct {
	TTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type EarningsSync struct {
	CronSchedule        string `mapstructure:"earnings_sync_cron"`
	LookbackDays        int    `mapstructure:"earnings_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"earnings_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"earnings_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"earnings_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsense")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ADSENSE_BASE_URL", "https://adsense.googleapis.com/v2")
	viper.SetDefault("ADSENSE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("ADSENSE_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("REGISTRY_FILE_PATH", "accounts.json")
	viper.SetDefault("REGISTRY_BACKUP_DIR", "backups")

	viper.SetDefault("EARNINGS_MAX_LOOKBACK_DAYS", 3)

	viper.SetDefault("SUMMARY_MAX_CONCURRENT", 5)
	viper.SetDefault("SUMMARY_ACCOUNT_TIMEOUT_SECONDS", 30)

	viper.SetDefault("CACHE_TTL_SECONDS", 60)

	// Defaults para sincronização de snapshots de receita
	viper.SetDefault("EARNINGS_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("EARNINGS_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("EARNINGS_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("EARNINGS_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("EARNINGS_SYNC_ENABLED", false)           // Habilitar sincronização de snapshots

	viper.SetDefault("AUTH_SECRET", "")

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

	// Tentar várias localizações possíveis para o arquivo .env
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
