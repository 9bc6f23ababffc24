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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Reports          Reports          `mapstructure:",squash"`
	Editor           Editor           `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	Thresholds       Thresholds       `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Reports configura a origem dos arquivos JSON gerados pelo pipeline de dados
type Reports struct {
	BaseURL        string        `mapstructure:"reports_base_url"`
	TimeoutSeconds int           `mapstructure:"reports_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

// Editor é o único usuário autorizado a gravar anotações
type Editor struct {
	Email        string `mapstructure:"editor_email"`
	PasswordHash string `mapstructure:"editor_password_hash"`
}

type App struct {
	LogLevel      string `mapstructure:"log_level"`
	DefaultPeriod string `mapstructure:"default_period"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

// Thresholds agrupa os limites usados pela classificação
type Thresholds struct {
	Stagnant                float64 `mapstructure:"stagnant_threshold"`
	ClosedStoreSalesPerArea float64 `mapstructure:"closed_store_sales_per_area_threshold"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "file:annotations.db")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REPORTS_BASE_URL", "http://localhost:3000/dashboard")
	viper.SetDefault("REPORTS_TIMEOUT_SECONDS", 5) // Limite por requisição de arquivo

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("EDITOR_EMAIL", "ceo@example.com")
	viper.SetDefault("EDITOR_PASSWORD_HASH", "")

	viper.SetDefault("DEFAULT_PERIOD", "")

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("STAGNANT_THRESHOLD", 0.05)                   // 5% do valor de etiqueta do estoque
	viper.SetDefault("CLOSED_STORE_SALES_PER_AREA_THRESHOLD", 1.0) // Venda por área abaixo disso = loja fechada

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

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize calcula os campos derivados e valida combinações inválidas
func (c *Config) finalize() error {
	if c.Reports.TimeoutSeconds <= 0 {
		c.Reports.TimeoutSeconds = 5
	}
	c.Reports.Timeout = time.Duration(c.Reports.TimeoutSeconds) * time.Second

	switch c.Database.Driver {
	case "postgres":
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	case "sqlite":
		c.Database.DSN = c.Database.URL
	default:
		return fmt.Errorf("config: driver de banco de dados não suportado: %q", c.Database.Driver)
	}

	if c.Thresholds.Stagnant <= 0 {
		c.Thresholds.Stagnant = 0.05
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
