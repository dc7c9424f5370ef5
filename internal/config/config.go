package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL     = "localhost:8081"
	defaultDatabaseDSN = "file:flashdeck.db?_pragma=foreign_keys(1)"
	defaultAPIRoot     = "/api"
	defaultCORSOrigins = "http://localhost:3000"
	defaultCacheTTL    = 60 * time.Second
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	CORSOrigins string `env:"CORS_ORIGINS"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	APIRoot     string `env:"API_ROOT"`

	// Client-side settings
	ServerURL      string        `env:"-"`
	CacheTTL       time.Duration `env:"CACHE_TTL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	TUILogFile     string        `env:"TUI_LOG_FILE"`
	Version        bool          `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (sqlite file: или postgres://)")
	flag.StringVar(&cfg.CORSOrigins, "cors-origins", cfg.CORSOrigins, "разрешённые CORS origins через запятую")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the FlashDeck server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.StringVar(&cfg.APIRoot, "api-root", cfg.APIRoot, "path prefix of the REST API")
	// Client flags
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "время жизни неиспользуемых данных в кеше клиента")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "client request timeout (0 = transport default)")
	flag.StringVar(&cfg.TUILogFile, "tui-log", cfg.TUILogFile, "path to TUI log file")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	applyDefaults(cfg)
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

// applyDefaults заполняет пустые поля и вычисляет производные значения.
func applyDefaults(cfg *Config) {
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = defaultCORSOrigins
	}
	// BaseURL: только "address:port" (без схемы и пути), иначе дефолт.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	cfg.APIRoot = "/" + strings.Trim(cfg.APIRoot, "/")
	if cfg.APIRoot == "/" {
		cfg.APIRoot = defaultAPIRoot
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.RequestTimeout < 0 {
		cfg.RequestTimeout = 0
	}
	if cfg.TUILogFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = os.TempDir()
		}
		cfg.TUILogFile = filepath.Join(dir, "FlashDeck", "tui.log")
	}
}

// AllowedOrigins возвращает список CORS origins из строки через запятую.
func (c *Config) AllowedOrigins() []string {
	var res []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

// APIURL склеивает ServerURL и APIRoot.
func (c *Config) APIURL() string {
	return strings.TrimRight(c.ServerURL, "/") + c.APIRoot
}
