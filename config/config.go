package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig      `yaml:"server"`
	Log        LogConfig         `yaml:"log"`
	Data       DataConfig        `yaml:"data"`
	Minio      MinioConfig       `yaml:"minio"`
	RateLimit  RateLimitConfig   `yaml:"rate_limit"`
	CORS       CORSConfig        `yaml:"cors"`
	Dashboard  DashboardConfig   `yaml:"dashboard"`
	Categories map[string]string `yaml:"specialization_categories"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DataConfig tells where the contract data set is read from
type DataConfig struct {
	Source string `yaml:"source"` // file, minio
	Path   string `yaml:"path"`
	Object string `yaml:"object"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type DashboardConfig struct {
	TopUniversities           int `yaml:"top_universities"`
	TopDepartmentUniversities int `yaml:"top_department_universities"`
}

const (
	SourceFile  = "file"
	SourceMinio = "minio"
)

// DefaultCategories maps specialization filter slugs to the department that owns them
var DefaultCategories = map[string]string{
	"engineering": "إدارة برامج العلوم الهندسية وعلوم الحاسب",
	"health":      "إدارة برامج العلوم الصحية",
	"humanities":  "إدارة برامج العلوم الإنسانية والتربوية",
	"islamic":     "إدارة برامج العلوم الإسلامية والعربية",
	"science":     "إدارة برامج التخصصات العلمية",
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	var cfg Config
	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Data.Source == "" {
		c.Data.Source = SourceFile
	}
	if c.Data.Path == "" {
		c.Data.Path = "contracts.json"
	}
	if c.Data.Object == "" {
		c.Data.Object = "contracts.json"
	}
	if c.Minio.Region == "" {
		c.Minio.Region = "us-east-1"
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 100
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = []string{"*"}
	}
	if c.Dashboard.TopUniversities == 0 {
		c.Dashboard.TopUniversities = 15
	}
	if c.Dashboard.TopDepartmentUniversities == 0 {
		c.Dashboard.TopDepartmentUniversities = 5
	}
	if len(c.Categories) == 0 {
		c.Categories = make(map[string]string, len(DefaultCategories))
		for k, v := range DefaultCategories {
			c.Categories[k] = v
		}
	}
}

// Env vars override YAML values
func (c *Config) applyEnv() {
	envOverrideInt(&c.Server.Port, "ACCREDIT_PORT")
	envOverride(&c.Server.StaticDir, "ACCREDIT_STATIC_DIR")
	envOverride(&c.Log.Level, "ACCREDIT_LOG_LEVEL")
	envOverride(&c.Log.Format, "ACCREDIT_LOG_FORMAT")
	envOverride(&c.Data.Source, "ACCREDIT_DATA_SOURCE")
	envOverride(&c.Data.Path, "ACCREDIT_DATA_PATH")
	envOverride(&c.Data.Object, "ACCREDIT_DATA_OBJECT")
	envOverride(&c.Minio.Endpoint, "MINIO_ENDPOINT")
	envOverride(&c.Minio.AccessKey, "MINIO_ACCESS_KEY")
	envOverride(&c.Minio.SecretKey, "MINIO_SECRET_KEY")
	envOverride(&c.Minio.Bucket, "MINIO_BUCKET")
	envOverrideBool(&c.Minio.UseSSL, "MINIO_USE_SSL")
}

func envOverride(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Category returns the department name for a specialization category slug
func (c *Config) Category(slug string) (string, bool) {
	dept, ok := c.Categories[slug]
	return dept, ok
}
