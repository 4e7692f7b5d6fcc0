// Package config provides a way to configure the application.
package config

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Configuration of interaction between the runner and the Entrez API
	Entrez EntrezConfig `yaml:"entrez" env:", prefix=ENTREZ_"`
	// Settings related to the input workbook and the output table
	Input InputConfig `yaml:"input"  env:", prefix=INPUT_"`
	// Logger configuration
	Log LogConfig `yaml:"log"    env:", prefix=LOG_"`
}

type EntrezConfig struct {
	// Base URL of the E-utilities endpoint. Overridable for tests.
	BaseURL string `yaml:"base_url"     env:"BASE_URL"`
	// Tool name sent with every request, per NCBI usage policy.
	Tool string `yaml:"tool"         env:"TOOL"`
	// Path to the INI file carrying the contact email ([NCBI] section).
	ContactPath string `yaml:"contact_path" env:"CONTACT_PATH"`
	// Timeout
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"TIMEOUT"`
	// Retries. Attempts counts the initial try, so 1 means no retry at all.
	Attempts    uint          `yaml:"attempts"      env:"ATTEMPTS"`
	MinWaitTime time.Duration `yaml:"min_wait_time" env:"MIN_WAIT_TIME"`
	MaxWaitTime time.Duration `yaml:"max_wait_time" env:"MAX_WAIT_TIME"`
	// Upper bound of the random courtesy pause taken before each
	// identifier's lookups.
	MaxDelay time.Duration `yaml:"max_delay" env:"MAX_DELAY"`
}

type InputConfig struct {
	// Header cell of the identifier column, matched exactly.
	IDColumn string `yaml:"id_column"     env:"ID_COLUMN"`
	// Suffix appended to the input file's base name for the output workbook.
	OutputSuffix string `yaml:"output_suffix" env:"OUTPUT_SUFFIX"`
}

type LogConfig struct {
	// Level is parsed with [zapcore.ParseLevel] when the logger is built.
	Level    string `yaml:"level"    env:"LEVEL"`
	Encoding string `yaml:"encoding" env:"ENCODING"`
}

const (
	DefaultBaseURL     = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	DefaultTool        = "genescan"
	DefaultContactPath = "config.ini"
	DefaultIDColumn    = "Gene ID"
)

func Default() *Config {
	return &Config{
		Entrez: EntrezConfig{
			BaseURL:     DefaultBaseURL,
			Tool:        DefaultTool,
			ContactPath: DefaultContactPath,
			HTTPTimeout: 0, // no timeout by default; a hung call blocks the batch
			Attempts:    1,
			MinWaitTime: time.Second,
			MaxWaitTime: 10 * time.Second,
			MaxDelay:    time.Second,
		},
		Input: InputConfig{
			IDColumn:     DefaultIDColumn,
			OutputSuffix: "_output",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "Path to YAML configuration file")
	_ = godotenv.Load() // load the user-defined `.env` file
}

func Load() (*Config, error) {
	flag.Parse()
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	cfg := Default()
	if configPath != "" {
		loaded, err := LoadFromYAML(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Environment variables always win over the file.
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
