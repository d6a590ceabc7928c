// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"pcrdesign-core/design"
)

// Config is the file-level configuration of pcrdesign. Every field has a
// default; a config file only needs the keys it changes.
type Config struct {
	Design  Design  `yaml:"design"`
	Limits  Limits  `yaml:"limits"`
	Analyze Analyze `yaml:"analyze"`
	Run     Run     `yaml:"run"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

type Design struct {
	MinProductSize  int     `yaml:"min_product_size" default:"100" validate:"gte=1"`
	MaxProductSize  int     `yaml:"max_product_size" default:"1000" validate:"gtefield=MinProductSize"`
	MinPrimerLength int     `yaml:"min_primer_length" default:"18" validate:"gte=1"`
	MaxPrimerLength int     `yaml:"max_primer_length" default:"25" validate:"gtefield=MinPrimerLength"`
	MinTm           float64 `yaml:"min_tm" default:"55"`
	MaxTm           float64 `yaml:"max_tm" default:"65" validate:"gtefield=MinTm"`
	OptimalTm       float64 `yaml:"optimal_tm" default:"60"`
	// Specificity is the mismatch budget for binding-site annotation; -1 disables it.
	Specificity int `yaml:"specificity" default:"-1" validate:"gte=-1"`
}

type Limits struct {
	CandidateCap int `yaml:"candidate_cap" default:"300" validate:"gte=1"`
	ResultCap    int `yaml:"result_cap" default:"20" validate:"gte=1"`
}

type Analyze struct {
	PrimerConcNM float64 `yaml:"primer_conc_nm" default:"250" validate:"gt=0"`
	SaltMM       float64 `yaml:"na_mm" default:"50" validate:"gt=0"`
}

type Run struct {
	Threads   int           `yaml:"threads" default:"0" validate:"gte=0"`
	Timeout   time.Duration `yaml:"timeout" default:"0s" validate:"gte=0"`
	CacheSize int           `yaml:"cache_size" default:"128" validate:"gte=0"`
}

type Log struct {
	Level  string `yaml:"level" default:"warn" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	Output string `yaml:"output"` // stderr (default), stdout, or a file path
}

type Metrics struct {
	File string `yaml:"file"`
}

// Env overrides applied by Load after the file.
const (
	EnvLogLevel = "PCRDESIGN_LOG_LEVEL"
	EnvThreads  = "PCRDESIGN_THREADS"
)

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &c
}

// Load applies defaults, overlays the YAML file at path (skipped when path is
// empty), then environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvThreads)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvThreads, err)
		}
		c.Run.Threads = n
	}
	return nil
}

// Validate runs the struct-tag rules and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// Constraints converts the design section to core constraints.
func (d Design) Constraints() design.Constraints {
	return design.Constraints{
		MinProductSize:  d.MinProductSize,
		MaxProductSize:  d.MaxProductSize,
		MinPrimerLength: d.MinPrimerLength,
		MaxPrimerLength: d.MaxPrimerLength,
		MinTm:           d.MinTm,
		MaxTm:           d.MaxTm,
		OptimalTm:       d.OptimalTm,
	}
}
