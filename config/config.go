// Package config holds the run configuration: built-in defaults, an
// optional YAML file and command-line overrides, checked with struct-tag
// validation.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seedspread/strategy"
)

// ErrInvalidConfig is returned for unreadable, malformed or invalid configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete description of one run.
type Config struct {
	// Graph is the path of the graph file.
	Graph string `yaml:"graph"`

	// Format is the graph file layout: header or triples.
	Format string `yaml:"format" validate:"oneof=header triples"`

	// K is the number of seeds to select.
	K int `yaml:"k" validate:"gte=0"`

	// Strategy is a registered strategy name.
	Strategy string `yaml:"strategy" validate:"strategy"`

	// Trials is the number of Monte-Carlo cascades per estimate.
	Trials int `yaml:"trials" validate:"gte=1"`

	// Aggregate reduces trials: mean, union or last.
	Aggregate string `yaml:"aggregate" validate:"oneof=mean union last"`

	// Workers runs trials in parallel when > 1.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Seed fixes the random stream; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	// Timeout bounds the whole run; 0 disables it.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	// Output is text or json.
	Output string `yaml:"output" validate:"oneof=text json"`

	// Metrics dumps Prometheus metrics to stderr at exit.
	Metrics bool `yaml:"metrics"`

	Log Log `yaml:"log"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:    "header",
		Strategy:  strategy.Greedy,
		Trials:    1,
		Aggregate: "mean",
		Workers:   1,
		Output:    "text",
		Log: Log{
			Level:  "warn",
			Format: "console",
		},
	}
}

// LoadFile overlays the YAML file at path onto base.
func LoadFile(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	defer f.Close()

	cfg, err := Decode(f, base)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays YAML from r onto base. Keys absent from the document keep
// their base value; unknown keys are an error.
func Decode(r io.Reader, base Config) (Config, error) {
	cfg := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		return slices.Contains(strategy.Names(), fl.Field().String())
	})

	return v
}

// Validate checks every field constraint and reports all violations at once.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, formatFieldError(fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	field = strings.TrimPrefix(field, "config.")

	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s (got %v)", field, e.Param(), e.Value())
	case "strategy":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, strings.Join(strategy.Names(), " "), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
