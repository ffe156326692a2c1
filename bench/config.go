package bench

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/amp-labs/amp-flat/envutil"
	"github.com/amp-labs/amp-flat/errors"
	"gopkg.in/yaml.v3"
)

// Config is the content of a flatbench workload file.
//
// Example:
//
//	workers: 4
//	workloads:
//	  - container: multiset
//	    storage: small
//	    keys: natural
//	    ops: 20000
//	    hint: random
type Config struct {
	Workers     int        `yaml:"workers"`
	MetricsAddr string     `yaml:"metricsAddr"`
	Workloads   []Workload `yaml:"workloads"`
}

var errNonPositive = stderrors.New("must be positive")

func positive(n int) error {
	if n < 1 {
		return fmt.Errorf("%w, got %d", errNonPositive, n)
	}

	return nil
}

// LoadConfig reads the workload file at path, or the one named by
// FLATBENCH_CONFIG when path is empty. With neither, DefaultWorkloads is used.
// FLATBENCH_WORKERS and FLATBENCH_METRICS_ADDR override the file.
func LoadConfig(ctx context.Context, path string) (Config, error) {
	if path == "" {
		path = envutil.String(ctx, "FLATBENCH_CONFIG", envutil.Default("")).ValueOrElse("")
	}

	var cfg Config

	if path != "" {
		loaded, err := readConfigFile(path)
		if err != nil {
			return Config{}, err
		}

		cfg = loaded
	}

	if len(cfg.Workloads) == 0 {
		cfg.Workloads = DefaultWorkloads()
	}

	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	workers, err := envutil.Int(ctx, "FLATBENCH_WORKERS",
		envutil.Default(cfg.Workers),
		envutil.Validate(positive)).Value()
	if err != nil {
		return Config{}, err
	}

	cfg.Workers = workers
	cfg.MetricsAddr = envutil.String(ctx, "FLATBENCH_METRICS_ADDR").ValueOrElse(cfg.MetricsAddr)

	for i := range cfg.Workloads {
		cfg.Workloads[i] = cfg.Workloads[i].WithDefaults()
	}

	return cfg, cfg.Validate()
}

func readConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every workload and that workload names are unique.
func (c Config) Validate() error {
	var errs errors.Collection

	if c.Workers < 1 {
		errs.Add(fmt.Errorf("workers %w, got %d", errNonPositive, c.Workers))
	}

	names := make(map[string]bool, len(c.Workloads))

	for _, w := range c.Workloads {
		errs.Add(w.Validate())

		if names[w.Name] {
			errs.Add(fmt.Errorf("%w: duplicate workload name %q", ErrInvalidWorkload, w.Name))
		}

		names[w.Name] = true
	}

	return errs.GetError()
}
