package arena

import (
	"flag"

	"github.com/pkg/errors"
)

// DefaultBatchSize is the default batch capacity in bytes.
const DefaultBatchSize = 10000

// MaxBatchBytes is the largest single batch an allocator will create: 1 TiB
// on 64-bit platforms and 256 MiB on 32-bit ones. Larger requests fail with
// ErrOutOfMemory.
const MaxBatchBytes = 1 << (28 + 12*(^uint(0)>>63))

// Config holds the tunables of an allocator.
type Config struct {
	// BatchSize is the capacity in bytes of every regular batch. Requests
	// larger than BatchSize get a dedicated batch of exactly their size.
	BatchSize int `yaml:"batch_size"`

	// MaxBatches caps the number of batches in the chain. 0 means unlimited.
	MaxBatches int `yaml:"max_batches"`
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	return Config{BatchSize: DefaultBatchSize}
}

// RegisterFlags registers the config flags under the "arena." prefix.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix(f, "arena.")
}

// RegisterFlagsWithPrefix registers the config flags under the given prefix.
func (cfg *Config) RegisterFlagsWithPrefix(f *flag.FlagSet, prefix string) {
	f.IntVar(&cfg.BatchSize, prefix+"batch-size", DefaultBatchSize, "Capacity in bytes of each allocator batch.")
	f.IntVar(&cfg.MaxBatches, prefix+"max-batches", 0, "Maximum number of batches an allocator may hold. 0 to disable the limit.")
}

// Validate checks the config for invalid values.
func (cfg *Config) Validate() error {
	if cfg.BatchSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "batch size must be positive, got %d", cfg.BatchSize)
	}
	if cfg.BatchSize > MaxBatchBytes {
		return errors.Wrapf(ErrInvalidConfig, "batch size must not exceed %d, got %d", MaxBatchBytes, cfg.BatchSize)
	}
	if cfg.MaxBatches < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max batches must not be negative, got %d", cfg.MaxBatches)
	}
	return nil
}
