package arena

import "github.com/pkg/errors"

var (
	// ErrOutOfMemory is returned when a request cannot be served: either its
	// byte size does not fit in an int, or serving it needs a new batch and
	// the configured batch limit has been reached.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("arena: invalid config")
)

const errUseAfterRelease = "arena: use after Release()"
