package validation

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingOptions is returned when environment variables cannot be parsed
// into an Options value.
var ErrParsingOptions = errors.New("validation: failed to parse options from environment")

// Options is the recognized configuration block carried by a validation
// Context. It is advisory data: the contracts define its shape, enforcement
// (including TimeoutMS) belongs to whatever component executes validators.
type Options struct {
	// StopOnFirstError asks an executing engine to halt on the first error.
	StopOnFirstError bool `json:"stopOnFirstError" env:"VALIDATION_STOP_ON_FIRST_ERROR" envDefault:"false"`
	// IncludeWarnings asks an executing engine to collect warnings.
	IncludeWarnings bool `json:"includeWarnings" env:"VALIDATION_INCLUDE_WARNINGS" envDefault:"true"`
	// TimeoutMS is an advisory per-validation timeout in milliseconds.
	// Zero means no timeout was configured.
	TimeoutMS int64 `json:"timeoutMs,omitempty" env:"VALIDATION_TIMEOUT_MS" envDefault:"0"`
}

// Timeout returns TimeoutMS as a duration and whether a timeout was set.
func (o Options) Timeout() (time.Duration, bool) {
	if o.TimeoutMS <= 0 {
		return 0, false
	}
	return time.Duration(o.TimeoutMS) * time.Millisecond, true
}

// DefaultOptions returns the options used when a Context is created without
// an explicit block.
func DefaultOptions() Options {
	return Options{IncludeWarnings: true}
}

var defaultEnvLoaded sync.Once

// OptionsFromEnv loads Options from environment variables
// (VALIDATION_STOP_ON_FIRST_ERROR, VALIDATION_INCLUDE_WARNINGS,
// VALIDATION_TIMEOUT_MS). A .env file is loaded once if present.
func OptionsFromEnv() (Options, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, errors.Join(ErrParsingOptions, err)
	}
	return opts, nil
}
