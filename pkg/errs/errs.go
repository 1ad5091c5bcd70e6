// Package errs defines the error kinds surfaced by audio-scribe.
//
// Every failure reported to the user wraps exactly one of these sentinels,
// so callers can classify errors with errors.Is() without string matching:
//
//	if errs.IsConfig(err) {
//	    // missing credential, malformed prompt library, bad config file
//	}
package errs

import "errors"

var (
	// ErrConfig indicates a missing credential or a malformed config/prompt file.
	ErrConfig = errors.New("configuration error")

	// ErrValidation indicates invalid input: empty prompt name or template,
	// missing input file, unknown artifact kind.
	ErrValidation = errors.New("validation error")

	// ErrProvider indicates a failed transcription or summarization call
	// (network, auth, quota). The wrapped message carries the provider detail.
	ErrProvider = errors.New("provider error")

	// ErrIO indicates an output directory or file write failure.
	ErrIO = errors.New("io error")
)

// IsConfig reports whether any error in err's chain is ErrConfig.
func IsConfig(err error) bool {
	return errors.Is(err, ErrConfig)
}

// IsValidation reports whether any error in err's chain is ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsProvider reports whether any error in err's chain is ErrProvider.
func IsProvider(err error) bool {
	return errors.Is(err, ErrProvider)
}

// IsIO reports whether any error in err's chain is ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}
