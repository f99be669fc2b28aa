package avatarforge

import "fmt"

// ConfigError is a fatal problem with the invocation itself: malformed
// parameter JSON, a missing required section, an unusable output path. The
// pipeline halts on one before touching the engine, so no partial scene is
// ever written.
type ConfigError struct {
	msg string
	err error
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func configWrap(err error, msg string) *ConfigError {
	return &ConfigError{msg: msg, err: err}
}

func (e *ConfigError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *ConfigError) Unwrap() error { return e.err }
