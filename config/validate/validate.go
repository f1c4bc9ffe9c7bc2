package validate

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Standardized error message helpers

func ErrRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

func ErrOneOf(field string, allowed any, value any) error {
	return fmt.Errorf("%s must be one of %v (got %v)", field, allowed, value)
}

func RequireString(v *ValidationErrors, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		err := ErrRequired(path)
		LogConfigError(path, value, err)
		v.Add(err)
		return false
	}
	LogConfigOK(path, value)
	return true
}

func RequireOneOf[T comparable](v *ValidationErrors, path string, value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			LogConfigOK(path, value)
			return true
		}
	}
	err := ErrOneOf(path, allowed, value)
	LogConfigError(path, value, err)
	v.Add(err)
	return false
}

// CheckURL requires an absolute http(s) URL with a host. Non-ASCII runes in
// the URL are tolerated with a warning; Pelican accepted such entries, so a
// hard failure would reject configs that already build.
func CheckURL(v *ValidationErrors, path string, raw string) bool {
	if strings.TrimSpace(raw) == "" {
		err := ErrRequired(path)
		LogConfigError(path, raw, err)
		v.Add(err)
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		LogConfigError(path, raw, err)
		v.Add(fmt.Errorf("%s: %w", path, err))
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		err := errors.New("scheme must be http or https")
		LogConfigError(path, raw, err)
		v.Add(fmt.Errorf("%s: %w", path, err))
		return false
	}

	if u.Host == "" {
		err := errors.New("host must be set")
		LogConfigError(path, raw, err)
		v.Add(fmt.Errorf("%s: %w", path, err))
		return false
	}

	for _, r := range raw {
		if r > unicode.MaxASCII {
			log.Warn().
				Str("config", path).
				Str("value", raw).
				Msg("url contains non-ascii characters")
			return true
		}
	}

	LogConfigOK(path, raw)
	return true
}

// CheckTimezone resolves the value against the IANA timezone database.
func CheckTimezone(v *ValidationErrors, path string, name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		err := ErrRequired(path)
		LogConfigError(path, name, err)
		v.Add(err)
		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		LogConfigError(path, name, err)
		v.Add(fmt.Errorf("%s: %w", path, err))
		return nil
	}

	LogConfigOK(path, name)
	return loc
}

// CheckLocale parses the value as a BCP 47 language tag.
func CheckLocale(v *ValidationErrors, path string, code string) bool {
	if strings.TrimSpace(code) == "" {
		err := ErrRequired(path)
		LogConfigError(path, code, err)
		v.Add(err)
		return false
	}

	if _, err := language.Parse(code); err != nil {
		LogConfigError(path, code, err)
		v.Add(fmt.Errorf("%s: %w", path, err))
		return false
	}

	LogConfigOK(path, code)
	return true
}

// CheckRelPath requires a non-empty, slash-separated relative path with no
// parent traversal. Output locations must stay inside the output root.
func CheckRelPath(v *ValidationErrors, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		err := ErrRequired(path)
		LogConfigError(path, value, err)
		v.Add(err)
		return false
	}

	if strings.HasPrefix(value, "/") {
		err := errors.New("must be a relative path")
		LogConfigError(path, value, err)
		v.Add(fmt.Errorf("%s: %w", path, err))
		return false
	}

	for _, seg := range strings.Split(value, "/") {
		if seg == ".." {
			err := errors.New("must not traverse above the output root")
			LogConfigError(path, value, err)
			v.Add(fmt.Errorf("%s: %w", path, err))
			return false
		}
	}

	LogConfigOK(path, value)
	return true
}

func CheckDir(pathKey string, dir string, required bool, v *ValidationErrors) {
	if dir == "" {
		if required {
			err := errors.New("directory must be set")
			LogConfigError(pathKey, dir, err)
			v.Add(fmt.Errorf("%s: %w", pathKey, err))
		} else {
			log.Info().Str("config", pathKey).Msg("directory not set (optional)")
		}
		return
	}

	info, err := os.Stat(dir)
	if err != nil {
		if required {
			LogConfigError(pathKey, dir, err)
			v.Add(fmt.Errorf("%s: %w", pathKey, err))
		} else {
			log.Warn().Str("config", pathKey).Str("value", dir).Err(err).Msg("optional directory does not exist")
		}
		return
	}

	if !info.IsDir() {
		err := errors.New("not a directory")
		if required {
			LogConfigError(pathKey, dir, err)
			v.Add(fmt.Errorf("%s: %w", pathKey, err))
		} else {
			log.Warn().
				Str("config", pathKey).
				Str("value", dir).
				Msg("optional path exists but is not a directory")
		}
		return
	}

	// OK
	LogConfigOK(pathKey, dir)
}

type ValidationErrors struct {
	errors []error
}

func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *ValidationErrors) Errors() []error {
	return v.errors
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func LogConfigOK(path string, value any) {
	log.Logger.Info().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func LogConfigError(path string, value any, err error) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}
