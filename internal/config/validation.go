package config

import (
	"fmt"
	"strings"
)

// maxLimit mirrors the largest limit a sieve accepts.
const maxLimit = 1 << 40

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateSieve()...)
	errors = append(errors, c.validateVerify()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateSieve() ValidationErrors {
	var errors ValidationErrors

	if c.Sieve.InitialLimit > maxLimit {
		errors = append(errors, ValidationError{
			Field:   "sieve.initial_limit",
			Message: fmt.Sprintf("initial_limit cannot exceed %d", uint64(maxLimit)),
		})
	}

	if c.Sieve.SegmentSize == 0 {
		errors = append(errors, ValidationError{
			Field:   "sieve.segment_size",
			Message: "segment_size must be positive",
		})
	} else if c.Sieve.SegmentSize > maxLimit {
		errors = append(errors, ValidationError{
			Field:   "sieve.segment_size",
			Message: fmt.Sprintf("segment_size cannot exceed %d", uint64(maxLimit)),
		})
	}

	if c.Sieve.MaxGrowths < 0 {
		errors = append(errors, ValidationError{
			Field:   "sieve.max_growths",
			Message: "max_growths cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateVerify() ValidationErrors {
	var errors ValidationErrors

	if c.Verify.Workers <= 0 {
		errors = append(errors, ValidationError{
			Field:   "verify.workers",
			Message: "workers must be positive",
		})
	}

	if c.Verify.ChunkSize == 0 {
		errors = append(errors, ValidationError{
			Field:   "verify.chunk_size",
			Message: "chunk_size must be positive",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{"table": true, "plain": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'table' or 'plain'",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
