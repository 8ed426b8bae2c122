package model

import (
	"log/slog"

	"ormbind/internal/binding"
)

// Option configures Build.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	overrides []func(*binding.Settings)
	eager     bool
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger for binding progress and warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSettings replaces the document settings.
func WithSettings(s binding.Settings) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, func(dst *binding.Settings) { *dst = s })
	}
}

// WithLegacyGenerators forces the legacy generator strategy names.
func WithLegacyGenerators() Option {
	return func(o *options) {
		o.overrides = append(o.overrides, func(dst *binding.Settings) { dst.NewGeneratorMappings = false })
	}
}

// WithStrictGenerators turns generator redefinitions into errors.
func WithStrictGenerators() Option {
	return func(o *options) {
		o.overrides = append(o.overrides, func(dst *binding.Settings) { dst.StrictGeneratorNames = true })
	}
}

// WithEagerTypes resolves every basic attribute type during Build, so a type
// defect fails its hierarchy instead of surfacing on first access.
func WithEagerTypes() Option {
	return func(o *options) {
		o.eager = true
	}
}
