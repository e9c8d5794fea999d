package config

import (
	"strings"

	"dario.cat/mergo"
	"github.com/spf13/viper"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/validation"
)

// keyDelimiter keeps dotted YAML keys ("a.b": 1) from being split into nested keys.
const keyDelimiter = "::"

// Defaulter is implemented by configs that fill in their own defaults.
type Defaulter interface {
	ApplyDefaults()
}

// Validator is implemented by configs with checks beyond `validate` tags.
type Validator interface {
	Validate() error
}

// DecodeConfig holds decode options.
type DecodeConfig struct {
	EnvPrefix string
	Defaults  any
}

// DecodeOption is a functional option for Decode.
type DecodeOption func(*DecodeConfig)

// WithEnvOverrides lets PREFIX_SECTION_KEY environment variables override
// keys present in the tree.
func WithEnvOverrides(prefix string) DecodeOption {
	return func(dc *DecodeConfig) { dc.EnvPrefix = prefix }
}

// WithDefaults fills zero-valued fields of the decoded struct from defaults,
// which must be a struct (or pointer to one) of the same type.
func WithDefaults(defaults any) DecodeOption {
	return func(dc *DecodeConfig) { dc.Defaults = defaults }
}

// Decode decodes tree into out using `mapstructure` tags.
func Decode(tree Tree, out any, opts ...DecodeOption) error {
	var dc DecodeConfig
	for _, opt := range opts {
		opt(&dc)
	}

	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	// viper lower-cases keys of the map it is given
	if err := v.MergeConfigMap(tree.Clone()); err != nil {
		return errors.InvalidDocument("", "cannot read tree").WithCause(err)
	}
	if dc.EnvPrefix != "" {
		v.SetEnvPrefix(dc.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_", ".", "_", "-", "_"))
		v.AutomaticEnv()
	}
	if err := v.Unmarshal(out); err != nil {
		return errors.InvalidDocument("", "cannot decode configuration").WithCause(err)
	}

	if dc.Defaults != nil {
		if err := mergo.Merge(out, dc.Defaults); err != nil {
			return errors.InvalidArgument("defaults", err.Error()).WithCause(err)
		}
	}
	return nil
}

// LoadInto loads and merges paths, decodes the result into out, applies
// defaults and validates it.
func (l *Loader) LoadInto(out any, paths []string, opts ...DecodeOption) error {
	tree, err := l.LoadFiles(paths...)
	if err != nil {
		return err
	}
	if err := Decode(tree, out, opts...); err != nil {
		return err
	}
	return Finalize(out)
}

// LoadInto loads into out with the default loader. See Loader.LoadInto.
func LoadInto(out any, paths []string, opts ...DecodeOption) error {
	return getDefaultLoader().LoadInto(out, paths, opts...)
}

// Finalize applies ApplyDefaults, `validate` tag checks and Validate, in
// that order, to cfg.
func Finalize(cfg any) error {
	if d, ok := cfg.(Defaulter); ok {
		d.ApplyDefaults()
	}
	if err := validation.Validate(cfg); err != nil {
		return err
	}
	if v, ok := cfg.(Validator); ok {
		return v.Validate()
	}
	return nil
}
