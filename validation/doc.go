// Package validation validates decoded configuration structs using
// `validate` struct tags (go-playground/validator).
//
//	type Sampling struct {
//	    Strategy string `mapstructure:"strategy" validate:"required,oneof=even random truncate"`
//	    Count    int    `mapstructure:"count" validate:"gte=0"`
//	}
//	err := validation.Validate(&cfg)
//
// Field names in error messages follow the mapstructure (or yaml) tag, so
// they match the keys users write in their YAML files.
package validation
