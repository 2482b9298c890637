// Package validation provides input validation for flowkit configuration
// and runtime wiring.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for configuration types.
//
// # Struct Tag Validation
//
//	type StageConfig struct {
//	    Name    string `validate:"required,min=1"`
//	    Retries int    `validate:"min=0,max=10"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).NonNil("handler", handler)
//	err := v.Err()
package validation
