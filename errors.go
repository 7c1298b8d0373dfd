package axes

import (
	"errors"
	"fmt"
)

var (
	// ErrMixedDataTypes is returned when series of different data types
	// (e.g. Date and Number) are bound to the same axis.
	ErrMixedDataTypes = errors.New("different axis data types cannot be mixed on the same axis")

	// ErrInvalidSeries is returned for malformed series.
	ErrInvalidSeries = errors.New("invalid series")

	// ErrConfig is wrapped by all configuration errors.
	ErrConfig = errors.New("configuration error")
)

// DataTypeError reports a conflicting data type assignment to an axis.
type DataTypeError struct {
	Axis string
	Have DataType
	Want DataType
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("%s axis: cannot bind %s data to %s axis: %v", e.Axis, e.Want, e.Have, ErrMixedDataTypes)
}

func (e *DataTypeError) Unwrap() error {
	return ErrMixedDataTypes
}

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrConfig
}
