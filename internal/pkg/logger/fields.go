package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Field is a single structured log attribute. Construction helpers below
// keep call sites framework-agnostic.
type Field struct {
	Key   string
	Value interface{}
}

// String constructs a field that carries a string value.
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

// Int constructs a field that carries an int value.
func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

// Int64 constructs a field that carries an int64 value.
func Int64(key string, val int64) Field {
	return Field{Key: key, Value: val}
}

// Float64 constructs a field that carries a float64 value.
func Float64(key string, val float64) Field {
	return Field{Key: key, Value: val}
}

// Bool constructs a field that carries a boolean value.
func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

// Duration constructs a field that carries a time.Duration value.
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}

// Any constructs a field that carries an arbitrary value.
func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: val}
}

// Err constructs a field that carries an error.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
