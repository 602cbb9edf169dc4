package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Path records an access path expression under the key "path".
func Path(expr string) slog.Attr {
	return slog.String("path", expr)
}

// Strategy records the resolution strategy under the key "strategy".
// Accepts anything printable, typically access.Strategy.
func Strategy(s any) slog.Attr {
	if s == nil {
		return slog.Attr{}
	}
	return slog.Any("strategy", s)
}

// Param records the checked parameter name under the key "param".
func Param(name string) slog.Attr {
	return slog.String("param", name)
}

// Spec records a type identifier under the key "spec".
func Spec(identifier string) slog.Attr {
	return slog.String("spec", identifier)
}

// File records an input file name under the key "file".
func File(name string) slog.Attr {
	return slog.String("file", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
