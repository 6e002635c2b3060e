package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SpinID records a spin correlation identifier under the key "spin_id".
// If id is empty, it returns an empty Attr.
func SpinID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("spin_id", id)
}
