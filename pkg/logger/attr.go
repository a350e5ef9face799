package logger

import (
	"log/slog"
	"strconv"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", indexed by position.
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

// Error logs err under "error". Nil errors produce an empty attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// AlertGroup is the group identifier an alert was published for.
func AlertGroup(id string) slog.Attr {
	return slog.String("alert_group", id)
}

func AlertType(t string) slog.Attr {
	if t == "" {
		return slog.String("alert_type", "clear")
	}
	return slog.String("alert_type", t)
}

// AlertKey is the surrogate key of a visible alert.
func AlertKey(key uint64) slog.Attr {
	return slog.Uint64("alert_key", key)
}

// ClientID identifies the browser client of an alert stream.
func ClientID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("client_id", id)
}

func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

func Origin(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("origin", id)
}

func Location(path string) slog.Attr {
	return slog.String("location", path)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}
