package utils

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var serviceName = "heritage-server"

// SetServiceName sets the service field attached to every log entry.
func SetServiceName(name string) {
	if name != "" {
		serviceName = name
	}
}

// ExtractServiceName returns the service field attached to every log entry.
func ExtractServiceName() string {
	return serviceName
}

func GenerateTraceId() string {
	return uuid.New().String()
}

func LogEntry(entry *log.Entry, level, message string) {
	switch level {
	case "debug":
		entry.Debug(message)
	case "info":
		entry.Info(message)
	case "warn":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	case "fatal":
		entry.Fatal(message)
	case "panic":
		entry.Panic(message)
	default:
		entry.Info(message)
	}
}

func LogMessage(level, message string) {
	entry := log.WithFields(log.Fields{
		"service": serviceName,
	})

	LogEntry(entry, level, message)
}

// LogMessageWithFields logs with the trace id of the request, if ctx carries one.
func LogMessageWithFields(ctx context.Context, level, message string) {
	LogEntry(entryFromContext(ctx), level, message)
}

func LogMessageWithFieldsAndError(ctx context.Context, level, message string, err error) {
	LogEntry(entryFromContext(ctx).WithError(err), level, message)
}

func entryFromContext(ctx context.Context) *log.Entry {
	fields := log.Fields{
		"service": serviceName,
	}
	if ctx != nil {
		if traceId, ok := ctx.Value(TraceIdKey.String()).(string); ok {
			fields["traceId"] = traceId
		}
	}

	return log.WithFields(fields)
}
