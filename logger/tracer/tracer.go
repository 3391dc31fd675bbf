package tracer

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// fieldsDivisor is used to calculate initial capacity for OpenTelemetry fields.
const fieldsDivisor = 2

// FieldsFromContext records the log line as an event on the active span and
// returns fields extended with the span's traceID. Without a valid span the
// fields are returned unchanged.
func FieldsFromContext(ctx context.Context, level, msg string, fields ...any) []any {
	span := trace.SpanFromContext(ctx)
	spanCtx := span.SpanContext()

	if !spanCtx.HasTraceID() {
		return fields
	}

	if span.IsRecording() {
		attrs := FieldsToOpenTelemetry(fields...)
		attrs = append(attrs, attribute.String("level", level))
		span.AddEvent(msg, trace.WithAttributes(attrs...))
	}

	result := make([]any, 0, len(fields)+fieldsDivisor)
	result = append(result, fields...)
	result = append(result, "traceID", spanCtx.TraceID().String())

	return result
}

// FieldsToOpenTelemetry converts slog fields (key/value pairs or slog.Attr)
// to OpenTelemetry attributes.
func FieldsToOpenTelemetry(fields ...any) []attribute.KeyValue {
	if len(fields) == 0 {
		return nil
	}

	openTelemetryFields := make([]attribute.KeyValue, 0, len(fields)/fieldsDivisor+1)

	for idx := 0; idx < len(fields); idx++ {
		if attr, ok := fields[idx].(slog.Attr); ok {
			openTelemetryFields = append(openTelemetryFields, toAttribute(attr.Key, attr.Value.Any()))
			continue
		}

		key, ok := fields[idx].(string)
		if !ok || idx+1 >= len(fields) {
			continue // Skip non-string keys and incomplete pairs
		}

		idx++
		openTelemetryFields = append(openTelemetryFields, toAttribute(key, fields[idx]))
	}

	return openTelemetryFields
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case bool:
		return attribute.Bool(key, val)
	case int:
		return attribute.Int(key, val)
	case int32:
		return attribute.Int(key, int(val))
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case error:
		return attribute.String(key, val.Error())
	case nil:
		return attribute.String(key, "")
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}
