package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for CLI spans.
const (
	AttrService   = "ringoctl.service"
	AttrVerb      = "ringoctl.verb"
	AttrItemTotal = "ringoctl.item.total"
	AttrItemID    = "ringoctl.item.id"
)

// SpanCommand is the root span of one CLI invocation.
const SpanCommand = "ringoctl.command"

// Service returns an attribute for the target service name
func Service(name string) attribute.KeyValue {
	return attribute.String(AttrService, name)
}

// Verb returns an attribute for the command verb
func Verb(verb string) attribute.KeyValue {
	return attribute.String(AttrVerb, verb)
}

// ItemTotal returns an attribute for the batch size
func ItemTotal(n int) attribute.KeyValue {
	return attribute.Int(AttrItemTotal, n)
}

// ItemID returns an attribute for the id of the item being processed
func ItemID(id string) attribute.KeyValue {
	return attribute.String(AttrItemID, id)
}

// StartCommandSpan starts the root span for a command.
func StartCommandSpan(ctx context.Context, service, verb string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{Verb(verb)}
	if service != "" {
		allAttrs = append(allAttrs, Service(service))
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanCommand, trace.WithAttributes(allAttrs...), trace.WithSpanKind(trace.SpanKindInternal))
}
