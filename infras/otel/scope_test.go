package otel_test

import (
	"context"
	"errors"
	"testing"

	"vietravel/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Create")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"booking.code":  "VT1718000123456",
			"booking.id":    int64(7),
			"booking.total": 2376000.0,
			"http.status":   201,
			"training":      true,
		})
	})

	attributes := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attributes[kv.Key] = kv.Value
	}

	assert.Equal(t, "VT1718000123456", attributes["booking.code"].AsString())
	assert.Equal(t, int64(7), attributes["booking.id"].AsInt64())
	assert.InDelta(t, 2376000.0, attributes["booking.total"].AsFloat64(), 0)
	assert.Equal(t, int64(201), attributes["http.status"].AsInt64())
	assert.True(t, attributes["training"].AsBool())
}

func TestScope_TraceIfError_SeesFinalError(t *testing.T) {
	create := func(scope otel.Scope) (err error) {
		defer func() { scope.TraceIfError(err) }()

		err = errors.New("destinationId does not match any destination")

		return err
	}

	span := record(t, func(scope otel.Scope) {
		_ = create(scope)
	})

	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "destinationId does not match any destination", span.Status().Description)
}

func TestScope_TraceIfError_Nil(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
	})

	assert.Equal(t, codes.Unset, span.Status().Code)
}
