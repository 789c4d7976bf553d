package httpclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// scope is the OpenTelemetry instrumentation scope name.
const scope = "github.com/courier-labs/courier-go/httpclient"

// InstrumentedTransport decorates another Transport with an
// OpenTelemetry client span and request metrics per call. The Client
// itself stays observability-free; instrumentation is opt-in by
// wrapping the transport:
//
//	transport := httpclient.NewInstrumentedTransport(
//	    httpclient.NewNetTransport(httpclient.DefaultConfig()),
//	    httpclient.WithServiceName("payment-client"),
//	)
//	client := httpclient.New(httpclient.WithTransport(transport))
type InstrumentedTransport struct {
	base        Transport
	tracer      trace.Tracer
	metrics     *clientMetrics
	serviceName string
}

var _ Transport = (*InstrumentedTransport)(nil)

// InstrumentOption configures an InstrumentedTransport.
type InstrumentOption func(*instrumentConfig)

type instrumentConfig struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string
}

// WithServiceName identifies this client in spans and metrics via the
// "http.client.name" attribute.
func WithServiceName(name string) InstrumentOption {
	return func(cfg *instrumentConfig) {
		cfg.serviceName = name
	}
}

// WithTracerProvider overrides the global TracerProvider.
func WithTracerProvider(tp trace.TracerProvider) InstrumentOption {
	return func(cfg *instrumentConfig) {
		cfg.tracerProvider = tp
	}
}

// WithMeterProvider overrides the global MeterProvider.
func WithMeterProvider(mp metric.MeterProvider) InstrumentOption {
	return func(cfg *instrumentConfig) {
		cfg.meterProvider = mp
	}
}

// NewInstrumentedTransport wraps base with tracing and metrics. Global
// providers are used unless overridden.
func NewInstrumentedTransport(base Transport, opts ...InstrumentOption) *InstrumentedTransport {
	cfg := &instrumentConfig{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// A metrics registration failure leaves metrics nil; recording on
	// a nil clientMetrics is a no-op.
	m, _ := newClientMetrics(cfg.meterProvider.Meter(scope))

	return &InstrumentedTransport{
		base:        base,
		tracer:      cfg.tracerProvider.Tracer(scope),
		metrics:     m,
		serviceName: cfg.serviceName,
	}
}

// Perform implements Transport.
func (t *InstrumentedTransport) Perform(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()

	ctx, span := t.tracer.Start(ctx, "HTTP "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(t.requestAttributes(req)...),
	)
	defer span.End()

	baseAttrs := t.baseAttributes()
	t.metrics.recordStart(ctx, baseAttrs)
	defer t.metrics.recordEnd(ctx, baseAttrs)

	resp, err := t.base.Perform(ctx, req)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.metrics.recordError(ctx, baseAttrs)
		t.metrics.recordDuration(ctx, duration, t.resultAttributes(req, nil))
		return nil, err
	}

	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		if resp.StatusCode >= 400 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
		}
	}
	t.metrics.recordDuration(ctx, duration, t.resultAttributes(req, resp))

	return resp, nil
}

// baseAttributes returns the attributes common to all spans and metrics.
func (t *InstrumentedTransport) baseAttributes() []attribute.KeyValue {
	if t.serviceName == "" {
		return nil
	}
	return []attribute.KeyValue{attribute.String("http.client.name", t.serviceName)}
}

// requestAttributes returns span attributes for the request.
func (t *InstrumentedTransport) requestAttributes(req *Request) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 5)
	attrs = append(attrs, t.baseAttributes()...)
	attrs = append(attrs, attribute.String("http.request.method", req.Method))
	attrs = append(attrs, attribute.String("url.full", req.URL))

	if u, err := url.Parse(req.URL); err == nil && u.Hostname() != "" {
		attrs = append(attrs, attribute.String("server.address", u.Hostname()))
	}
	if len(req.Body) > 0 {
		attrs = append(attrs, attribute.Int("http.request.body.size", len(req.Body)))
	}
	return attrs
}

// resultAttributes returns metric attributes for a completed call.
func (t *InstrumentedTransport) resultAttributes(req *Request, resp *Response) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3)
	attrs = append(attrs, t.baseAttributes()...)
	attrs = append(attrs, attribute.String("http.request.method", req.Method))
	if resp != nil {
		attrs = append(attrs, attribute.Int("http.response.status_code", resp.StatusCode))
	}
	return attrs
}
