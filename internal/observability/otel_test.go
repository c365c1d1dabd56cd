package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/kosmi-edu/kosmi/internal/config"
)

func TestInitOTelDisabled(t *testing.T) {
	shutdown, err := InitOTel(config.OTel{}, "dev", nil, nil)
	if err != nil {
		t.Fatalf("InitOTel: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestInitOTelExportsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := InitOTel(config.OTel{Enabled: true, ServiceName: "kosmi-test", SampleRatio: 1}, "v0.0.1", &buf, nil)
	if err != nil {
		t.Fatalf("InitOTel: %v", err)
	}
	_, span := otel.Tracer("test").Start(context.Background(), "lesson.complete")
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if !strings.Contains(buf.String(), "lesson.complete") {
		t.Errorf("exported spans missing span name: %s", buf.String())
	}
}
