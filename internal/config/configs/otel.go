package configs

import "strings"

// Otel configures OpenTelemetry tracing. Exporter is "stdout" (default) or
// "otlp"; the latter sends spans over HTTP to Endpoint.
type Otel struct {
	Enabled     bool    `env:"ENABLED" envDefault:"false"`
	Exporter    string  `env:"EXPORTER" envDefault:"stdout"`
	Endpoint    string  `env:"ENDPOINT"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"agency-backoffice"`
}

// ExporterKind normalises Exporter. Unknown values fall back to "stdout".
func (c Otel) ExporterKind() string {
	switch strings.ToLower(strings.TrimSpace(c.Exporter)) {
	case "otlp":
		return "otlp"
	default:
		return "stdout"
	}
}

// Ratio clamps SampleRatio to [0,1].
func (c Otel) Ratio() float64 {
	switch {
	case c.SampleRatio < 0:
		return 0
	case c.SampleRatio > 1:
		return 1
	default:
		return c.SampleRatio
	}
}
