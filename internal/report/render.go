package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jakeobsen/monitoring-plugins/internal/models"
)

// GraphConfig carries the graph-definition metadata. Thresholds are
// repeated per sensor because munin wants them attached to every field.
type GraphConfig struct {
	Title    string
	Warning  float64
	Critical float64
	Scale    models.Scale
}

// WriteGraphConfig emits the munin "config" output: a fixed metadata
// header followed by label/warning/critical lines per sensor, keyed by
// the sensor's position in decode order. An empty reading list emits
// the header only.
func WriteGraphConfig(w io.Writer, readings []models.SensorReading, cfg GraphConfig) {
	fmt.Fprintf(w, "graph_title %s\n", cfg.Title)
	fmt.Fprintf(w, "graph_vlabel %s\n", cfg.Scale.VLabel())
	fmt.Fprintf(w, "graph_args --base 1000 -l 0\n")
	fmt.Fprintf(w, "graph_category sensors\n")
	for i, r := range readings {
		fmt.Fprintf(w, "temp%d.label %s\n", i, r.Label)
		fmt.Fprintf(w, "temp%d.warning %s\n", i, formatTemp(cfg.Warning))
		fmt.Fprintf(w, "temp%d.critical %s\n", i, formatTemp(cfg.Critical))
	}
}

// WriteValues emits the munin fetch output: one value line per sensor
// in decode order. An empty reading list emits nothing.
func WriteValues(w io.Writer, readings []models.SensorReading, scale models.Scale) {
	for i, r := range readings {
		fmt.Fprintf(w, "temp%d.value %s\n", i, formatTemp(scale.Value(r)))
	}
}

// AlertSummary builds the single human-readable status line for
// alerting integrations, one segment per sensor, plus the aggregate
// severity the caller turns into the exit status. No sensors means an
// empty summary and an Unknown aggregate.
func AlertSummary(classified []models.ClassifiedReading, scale models.Scale) (string, models.Severity) {
	segments := make([]string, 0, len(classified))
	for i, c := range classified {
		segments = append(segments, fmt.Sprintf("temp%d %s %s %s%s",
			i, c.Label, c.Severity, formatTemp(scale.Value(c.SensorReading)), scale.Symbol()))
	}
	return strings.Join(segments, "; "), Aggregate(classified)
}

// formatTemp renders a temperature the way the device reported it:
// integral values without a decimal point.
func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
