// Package report classifies sensor readings against the configured
// threshold bands and renders the three plugin output modes.
package report

import (
	"github.com/jakeobsen/monitoring-plugins/internal/models"
)

// Classify derives a severity for every reading by comparing its
// active-scale temperature against the two thresholds. Both thresholds
// are inclusive on their lower bound:
//
//	temp >= crit          -> Critical
//	warn <= temp < crit   -> Warning
//	temp < warn           -> Ok
//
// warn < crit is assumed, not validated. No reading is ever dropped;
// the result preserves decode order.
func Classify(readings []models.SensorReading, warn, crit float64, scale models.Scale) []models.ClassifiedReading {
	classified := make([]models.ClassifiedReading, 0, len(readings))
	for _, r := range readings {
		temp := scale.Value(r)

		severity := models.SeverityOk
		switch {
		case temp >= crit:
			severity = models.SeverityCritical
		case temp >= warn:
			severity = models.SeverityWarning
		}

		classified = append(classified, models.ClassifiedReading{
			SensorReading: r,
			Severity:      severity,
		})
	}
	return classified
}

// Aggregate rolls the per-reading severities up into the worst observed
// one. It starts at Unknown and is only ever raised, so an empty input
// stays Unknown and a later lower severity never regresses the result.
func Aggregate(classified []models.ClassifiedReading) models.Severity {
	aggregate := models.SeverityUnknown
	for _, c := range classified {
		if c.Severity > aggregate {
			aggregate = c.Severity
		}
	}
	return aggregate
}
