// Package models defines the data types shared by the tempager plugin:
// sensor readings, temperature scales and severity levels.
package models

// SensorReading is one validated per-sensor record decoded from the
// TemPageR payload. The device reports every probe in both scales; the
// active one is selected by configuration, never re-derived by conversion.
type SensorReading struct {
	Label string  `json:"label"`
	TempC float64 `json:"tempc"`
	TempF float64 `json:"tempf"`
}

// ClassifiedReading is a SensorReading plus its derived severity.
type ClassifiedReading struct {
	SensorReading
	Severity Severity
}
