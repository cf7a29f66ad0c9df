package models

// Scale selects which of the two temperature fields reported by the
// device is active for output and classification.
type Scale string

const (
	ScaleCelsius    Scale = "celsius"
	ScaleFahrenheit Scale = "fahrenheit"
)

// ParseScale normalizes a configured scale name, defaulting to Celsius
// for anything unrecognized.
func ParseScale(s string) Scale {
	if s == string(ScaleFahrenheit) {
		return ScaleFahrenheit
	}
	return ScaleCelsius
}

// Value returns the reading's temperature in the active scale.
func (s Scale) Value(r SensorReading) float64 {
	if s == ScaleFahrenheit {
		return r.TempF
	}
	return r.TempC
}

// Symbol returns the unit symbol appended to alert-summary temperatures.
func (s Scale) Symbol() string {
	if s == ScaleFahrenheit {
		return "°F"
	}
	return "°C"
}

// VLabel returns the munin graph_vlabel text for the active scale.
func (s Scale) VLabel() string {
	if s == ScaleFahrenheit {
		return "degrees Fahrenheit"
	}
	return "degrees Celsius"
}
