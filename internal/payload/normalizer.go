// Package payload repairs and decodes the TemPageR data payload.
//
// Firmware v2.6.0 returns a single line of near-JSON with unquoted
// object keys, e.g. {label:"Rack1",tempc:"22.5",...}. The repair is a
// fixed three-step transform tied to that one payload shape; it is not
// a general tolerant parser and must not be extended into one. In
// particular the second step also quotes bare lowercase values after a
// comma — the device never emits those, so the mismatch is accepted.
package payload

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jakeobsen/monitoring-plugins/internal/models"
)

// ParseError reports that the payload could not be decoded even after
// repair, or that a decoded record is missing a required field. The
// underlying decode error is preserved.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse sensor payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	// {label: -> {"label":
	openKeyRe = regexp.MustCompile(`\{([a-z]*):`)
	// ,tempc -> ,"tempc"
	// This one is blunt: the identifier may be empty, so a comma
	// directly followed by "{" becomes `,""{`. The third step puts
	// that back.
	commaKeyRe = regexp.MustCompile(`,([a-z]*)`)
)

// Repair turns the device's malformed payload into valid JSON text.
// The three steps must run in this order: step two introduces the
// `,""{` artifact that step three removes.
func Repair(raw string) string {
	text := openKeyRe.ReplaceAllString(raw, `{"$1":`)
	text = commaKeyRe.ReplaceAllString(text, `,"$1"`)
	text = strings.ReplaceAll(text, `,""{`, `,{`)
	return text
}

// rawReading decodes with pointer fields so that missing required
// fields are detectable instead of silently zero.
type rawReading struct {
	Label *string  `json:"label"`
	TempC *float64 `json:"tempc"`
	TempF *float64 `json:"tempf"`
}

type rawPayload struct {
	Sensor []rawReading `json:"sensor"`
}

// Normalize repairs the raw payload and decodes it into the list of
// sensor readings, in device order. A payload without a "sensor" key
// yields an empty list. A record missing its label or the temperature
// field for the active scale breaks the device contract and is a
// ParseError; the inactive scale's field is never read and may be
// absent.
func Normalize(raw string, scale models.Scale) ([]models.SensorReading, error) {
	var decoded rawPayload
	if err := json.Unmarshal([]byte(Repair(raw)), &decoded); err != nil {
		return nil, &ParseError{Err: err}
	}

	readings := make([]models.SensorReading, 0, len(decoded.Sensor))
	for i, rec := range decoded.Sensor {
		if rec.Label == nil {
			return nil, &ParseError{Err: fmt.Errorf("sensor %d is missing field label", i)}
		}
		r := models.SensorReading{Label: *rec.Label}
		if rec.TempC != nil {
			r.TempC = *rec.TempC
		}
		if rec.TempF != nil {
			r.TempF = *rec.TempF
		}
		if scale == models.ScaleFahrenheit && rec.TempF == nil {
			return nil, &ParseError{Err: fmt.Errorf("sensor %d is missing field tempf", i)}
		}
		if scale != models.ScaleFahrenheit && rec.TempC == nil {
			return nil, &ParseError{Err: fmt.Errorf("sensor %d is missing field tempc", i)}
		}
		readings = append(readings, r)
	}

	return readings, nil
}
