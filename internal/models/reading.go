package models

import (
	"github.com/gookit/validate"
)

// TimestampLayout is the wire format the dashboard expects for
// reading timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Reading is one persisted sensor sample as returned by the query
// endpoint. RelayStatus is a binary actuator state reported by the
// device, not controlled here.
type Reading struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	RelayStatus int     `json:"relay_status"`
	Timestamp   string  `json:"timestamp"`
}

// ReadingPayload is the ingestion request body. Pointer fields
// distinguish an absent field from a legitimate zero (relay off,
// 0 degrees), so the required rule fires only on missing input.
type ReadingPayload struct {
	Temperature *float64 `json:"temperature" validate:"required"`
	Humidity    *float64 `json:"humidity" validate:"required"`
	RelayStatus *int     `json:"relay_status" validate:"required"`
}

func (p *ReadingPayload) Validate() error {
	v := validate.Struct(p)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}
