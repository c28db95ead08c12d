package models

import (
	"github.com/gookit/validate"
)

// Threshold is one alert-boundary pair. Rows are append-only; the
// authoritative pair is always the one with the highest id.
type Threshold struct {
	TempThreshold     float64 `json:"temp_threshold"`
	HumidityThreshold float64 `json:"humidity_threshold"`
}

type ThresholdPayload struct {
	TempThreshold     *float64 `json:"temp_threshold" validate:"required"`
	HumidityThreshold *float64 `json:"humidity_threshold" validate:"required"`
}

func (p *ThresholdPayload) Validate() error {
	v := validate.Struct(p)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}
