package model

import (
	"fmt"

	ai "github.com/spetersoncode/imagegen"
)

// ImagePricing contains per-image prices by quality.
// Backends without quality tiers use the same price for both.
type ImagePricing struct {
	Standard ai.Cost
	HD       ai.Cost
}

// For returns the price for quality q; anything but HD is priced as standard.
func (p ImagePricing) For(q ai.ImageQuality) ai.Cost {
	if q == ai.ImageQualityHD {
		return p.HD
	}
	return p.Standard
}

// HasQualityTiers returns true if the price depends on quality.
func (p ImagePricing) HasQualityTiers() bool {
	return p.Standard != p.HD
}

// IsFree returns true if generation costs nothing.
func (p ImagePricing) IsFree() bool {
	return p.Standard == 0 && p.HD == 0
}

// Range describes the price span, e.g. "$0.04-$0.08 per image".
func (p ImagePricing) Range() string {
	switch {
	case p.IsFree():
		return "Free (local)"
	case p.HasQualityTiers():
		return fmt.Sprintf("$%.2f-$%.2f per image", p.Standard.Dollars(), p.HD.Dollars())
	default:
		return fmt.Sprintf("$%.2f per image", p.Standard.Dollars())
	}
}

// CostEstimate is a derived cost projection for one backend and quality.
type CostEstimate struct {
	Backend     ai.Backend
	Quality     ai.ImageQuality
	Description string
	PerImage    ai.Cost
	Per10       ai.Cost
	Per100      ai.Cost
}

// Estimate returns the cost of generating images with backend b at
// quality q. It performs no I/O. BackendAuto and unknown backends yield
// a ConfigurationError.
func Estimate(b ai.Backend, q ai.ImageQuality) (CostEstimate, error) {
	m, ok := ForBackend(b)
	if !ok {
		return CostEstimate{}, &ai.ConfigurationError{Msg: "unknown backend: " + b.String()}
	}
	if q == "" {
		q = ai.ImageQualityStandard
	}
	per := m.Cost(q)
	return CostEstimate{
		Backend:     b,
		Quality:     q,
		Description: describe(m, q),
		PerImage:    per,
		Per10:       10 * per,
		Per100:      100 * per,
	}, nil
}

func describe(m ImageModel, q ai.ImageQuality) string {
	switch {
	case m.pricing.IsFree():
		return m.name + " (local, free)"
	case m.pricing.HasQualityTiers():
		return fmt.Sprintf("%s %s quality", m.name, q)
	default:
		return m.name
	}
}
