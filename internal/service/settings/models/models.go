package models

import (
	"github.com/studiofit/booking-service/internal/domain"
)

type UpdatePolicyRequest struct {
	Unit  string `json:"unit"`  // "hours" or "days"
	Value int    `json:"value"` // 0 disables the window
}

type PolicyResponse struct {
	Unit  string `json:"unit"`
	Value int    `json:"value"`
}

func (r *UpdatePolicyRequest) ToDomainPolicy() (domain.CancellationPolicy, error) {
	policy := domain.CancellationPolicy{
		Unit:  domain.PolicyUnit(r.Unit),
		Value: r.Value,
	}
	if err := policy.Validate(); err != nil {
		return domain.CancellationPolicy{}, err
	}
	return policy, nil
}

func FromDomainPolicy(p *domain.CancellationPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}
	return &PolicyResponse{
		Unit:  string(p.Unit),
		Value: p.Value,
	}
}
