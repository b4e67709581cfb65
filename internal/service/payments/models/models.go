package models

import (
	"errors"
	"time"

	"github.com/studiofit/booking-service/internal/domain"
)

var (
	ErrInvalidStatus = errors.New("invalid payment request status")
)

// Request models

// CreatePaymentRequest asks staff to grant credits, either free-form or
// referencing a pricing package.
type CreatePaymentRequest struct {
	UserID           string  `json:"-"`
	CreditsRequested int     `json:"creditsRequested"`
	PricingPackageID *string `json:"pricingPackageId,omitempty"`
}

// ProcessPaymentRequest is the staff decision on a pending request.
type ProcessPaymentRequest struct {
	Approve     bool    `json:"approve"`
	AdminNotes  *string `json:"adminNotes,omitempty"`
	ProcessedBy string  `json:"-"`
}

type ListPaymentRequestsRequest struct {
	Status *string `json:"status,omitempty"`
}

// CreatePricingPackageRequest adds a purchasable credit bundle to the
// catalogue. New packages start active.
type CreatePricingPackageRequest struct {
	Name         string  `json:"name"`
	Credits      int     `json:"credits"`
	Price        float64 `json:"price"`
	DisplayOrder int     `json:"displayOrder"`
}

// UpdatePricingPackageRequest retires or revives a package.
type UpdatePricingPackageRequest struct {
	Active *bool `json:"active"`
}

// Response models

type PaymentRequestResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	CreditsRequested int        `json:"creditsRequested"`
	PricingPackageID *string    `json:"pricingPackageId,omitempty"`
	Status           string     `json:"status"`
	AdminNotes       *string    `json:"adminNotes,omitempty"`
	ProcessedBy      *string    `json:"processedBy,omitempty"`
	ProcessedAt      *time.Time `json:"processedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type PaymentRequestListResponse struct {
	Requests []PaymentRequestResponse `json:"requests"`
}

type PricingPackageResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Credits      int     `json:"credits"`
	Price        float64 `json:"price"`
	DisplayOrder int     `json:"displayOrder"`
	Active       bool    `json:"active"`
}

type PricingPackageListResponse struct {
	Packages []PricingPackageResponse `json:"packages"`
}

// Conversion helpers

func FromDomainPaymentRequest(r *domain.PaymentRequest) *PaymentRequestResponse {
	if r == nil {
		return nil
	}
	return &PaymentRequestResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		CreditsRequested: r.CreditsRequested,
		PricingPackageID: r.PricingPackageID,
		Status:           string(r.Status),
		AdminNotes:       r.AdminNotes,
		ProcessedBy:      r.ProcessedBy,
		ProcessedAt:      r.ProcessedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromDomainPaymentRequestList(requests []*domain.PaymentRequest) *PaymentRequestListResponse {
	resp := &PaymentRequestListResponse{
		Requests: make([]PaymentRequestResponse, 0, len(requests)),
	}
	for _, request := range requests {
		if requestResp := FromDomainPaymentRequest(request); requestResp != nil {
			resp.Requests = append(resp.Requests, *requestResp)
		}
	}
	return resp
}

func FromDomainPricingPackage(p *domain.PricingPackage) *PricingPackageResponse {
	if p == nil {
		return nil
	}
	return &PricingPackageResponse{
		ID:           p.ID,
		Name:         p.Name,
		Credits:      p.Credits,
		Price:        p.Price,
		DisplayOrder: p.DisplayOrder,
		Active:       p.Active,
	}
}

func FromDomainPricingPackageList(packages []*domain.PricingPackage) *PricingPackageListResponse {
	resp := &PricingPackageListResponse{
		Packages: make([]PricingPackageResponse, 0, len(packages)),
	}
	for _, pkg := range packages {
		if pkgResp := FromDomainPricingPackage(pkg); pkgResp != nil {
			resp.Packages = append(resp.Packages, *pkgResp)
		}
	}
	return resp
}

// ToDomainPaymentStatus converts a string into a validated status.
func ToDomainPaymentStatus(status string) (domain.PaymentRequestStatus, error) {
	s := domain.PaymentRequestStatus(status)

	validStatuses := []domain.PaymentRequestStatus{
		domain.PaymentStatusPending,
		domain.PaymentStatusApproved,
		domain.PaymentStatusRejected,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
