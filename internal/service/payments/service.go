package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/studiofit/booking-service/internal/domain"
	paymentRepo "github.com/studiofit/booking-service/internal/infra/storage/paymentrequest"
	pricingRepo "github.com/studiofit/booking-service/internal/infra/storage/pricing"
	profileRepo "github.com/studiofit/booking-service/internal/infra/storage/profile"
	"github.com/studiofit/booking-service/internal/service/payments/models"
)

// Service handles credit top-up requests. Members file requests,
// staff approve or reject them; approval grants the credits in the
// same transaction that closes the request, so a request can never
// pay out twice.
type Service struct {
	paymentRepo PaymentRequestRepository
	profileRepo ProfileRepository
	pricingRepo PricingRepository
	txManager   TransactionManager
	logger      Logger
}

func NewService(
	paymentRepo PaymentRequestRepository,
	profileRepo ProfileRepository,
	pricingRepo PricingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		profileRepo: profileRepo,
		pricingRepo: pricingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateRequest files a pending top-up request. When a pricing package
// is referenced the credit amount is taken from the package, not the
// client payload.
func (s *Service) CreateRequest(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentRequestResponse, error) {
	s.logger.Info("CreateRequest: user=%s requesting %d credits", req.UserID, req.CreditsRequested)

	if _, err := s.profileRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("CreateRequest: profile id=%s not found", req.UserID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("CreateRequest: profile lookup error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateRequest - repository error: %v", ErrInternal, err)
	}

	credits := req.CreditsRequested
	if req.PricingPackageID != nil {
		pkg, err := s.pricingRepo.GetByID(ctx, *req.PricingPackageID)
		if err != nil {
			if errors.Is(err, pricingRepo.ErrPackageNotFound) {
				s.logger.Warn("CreateRequest: package id=%s not found", *req.PricingPackageID)
				return nil, ErrPackageNotFound
			}
			s.logger.Error("CreateRequest: package lookup error: %v", err)
			return nil, fmt.Errorf("%w: CreateRequest - repository error: %v", ErrInternal, err)
		}
		if !pkg.Active {
			s.logger.Warn("CreateRequest: package id=%s is retired", pkg.ID)
			return nil, ErrPackageNotFound
		}
		credits = pkg.Credits
	}

	if credits < domain.MinCreditsPerRequest || credits > domain.MaxCreditsPerRequest {
		s.logger.Warn("CreateRequest: credit amount %d out of range for user=%s", credits, req.UserID)
		return nil, fmt.Errorf("%w: credits must be between %d and %d",
			ErrInvalidInput, domain.MinCreditsPerRequest, domain.MaxCreditsPerRequest)
	}

	created, err := s.paymentRepo.Create(ctx, &domain.PaymentRequest{
		UserID:           req.UserID,
		CreditsRequested: credits,
		PricingPackageID: req.PricingPackageID,
	})
	if err != nil {
		s.logger.Error("CreateRequest: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateRequest - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRequest: created request id=%s for user=%s", created.ID, created.UserID)
	return models.FromDomainPaymentRequest(created), nil
}

// ListRequests returns requests for staff review, optionally filtered
// by status.
func (s *Service) ListRequests(ctx context.Context, req *models.ListPaymentRequestsRequest) (*models.PaymentRequestListResponse, error) {
	s.logger.Info("ListRequests: fetching requests status=%v", req.Status)

	var domainStatus *domain.PaymentRequestStatus
	if req.Status != nil {
		status, err := models.ToDomainPaymentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListRequests: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	requests, err := s.paymentRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("ListRequests: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRequests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRequests: fetched %d requests", len(requests))
	return models.FromDomainPaymentRequestList(requests), nil
}

// ProcessRequest closes a pending request. Approval grants the credits
// inside the same transaction; rejection only records the decision.
func (s *Service) ProcessRequest(ctx context.Context, requestID string, req *models.ProcessPaymentRequest) (*models.PaymentRequestResponse, error) {
	s.logger.Info("ProcessRequest: processing request id=%s approve=%t by user=%s", requestID, req.Approve, req.ProcessedBy)

	if req.AdminNotes != nil && len(*req.AdminNotes) > domain.MaxAdminNotesLength {
		s.logger.Warn("ProcessRequest: notes too long for request id=%s", requestID)
		return nil, fmt.Errorf("%w: admin notes exceed %d characters", ErrInvalidInput, domain.MaxAdminNotesLength)
	}

	status := domain.PaymentStatusRejected
	if req.Approve {
		status = domain.PaymentStatusApproved
	}

	var processed *domain.PaymentRequest
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.paymentRepo.MarkProcessed(ctx, requestID, status, req.ProcessedBy, req.AdminNotes)
		if err != nil {
			return err
		}

		if req.Approve {
			if err := s.profileRepo.AddCredits(ctx, request.UserID, request.CreditsRequested); err != nil {
				return err
			}
		}

		processed = request
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentRepo.ErrRequestNotFound):
			s.logger.Warn("ProcessRequest: request id=%s not found", requestID)
			return nil, ErrRequestNotFound
		case errors.Is(err, paymentRepo.ErrAlreadyProcessed):
			s.logger.Warn("ProcessRequest: request id=%s already processed", requestID)
			return nil, ErrAlreadyProcessed
		case errors.Is(err, profileRepo.ErrProfileNotFound):
			s.logger.Warn("ProcessRequest: profile missing for request id=%s", requestID)
			return nil, ErrProfileNotFound
		default:
			s.logger.Error("ProcessRequest: transaction error for request id=%s: %v", requestID, err)
			return nil, fmt.Errorf("%w: ProcessRequest - transaction error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("ProcessRequest: request id=%s now %s", processed.ID, processed.Status)
	return models.FromDomainPaymentRequest(processed), nil
}

// CreatePricingPackage adds a package to the catalogue. Staff only.
func (s *Service) CreatePricingPackage(ctx context.Context, req *models.CreatePricingPackageRequest) (*models.PricingPackageResponse, error) {
	s.logger.Info("CreatePricingPackage: name=%q credits=%d price=%.2f", req.Name, req.Credits, req.Price)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Credits < domain.MinCreditsPerRequest || req.Credits > domain.MaxCreditsPerRequest {
		return nil, fmt.Errorf("%w: credits must be between %d and %d",
			ErrInvalidInput, domain.MinCreditsPerRequest, domain.MaxCreditsPerRequest)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	created, err := s.pricingRepo.Create(ctx, &domain.PricingPackage{
		Name:         req.Name,
		Credits:      req.Credits,
		Price:        req.Price,
		DisplayOrder: req.DisplayOrder,
		Active:       true,
	})
	if err != nil {
		s.logger.Error("CreatePricingPackage: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePricingPackage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePricingPackage: created package id=%s", created.ID)
	return models.FromDomainPricingPackage(created), nil
}

// SetPricingPackageActive retires or revives a package. Retired
// packages disappear from the public catalogue but keep their rows, so
// historical payment requests stay resolvable.
func (s *Service) SetPricingPackageActive(ctx context.Context, packageID string, req *models.UpdatePricingPackageRequest) (*models.PricingPackageResponse, error) {
	s.logger.Info("SetPricingPackageActive: package id=%s", packageID)

	if req.Active == nil {
		return nil, fmt.Errorf("%w: active is required", ErrInvalidInput)
	}

	updated, err := s.pricingRepo.SetActive(ctx, packageID, *req.Active)
	if err != nil {
		if errors.Is(err, pricingRepo.ErrPackageNotFound) {
			s.logger.Warn("SetPricingPackageActive: package id=%s not found", packageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("SetPricingPackageActive: repository error for package id=%s: %v", packageID, err)
		return nil, fmt.Errorf("%w: SetPricingPackageActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetPricingPackageActive: package id=%s active=%t", updated.ID, updated.Active)
	return models.FromDomainPricingPackage(updated), nil
}

// ListPricingPackages returns the purchasable package catalogue in
// display order.
func (s *Service) ListPricingPackages(ctx context.Context) (*models.PricingPackageListResponse, error) {
	s.logger.Info("ListPricingPackages: fetching active packages")

	packages, err := s.pricingRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListPricingPackages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPricingPackages - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPricingPackageList(packages), nil
}
