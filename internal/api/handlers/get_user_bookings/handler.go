package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/api/middleware"
	bookingsService "github.com/studiofit/booking-service/internal/service/bookings"
	"github.com/studiofit/booking-service/internal/service/bookings/models"
)

const (
	msgAccessDenied  = "you can only view your own bookings"
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	actorID := middleware.UserIDFromContext(r.Context())
	if userID != actorID && !middleware.RoleFromContext(r.Context()).IsStaff() {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: actor=%s, target=%s", actorID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /users/{id}/bookings - Invalid status: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /users/{id}/bookings - Failed: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Fetched %d bookings: user_id=%s", len(result.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
