package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinCapacity = 1
	MaxCapacity = 200

	MinDayOfWeek = 0
	MaxDayOfWeek = 6

	MaxPolicyValueHours = 720 // 30 days
	MaxPolicyValueDays  = 30

	MaxAdminNotesLength = 500

	MinCreditsPerRequest = 1
	MaxCreditsPerRequest = 500
)

// SettingKeyCancellationPolicy is the app_settings key holding the
// studio-wide cancellation policy.
const SettingKeyCancellationPolicy = "cancellation_policy"

// InactiveStatuses lists statuses excluded from seat counting and
// default listings.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
