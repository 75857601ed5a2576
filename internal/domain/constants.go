package domain

import "github.com/m04kA/SMC-SalonService/pkg/datekey"

// Closed day planning limits
const (
	MaxClosedDaySpanDays          = datekey.DefaultMaxDays
	DefaultAvailabilityWindowDays = 30
	MaxNoteLength                 = 200
)

// Appointment defaults
const (
	DefaultDuration  = "1시간"
	MaxServiceLength = 100
	MaxMemoLength    = 1000
)

// Statistics
const (
	UnknownServiceName = "기타"
	RecentVisitsLimit  = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
