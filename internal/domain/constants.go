package domain

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// Default business hours at headquarters
const (
	DefaultHeadquartersZone = "America/New_York"
	DefaultOpenTime         = "08:00"
	DefaultCloseTime        = "22:00"
)

// DefaultAlertLeadMinutes is how far ahead upcoming appointments are reported.
const DefaultAlertLeadMinutes = 15

// DefaultAppointmentHours is the default length of a new appointment.
const DefaultAppointmentHours = 1

// MaxTextFieldLength is the storage limit, in characters, of title, description and location.
const MaxTextFieldLength = 50
