package domain

// Business timezone: Waktu Indonesia Barat
const (
	BusinessTimezone     = "Asia/Jakarta"
	BusinessTimezoneAbbr = "WIB"
)

// BusinessSlots is the fixed set of offerable slot labels per day
var BusinessSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

// Business validation constants
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 1000
	MaxMessageLength     = 1000
	MaxSelectionSize     = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	SlotFormat = "03:04 PM"   // label format of BusinessSlots
)
