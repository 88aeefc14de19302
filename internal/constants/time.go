package constants

const (
	// TimeFormat is the standard time-of-day format (HH:MM, 24h clock)
	TimeFormat = "15:04"

	// DateFormat is the standard calendar-date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)
