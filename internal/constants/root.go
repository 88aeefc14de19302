package constants

const (
	AppName = "vigor"

	// DefaultConfigPath is the default location of the sqlite database.
	DefaultConfigPath = "~/.config/vigor/vigor.db"

	// DefaultKeyringUser is the keyring account name used for stored secrets.
	DefaultKeyringUser = "vigor-default"

	// SetupFlowKey is the onboarding flow that gates the first reminder pass.
	SetupFlowKey = "setup"
)

// Tray application integration (local notification delivery).
const (
	TrayAppIdentifier      = "vigor-tray"
	NotifierLockfileName   = "vigor-tray.lock"
	NotifierScheduleName   = "vigor-tray.schedule"
	NotificationDurationMs = 8000
)
