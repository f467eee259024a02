package db

// Site asset types, keyed by the site_assets primary key.
const (
	AssetTypeLogo    = "logo"
	AssetTypeFavicon = "favicon"
)

// SettingsRowID is the fixed primary key of the site_settings
// singleton row.
const SettingsRowID = "default"

// Payment statuses.
const (
	PaymentStatusReceived = "received"
)
