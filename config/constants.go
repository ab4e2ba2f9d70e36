package config

const (
	REAL_ESTATE = "Real Estate"

	VENDOR_PENDING  = "pending"
	VENDOR_APPROVED = "approved"
	VENDOR_BLOCKED  = "blocked"
)
