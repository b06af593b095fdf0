package routes

const (
	// Health
	Health = "/health"

	// Plugin endpoints (API-key gated)
	PropertiesBulk = "/properties/bulk"
	FileTemp       = "/file/temp"
	Me             = "/me"
)
