package constants

// Redis key formats
const (
	KeyDeliveryOutcome = "delivery:last:%s" // Format: delivery:last:{tenant_id}
)
