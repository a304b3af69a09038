package constants

// NATS Subjects
const (
	// Inbound traffic
	SubjectMessageInbound = "telegram.message.inbound"

	// Tenant lifecycle
	SubjectTenantAuthorized = "telegram.tenant.authorized"
	SubjectTenantLoggedOut  = "telegram.tenant.loggedout"
)
