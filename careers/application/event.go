package application

import "github.com/Abraxas-365/careersync/pkg/kernel"

// Event types emitted on application changes. They double as broker routing keys.
const (
	EventCreated = "application.created"
	EventUpdated = "application.updated"
	EventDeleted = "application.deleted"
)

// DeletedPayload is the body of EventDeleted
type DeletedPayload struct {
	ID kernel.ApplicationID `json:"id"`
}
