package events

import "github.com/workconnect/workconnect-core/internal/entities"

var (
	JobCreatedTopic           = "JobCreatedEvent"
	ApplicationSubmittedTopic = "ApplicationSubmittedEvent"
	ApplicationDecidedTopic   = "ApplicationDecidedEvent"
	UserRegisteredTopic       = "UserRegisteredEvent"
)

type JobCreated struct {
	Job entities.JobPost
}

// EmployerID is resolved from the job at publish time so subscribers do not
// have to join against the jobs collection.
type ApplicationSubmitted struct {
	Application entities.JobApplication
	EmployerID  string
}

type ApplicationDecided struct {
	Application entities.JobApplication
}

type UserRegistered struct {
	User entities.User
}
