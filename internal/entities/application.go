package entities

import "fmt"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	switch s {
	case string(ApplicationPending):
		return ApplicationPending, nil
	case string(ApplicationAccepted):
		return ApplicationAccepted, nil
	case string(ApplicationRejected):
		return ApplicationRejected, nil
	default:
		return "", fmt.Errorf("invalid application status: %v", s)
	}
}

// JobApplication mirrors the JSON shape persisted under the
// simple_applications key. JobTitle is a denormalized copy taken at apply
// time and is not kept in sync with the job afterwards.
type JobApplication struct {
	ID                  string            `json:"id"`
	JobID               string            `json:"jobId"`
	JobTitle            string            `json:"jobTitle"`
	ApplicantID         string            `json:"applicantId"`
	ApplicantName       string            `json:"applicantName"`
	ApplicantEmail      string            `json:"applicantEmail"`
	ApplicantPhone      string            `json:"applicantPhone"`
	ApplicantSkills     string            `json:"applicantSkills"`
	ApplicantExperience string            `json:"applicantExperience"`
	ApplicantImage      string            `json:"applicantImage,omitempty"`
	Status              ApplicationStatus `json:"status"`
	AppliedDate         string            `json:"appliedDate"`
	Message             string            `json:"message,omitempty"`
}
