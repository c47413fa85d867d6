package entities

import "fmt"

type WorkType string

const (
	FullTime  WorkType = "full-time"
	PartTime  WorkType = "part-time"
	Contract  WorkType = "contract"
	Freelance WorkType = "freelance"
)

func ToWorkType(s string) (WorkType, error) {
	switch s {
	case string(FullTime):
		return FullTime, nil
	case string(PartTime):
		return PartTime, nil
	case string(Contract):
		return Contract, nil
	case string(Freelance):
		return Freelance, nil
	default:
		return "", fmt.Errorf("invalid work type: %v", s)
	}
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

func ToUrgency(s string) (Urgency, error) {
	switch s {
	case string(UrgencyLow):
		return UrgencyLow, nil
	case string(UrgencyNormal):
		return UrgencyNormal, nil
	case string(UrgencyHigh):
		return UrgencyHigh, nil
	case string(UrgencyUrgent):
		return UrgencyUrgent, nil
	default:
		return "", fmt.Errorf("invalid urgency: %v", s)
	}
}

type JobStatus string

const (
	JobActive    JobStatus = "active"
	JobPaused    JobStatus = "paused"
	JobCompleted JobStatus = "completed"
	JobCancelled JobStatus = "cancelled"
)

func ToJobStatus(s string) (JobStatus, error) {
	switch s {
	case string(JobActive):
		return JobActive, nil
	case string(JobPaused):
		return JobPaused, nil
	case string(JobCompleted):
		return JobCompleted, nil
	case string(JobCancelled):
		return JobCancelled, nil
	default:
		return "", fmt.Errorf("invalid job status: %v", s)
	}
}

// JobPost mirrors the JSON shape persisted under the simple_jobs key.
// Field tags must stay camelCase so existing persisted data keeps parsing.
type JobPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Salary        string    `json:"salary"`
	Duration      string    `json:"duration"`
	Skills        []string  `json:"skills"`
	WorkType      WorkType  `json:"workType"`
	Urgency       Urgency   `json:"urgency"`
	Status        JobStatus `json:"status"`
	EmployerID    string    `json:"employerId"`
	EmployerName  string    `json:"employerName"`
	EmployerEmail string    `json:"employerEmail"`
	EmployerPhone string    `json:"employerPhone,omitempty"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     string    `json:"updatedAt"`
	Company       string    `json:"company,omitempty"`
	CompanyLogo   string    `json:"companyLogo,omitempty"`
	Category      string    `json:"category,omitempty"`
	Pay           string    `json:"pay,omitempty"`
	Urgent        bool      `json:"urgent,omitempty"`
	Requirements  []string  `json:"requirements,omitempty"`
	Benefits      []string  `json:"benefits,omitempty"`
	Experience    string    `json:"experience,omitempty"`
	JobType       WorkType  `json:"jobType,omitempty"`
	PostedDate    string    `json:"postedDate,omitempty"`
	Deadline      string    `json:"deadline,omitempty"`
}

// JobPatch is a typed partial update for a JobPost. Nil fields are left
// untouched by Apply; identity and timestamps are not patchable.
type JobPatch struct {
	Title         *string
	Description   *string
	Location      *string
	Salary        *string
	Duration      *string
	Skills        *[]string
	WorkType      *WorkType
	Urgency       *Urgency
	Status        *JobStatus
	EmployerPhone *string
	Image         *string
	Company       *string
	CompanyLogo   *string
	Category      *string
	Pay           *string
	Urgent        *bool
	Requirements  *[]string
	Benefits      *[]string
	Experience    *string
	JobType       *WorkType
	PostedDate    *string
	Deadline      *string
}

func (p JobPatch) Apply(job *JobPost) {
	if p.Title != nil {
		job.Title = *p.Title
	}
	if p.Description != nil {
		job.Description = *p.Description
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
	if p.Salary != nil {
		job.Salary = *p.Salary
	}
	if p.Duration != nil {
		job.Duration = *p.Duration
	}
	if p.Skills != nil {
		job.Skills = *p.Skills
	}
	if p.WorkType != nil {
		job.WorkType = *p.WorkType
	}
	if p.Urgency != nil {
		job.Urgency = *p.Urgency
	}
	if p.Status != nil {
		job.Status = *p.Status
	}
	if p.EmployerPhone != nil {
		job.EmployerPhone = *p.EmployerPhone
	}
	if p.Image != nil {
		job.Image = *p.Image
	}
	if p.Company != nil {
		job.Company = *p.Company
	}
	if p.CompanyLogo != nil {
		job.CompanyLogo = *p.CompanyLogo
	}
	if p.Category != nil {
		job.Category = *p.Category
	}
	if p.Pay != nil {
		job.Pay = *p.Pay
	}
	if p.Urgent != nil {
		job.Urgent = *p.Urgent
	}
	if p.Requirements != nil {
		job.Requirements = *p.Requirements
	}
	if p.Benefits != nil {
		job.Benefits = *p.Benefits
	}
	if p.Experience != nil {
		job.Experience = *p.Experience
	}
	if p.JobType != nil {
		job.JobType = *p.JobType
	}
	if p.PostedDate != nil {
		job.PostedDate = *p.PostedDate
	}
	if p.Deadline != nil {
		job.Deadline = *p.Deadline
	}
}
