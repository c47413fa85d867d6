package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/workconnect/workconnect-core/internal/entities"
	"github.com/workconnect/workconnect-core/internal/events"
	"github.com/workconnect/workconnect-core/internal/metrics"
)

type jobsRepository interface {
	GetAllJobs(ctx context.Context) []entities.JobPost
	GetJobByID(ctx context.Context, id string) *entities.JobPost
	GetJobsByEmployer(ctx context.Context, employerID string) []entities.JobPost
	GetJobsByCategory(ctx context.Context, category string) []entities.JobPost
	SearchJobs(ctx context.Context, query string) []entities.JobPost
	GetJobCategories(ctx context.Context) []string
	CreateJobPost(ctx context.Context, job entities.JobPost) *entities.JobPost
	UpdateJobPost(ctx context.Context, id string, patch entities.JobPatch) *entities.JobPost
	DeleteJobPost(ctx context.Context, id string) bool
	ApplyForJob(ctx context.Context, application entities.JobApplication) *entities.JobApplication
	GetApplicationsByApplicant(ctx context.Context, applicantID string) []entities.JobApplication
	GetApplicationsByJob(ctx context.Context, jobID string) []entities.JobApplication
	GetApplicationsByEmployer(ctx context.Context, employerID string) []entities.JobApplication
	UpdateApplicationStatus(ctx context.Context, id string, status entities.ApplicationStatus) *entities.JobApplication
	HasUserAppliedForJob(ctx context.Context, jobID string, applicantID string) bool
	GetAllEmployers(ctx context.Context) []entities.Employer
	GetEmployerByID(ctx context.Context, id string) *entities.Employer
	CreateEmployer(ctx context.Context, employer entities.Employer) *entities.Employer
}

// JobService is the surface the rest of the application calls: a 1:1
// delegation to the job repository that centralizes logging and publishes
// domain events after successful mutations. It adds no business logic,
// validation or caching of its own.
type JobService struct {
	repo jobsRepository
	bus  EventBus.Bus
}

func NewJobService(repo jobsRepository, bus EventBus.Bus) *JobService {
	return &JobService{repo: repo, bus: bus}
}

func (s *JobService) GetAllJobs(ctx context.Context) []entities.JobPost {
	jobs := s.repo.GetAllJobs(ctx)
	log.Infof("job service: retrieved %v jobs", len(jobs))
	return jobs
}

func (s *JobService) GetJobByID(ctx context.Context, id string) *entities.JobPost {
	log.Infof("job service: fetching job %v", id)
	return s.repo.GetJobByID(ctx, id)
}

func (s *JobService) GetJobsByEmployer(ctx context.Context, employerID string) []entities.JobPost {
	jobs := s.repo.GetJobsByEmployer(ctx, employerID)
	log.Infof("job service: retrieved %v jobs for employer %v", len(jobs), employerID)
	return jobs
}

func (s *JobService) GetJobsByCategory(ctx context.Context, category string) []entities.JobPost {
	jobs := s.repo.GetJobsByCategory(ctx, category)
	log.Infof("job service: retrieved %v jobs for category %v", len(jobs), category)
	return jobs
}

func (s *JobService) SearchJobs(ctx context.Context, query string) []entities.JobPost {
	jobs := s.repo.SearchJobs(ctx, query)
	log.Infof("job service: search %q matched %v jobs", query, len(jobs))
	return jobs
}

func (s *JobService) GetJobCategories(ctx context.Context) []string {
	return s.repo.GetJobCategories(ctx)
}

func (s *JobService) CreateJobPost(ctx context.Context, job entities.JobPost) *entities.JobPost {
	created := s.repo.CreateJobPost(ctx, job)
	if created == nil {
		return nil
	}

	log.Infof("job service: created job %v", created.ID)
	metrics.JobsCreatedCounter.Inc()
	s.publish(events.JobCreatedTopic, events.JobCreated{Job: *created})
	return created
}

func (s *JobService) UpdateJobPost(ctx context.Context, id string, patch entities.JobPatch) *entities.JobPost {
	log.Infof("job service: updating job %v", id)
	return s.repo.UpdateJobPost(ctx, id, patch)
}

func (s *JobService) DeleteJobPost(ctx context.Context, id string) bool {
	log.Infof("job service: deleting job %v", id)
	return s.repo.DeleteJobPost(ctx, id)
}

func (s *JobService) ApplyForJob(ctx context.Context, application entities.JobApplication) *entities.JobApplication {
	created := s.repo.ApplyForJob(ctx, application)
	if created == nil {
		return nil
	}

	log.Infof("job service: application %v submitted for job %v", created.ID, created.JobID)
	metrics.ApplicationsSubmittedCounter.Inc()

	employerID := ""
	if job := s.repo.GetJobByID(ctx, created.JobID); job != nil {
		employerID = job.EmployerID
	}
	s.publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{
		Application: *created,
		EmployerID:  employerID,
	})
	return created
}

func (s *JobService) GetApplicationsByApplicant(ctx context.Context, applicantID string) []entities.JobApplication {
	return s.repo.GetApplicationsByApplicant(ctx, applicantID)
}

func (s *JobService) GetApplicationsByJob(ctx context.Context, jobID string) []entities.JobApplication {
	return s.repo.GetApplicationsByJob(ctx, jobID)
}

func (s *JobService) GetApplicationsByEmployer(ctx context.Context, employerID string) []entities.JobApplication {
	return s.repo.GetApplicationsByEmployer(ctx, employerID)
}

func (s *JobService) UpdateApplicationStatus(ctx context.Context, id string, status entities.ApplicationStatus) *entities.JobApplication {
	updated := s.repo.UpdateApplicationStatus(ctx, id, status)
	if updated == nil {
		return nil
	}

	log.Infof("job service: application %v is now %v", updated.ID, updated.Status)
	s.publish(events.ApplicationDecidedTopic, events.ApplicationDecided{Application: *updated})
	return updated
}

func (s *JobService) HasUserAppliedForJob(ctx context.Context, jobID string, applicantID string) bool {
	return s.repo.HasUserAppliedForJob(ctx, jobID, applicantID)
}

func (s *JobService) GetAllEmployers(ctx context.Context) []entities.Employer {
	return s.repo.GetAllEmployers(ctx)
}

func (s *JobService) GetEmployerByID(ctx context.Context, id string) *entities.Employer {
	return s.repo.GetEmployerByID(ctx, id)
}

func (s *JobService) CreateEmployer(ctx context.Context, employer entities.Employer) *entities.Employer {
	return s.repo.CreateEmployer(ctx, employer)
}

func (s *JobService) publish(topic string, event any) {
	if s.bus != nil {
		s.bus.Publish(topic, event)
	}
}
