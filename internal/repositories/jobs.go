package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/workconnect/workconnect-core/internal/entities"
	"github.com/workconnect/workconnect-core/internal/logger"
	"github.com/workconnect/workconnect-core/internal/store"
)

type jobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Jobs owns the in-memory job, application and employer collections and
// bridges them to their store keys. The in-memory collections are
// authoritative; the store holds serialized snapshots. Every mutation
// re-serializes all three collections; a failed write is logged and masked,
// leaving the in-memory state ahead of the persisted one.
type Jobs struct {
	mu           sync.RWMutex
	store        jobStore
	jobs         []entities.JobPost
	applications []entities.JobApplication
	employers    []entities.Employer
}

func NewJobsRepository(ctx context.Context, kv jobStore) *Jobs {
	repo := &Jobs{store: kv}
	repo.load(ctx)
	repo.seed(ctx)
	return repo
}

func (repo *Jobs) load(ctx context.Context) {
	loadCollection(ctx, repo.store, store.KeyJobs, &repo.jobs)
	loadCollection(ctx, repo.store, store.KeyApplications, &repo.applications)
	loadCollection(ctx, repo.store, store.KeyEmployers, &repo.employers)
	log.Infof("job repository: loaded %v jobs, %v applications, %v employers",
		len(repo.jobs), len(repo.applications), len(repo.employers))
}

// loadCollection degrades any read or parse failure to "start empty".
func loadCollection[T any](ctx context.Context, kv jobStore, key string, out *[]T) {
	data, err := kv.Get(ctx, key)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to load %v: %v", key, err)
		return
	}
	if data == nil {
		return
	}
	if err = json.Unmarshal(data, out); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to parse %v: %v", key, err)
		*out = nil
	}
}

func (repo *Jobs) seed(ctx context.Context) {
	if len(repo.jobs) > 0 {
		return
	}

	now := nowISO()
	repo.jobs = []entities.JobPost{
		{
			ID:            "job-1",
			Title:         "Frontend Developer",
			Description:   "We are looking for a skilled frontend developer to join our team.",
			Location:      "New York, NY",
			Salary:        "$80,000 - $120,000",
			Duration:      "Full-time",
			Skills:        []string{"React", "TypeScript", "CSS", "HTML"},
			WorkType:      entities.FullTime,
			Urgency:       entities.UrgencyNormal,
			Status:        entities.JobActive,
			EmployerID:    "emp-1",
			EmployerName:  "Tech Corp",
			EmployerEmail: "hr@techcorp.com",
			EmployerPhone: "+1-555-0123",
			CreatedAt:     now,
			UpdatedAt:     now,
			Company:       "Tech Corp",
			Category:      "Technology",
			Experience:    "3-5 years",
			PostedDate:    now,
		},
		{
			ID:            "job-2",
			Title:         "Construction Worker",
			Description:   "Experienced construction worker needed for commercial project.",
			Location:      "Los Angeles, CA",
			Salary:        "$25 - $35/hour",
			Duration:      "6 months",
			Skills:        []string{"Construction", "Safety", "Teamwork"},
			WorkType:      entities.Contract,
			Urgency:       entities.UrgencyHigh,
			Status:        entities.JobActive,
			EmployerID:    "emp-2",
			EmployerName:  "BuildCo",
			EmployerEmail: "jobs@buildco.com",
			EmployerPhone: "+1-555-0456",
			CreatedAt:     now,
			UpdatedAt:     now,
			Company:       "BuildCo",
			Category:      "Construction",
			Experience:    "2+ years",
			PostedDate:    now,
		},
	}
	repo.save(ctx)
	log.Info("job repository: initialized with sample data")
}

// save re-serializes all three collections. Write failures are logged and
// masked; the in-memory state is not rolled back. The keys are written
// independently, so a crash mid-save can leave them inconsistent — a known
// property of the persisted layout.
func (repo *Jobs) save(ctx context.Context) {
	saveCollection(ctx, repo.store, store.KeyJobs, repo.jobs)
	saveCollection(ctx, repo.store, store.KeyApplications, repo.applications)
	saveCollection(ctx, repo.store, store.KeyEmployers, repo.employers)
}

func saveCollection[T any](ctx context.Context, kv jobStore, key string, in []T) {
	if in == nil {
		in = []T{}
	}
	data, err := json.Marshal(in)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to serialize %v: %v", key, err)
		return
	}
	if err = kv.Set(ctx, key, data); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to save %v: %v", key, err)
	}
}

// GetAllJobs returns active jobs in insertion order.
func (repo *Jobs) GetAllJobs(ctx context.Context) []entities.JobPost {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return lo.Filter(repo.jobs, func(job entities.JobPost, _ int) bool {
		return job.Status == entities.JobActive
	})
}

func (repo *Jobs) GetJobByID(ctx context.Context, id string) *entities.JobPost {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, job := range repo.jobs {
		if job.ID == id {
			found := job
			return &found
		}
	}
	return nil
}

func (repo *Jobs) GetJobsByEmployer(ctx context.Context, employerID string) []entities.JobPost {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return lo.Filter(repo.jobs, func(job entities.JobPost, _ int) bool {
		return job.EmployerID == employerID
	})
}

// GetJobsByCategory matches the category field or any skill,
// case-insensitively, by substring.
func (repo *Jobs) GetJobsByCategory(ctx context.Context, category string) []entities.JobPost {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	needle := strings.ToLower(category)
	return lo.Filter(repo.jobs, func(job entities.JobPost, _ int) bool {
		if strings.Contains(strings.ToLower(job.Category), needle) {
			return true
		}
		return lo.SomeBy(job.Skills, func(skill string) bool {
			return strings.Contains(strings.ToLower(skill), needle)
		})
	})
}

func (repo *Jobs) SearchJobs(ctx context.Context, query string) []entities.JobPost {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	needle := strings.ToLower(query)
	return lo.Filter(repo.jobs, func(job entities.JobPost, _ int) bool {
		if strings.Contains(strings.ToLower(job.Title), needle) ||
			strings.Contains(strings.ToLower(job.Location), needle) ||
			strings.Contains(strings.ToLower(job.Description), needle) {
			return true
		}
		return lo.SomeBy(job.Skills, func(skill string) bool {
			return strings.Contains(strings.ToLower(skill), needle)
		})
	})
}

// GetJobCategories returns the distinct skills across all jobs, in first-seen
// order.
func (repo *Jobs) GetJobCategories(ctx context.Context) []string {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return lo.Uniq(lo.FlatMap(repo.jobs, func(job entities.JobPost, _ int) []string {
		return job.Skills
	}))
}

func (repo *Jobs) CreateJobPost(ctx context.Context, job entities.JobPost) *entities.JobPost {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := nowISO()
	job.ID = timestampID("job-")
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Status == "" {
		job.Status = entities.JobActive
	}

	repo.jobs = append(repo.jobs, job)
	repo.save(ctx)
	return &job
}

func (repo *Jobs) UpdateJobPost(ctx context.Context, id string, patch entities.JobPatch) *entities.JobPost {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.jobs {
		if repo.jobs[i].ID != id {
			continue
		}
		patch.Apply(&repo.jobs[i])
		repo.jobs[i].UpdatedAt = nowISO()
		repo.save(ctx)
		updated := repo.jobs[i]
		return &updated
	}
	return nil
}

func (repo *Jobs) DeleteJobPost(ctx context.Context, id string) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.jobs {
		if repo.jobs[i].ID != id {
			continue
		}
		repo.jobs = append(repo.jobs[:i], repo.jobs[i+1:]...)
		repo.save(ctx)
		return true
	}
	return false
}

// ApplyForJob records an application. Nothing prevents the same applicant
// from applying to the same job twice; callers gate on HasUserAppliedForJob,
// and two overlapping calls can still both pass that check.
func (repo *Jobs) ApplyForJob(ctx context.Context, application entities.JobApplication) *entities.JobApplication {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	application.ID = timestampID("app-")
	application.AppliedDate = nowISO()
	if application.Status == "" {
		application.Status = entities.ApplicationPending
	}

	repo.applications = append(repo.applications, application)
	repo.save(ctx)
	return &application
}

func (repo *Jobs) GetApplicationsByApplicant(ctx context.Context, applicantID string) []entities.JobApplication {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return lo.Filter(repo.applications, func(app entities.JobApplication, _ int) bool {
		return app.ApplicantID == applicantID
	})
}

func (repo *Jobs) GetApplicationsByJob(ctx context.Context, jobID string) []entities.JobApplication {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return lo.Filter(repo.applications, func(app entities.JobApplication, _ int) bool {
		return app.JobID == jobID
	})
}

// GetApplicationsByEmployer joins in two steps: collect the employer's job
// ids, then filter applications against that set.
func (repo *Jobs) GetApplicationsByEmployer(ctx context.Context, employerID string) []entities.JobApplication {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	jobIDs := map[string]struct{}{}
	for _, job := range repo.jobs {
		if job.EmployerID == employerID {
			jobIDs[job.ID] = struct{}{}
		}
	}

	return lo.Filter(repo.applications, func(app entities.JobApplication, _ int) bool {
		_, ok := jobIDs[app.JobID]
		return ok
	})
}

// UpdateApplicationStatus sets the status field only; every other field of
// the application is left untouched.
func (repo *Jobs) UpdateApplicationStatus(ctx context.Context, id string, status entities.ApplicationStatus) *entities.JobApplication {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.applications {
		if repo.applications[i].ID != id {
			continue
		}
		repo.applications[i].Status = status
		repo.save(ctx)
		updated := repo.applications[i]
		return &updated
	}
	return nil
}

func (repo *Jobs) HasUserAppliedForJob(ctx context.Context, jobID string, applicantID string) bool {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return lo.SomeBy(repo.applications, func(app entities.JobApplication) bool {
		return app.JobID == jobID && app.ApplicantID == applicantID
	})
}

func (repo *Jobs) GetAllEmployers(ctx context.Context) []entities.Employer {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return append([]entities.Employer{}, repo.employers...)
}

func (repo *Jobs) GetEmployerByID(ctx context.Context, id string) *entities.Employer {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, employer := range repo.employers {
		if employer.ID == id {
			found := employer
			return &found
		}
	}
	return nil
}

// CreateEmployer has no UI-reachable caller but stays part of the public
// surface; the simple_employers key is populated through it alone.
func (repo *Jobs) CreateEmployer(ctx context.Context, employer entities.Employer) *entities.Employer {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	employer.ID = timestampID("emp-")
	repo.employers = append(repo.employers, employer)
	repo.save(ctx)
	return &employer
}
