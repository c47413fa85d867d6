package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workconnect/workconnect-core/internal/entities"
	"github.com/workconnect/workconnect-core/internal/store"
)

// failingKV accepts reads but rejects every write.
type failingKV struct {
	inner *store.Memory
}

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	return f.inner.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func Test_JobsRepository_SeedsSampleJobsOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	jobs := repo.GetAllJobs(ctx)
	require.Len(t, jobs, 2)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, "Frontend Developer", jobs[0].Title)
	assert.Equal(t, "job-2", jobs[1].ID)
	assert.Equal(t, "BuildCo", jobs[1].EmployerName)
}

func Test_JobsRepository_DoesNotReseedExistingData(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	first := NewJobsRepository(ctx, kv)
	created := first.CreateJobPost(ctx, entities.JobPost{Title: "Welder", EmployerID: "emp-9"})

	second := NewJobsRepository(ctx, kv)
	jobs := second.GetAllJobs(ctx)
	assert.Len(t, jobs, 3)
	assert.NotNil(t, second.GetJobByID(ctx, created.ID))
}

func Test_JobsRepository_StartsEmptyOnCorruptData(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, store.KeyJobs, []byte("{not json")))

	repo := NewJobsRepository(ctx, kv)

	// corrupt data degrades to the empty state, which then gets reseeded
	jobs := repo.GetAllJobs(ctx)
	assert.Len(t, jobs, 2)
}

func Test_JobsRepository_RapidCreationsGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	ids := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		created := repo.CreateJobPost(ctx, entities.JobPost{Title: fmt.Sprintf("Job %v", i)})
		ids = append(ids, created.ID)
	}

	assert.Len(t, lo.Uniq(ids), 50)
}

func Test_JobsRepository_GetAllJobsReturnsActiveOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	paused := repo.CreateJobPost(ctx, entities.JobPost{Title: "Paused Job", Status: entities.JobPaused})
	active := repo.CreateJobPost(ctx, entities.JobPost{Title: "Active Job"})

	jobs := repo.GetAllJobs(ctx)
	ids := lo.Map(jobs, func(j entities.JobPost, _ int) string { return j.ID })
	assert.Contains(t, ids, active.ID)
	assert.NotContains(t, ids, paused.ID)

	// the paused job is still reachable by id
	assert.NotNil(t, repo.GetJobByID(ctx, paused.ID))
}

func Test_JobsRepository_CreateDefaultsStatusAndTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	created := repo.CreateJobPost(ctx, entities.JobPost{Title: "Welder"})
	assert.Equal(t, entities.JobActive, created.Status)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Regexp(t, `^job-\d+$`, created.ID)
}

func Test_JobsRepository_UpdateAppliesPatchAndRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	updated := repo.UpdateJobPost(ctx, "job-1", entities.JobPatch{
		Title:  lo.ToPtr("Senior Frontend Developer"),
		Status: lo.ToPtr(entities.JobCompleted),
	})
	require.NotNil(t, updated)
	assert.Equal(t, "Senior Frontend Developer", updated.Title)
	assert.Equal(t, entities.JobCompleted, updated.Status)
	assert.Equal(t, "New York, NY", updated.Location)
}

func Test_JobsRepository_UpdateUnknownJobReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	assert.Nil(t, repo.UpdateJobPost(ctx, "job-999", entities.JobPatch{Title: lo.ToPtr("x")}))
}

func Test_JobsRepository_DeleteRemovesJob(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	assert.True(t, repo.DeleteJobPost(ctx, "job-1"))
	assert.Nil(t, repo.GetJobByID(ctx, "job-1"))
	assert.False(t, repo.DeleteJobPost(ctx, "job-1"))
}

func Test_JobsRepository_SearchMatchesTitleLocationDescriptionSkills(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	byTitle := repo.SearchJobs(ctx, "frontend")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "job-1", byTitle[0].ID)

	bySkill := repo.SearchJobs(ctx, "typescript")
	require.Len(t, bySkill, 1)
	assert.Equal(t, "job-1", bySkill[0].ID)

	byLocation := repo.SearchJobs(ctx, "los angeles")
	require.Len(t, byLocation, 1)
	assert.Equal(t, "job-2", byLocation[0].ID)

	assert.Empty(t, repo.SearchJobs(ctx, "plumbing"))
}

func Test_JobsRepository_CategoryMatchesCategoryFieldOrSkills(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	byField := repo.GetJobsByCategory(ctx, "construction")
	require.Len(t, byField, 1)
	assert.Equal(t, "job-2", byField[0].ID)

	bySkill := repo.GetJobsByCategory(ctx, "react")
	require.Len(t, bySkill, 1)
	assert.Equal(t, "job-1", bySkill[0].ID)
}

func Test_JobsRepository_CategoriesAreDistinctSkills(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())
	repo.CreateJobPost(ctx, entities.JobPost{Title: "Another", Skills: []string{"React", "Go"}})

	categories := repo.GetJobCategories(ctx)
	assert.Equal(t, lo.Uniq(categories), categories)
	assert.Contains(t, categories, "React")
	assert.Contains(t, categories, "Go")
	assert.Contains(t, categories, "Safety")
}

func Test_JobsRepository_ApplyAndQueryApplications(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	assert.False(t, repo.HasUserAppliedForJob(ctx, "job-1", "test-worker-1"))

	created := repo.ApplyForJob(ctx, entities.JobApplication{
		JobID:         "job-1",
		JobTitle:      "Frontend Developer",
		ApplicantID:   "test-worker-1",
		ApplicantName: "John Worker",
	})
	assert.Regexp(t, `^app-\d+$`, created.ID)
	assert.Equal(t, entities.ApplicationPending, created.Status)
	assert.NotEmpty(t, created.AppliedDate)

	assert.True(t, repo.HasUserAppliedForJob(ctx, "job-1", "test-worker-1"))
	assert.False(t, repo.HasUserAppliedForJob(ctx, "job-2", "test-worker-1"))

	byApplicant := repo.GetApplicationsByApplicant(ctx, "test-worker-1")
	require.Len(t, byApplicant, 1)

	byJob := repo.GetApplicationsByJob(ctx, "job-1")
	require.Len(t, byJob, 1)
	assert.Equal(t, created.ID, byJob[0].ID)

	// job-1 belongs to emp-1
	byEmployer := repo.GetApplicationsByEmployer(ctx, "emp-1")
	require.Len(t, byEmployer, 1)
	assert.Empty(t, repo.GetApplicationsByEmployer(ctx, "emp-2"))
}

func Test_JobsRepository_UpdateApplicationStatusChangesStatusOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	created := repo.ApplyForJob(ctx, entities.JobApplication{
		JobID:       "job-1",
		ApplicantID: "test-worker-1",
		Message:     "I can start monday",
	})

	updated := repo.UpdateApplicationStatus(ctx, created.ID, entities.ApplicationAccepted)
	require.NotNil(t, updated)
	assert.Equal(t, entities.ApplicationAccepted, updated.Status)
	assert.Equal(t, created.Message, updated.Message)
	assert.Equal(t, created.AppliedDate, updated.AppliedDate)

	assert.Nil(t, repo.UpdateApplicationStatus(ctx, "app-999", entities.ApplicationRejected))
}

func Test_JobsRepository_Employers(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, store.NewMemory())

	assert.Empty(t, repo.GetAllEmployers(ctx))

	created := repo.CreateEmployer(ctx, entities.Employer{Name: "BuildCo", Email: "jobs@buildco.com"})
	assert.Regexp(t, `^emp-\d+$`, created.ID)

	found := repo.GetEmployerByID(ctx, created.ID)
	require.NotNil(t, found)
	assert.Equal(t, "BuildCo", found.Name)
	assert.Nil(t, repo.GetEmployerByID(ctx, "emp-999"))
}

func Test_JobsRepository_StateSurvivesRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	first := NewJobsRepository(ctx, kv)
	job := first.CreateJobPost(ctx, entities.JobPost{
		Title:    "Welder",
		Skills:   []string{"Welding", "Safety"},
		WorkType: entities.Contract,
		Urgency:  entities.UrgencyUrgent,
	})
	app := first.ApplyForJob(ctx, entities.JobApplication{JobID: job.ID, ApplicantID: "test-worker-1"})
	emp := first.CreateEmployer(ctx, entities.Employer{Name: "WeldCo"})

	second := NewJobsRepository(ctx, kv)
	assert.Equal(t, job, second.GetJobByID(ctx, job.ID))
	apps := second.GetApplicationsByJob(ctx, job.ID)
	require.Len(t, apps, 1)
	assert.Equal(t, *app, apps[0])
	assert.Equal(t, emp, second.GetEmployerByID(ctx, emp.ID))
}

func Test_JobsRepository_MutationsSucceedWhenStoreRejectsWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewJobsRepository(ctx, &failingKV{inner: store.NewMemory()})

	created := repo.CreateJobPost(ctx, entities.JobPost{Title: "Welder"})
	require.NotNil(t, created)
	assert.NotNil(t, repo.GetJobByID(ctx, created.ID))
	assert.True(t, repo.DeleteJobPost(ctx, created.ID))
}
