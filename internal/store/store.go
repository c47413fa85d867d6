package store

import "context"

// Fixed keys of the persisted layout. These are a compatibility contract:
// a database written by any prior build of the application must keep
// loading, so the literals never change.
const (
	KeyJobs         = "simple_jobs"
	KeyApplications = "simple_applications"
	KeyEmployers    = "simple_employers"
	KeyUsers        = "fallback_users"
	KeyCurrentUser  = "userData"
	KeyAuthToken    = "authToken"
	KeyAppLanguage  = "app_language"
)

// KV is the behavioral contract of the persistence substrate: whole-blob
// reads and writes addressed by string key. Get returns nil, nil when the
// key is absent; absence is not an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
