package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SecureStore_GetMissingKeyReturnsNil(t *testing.T) {

	st, err := Open(filepath.Join(t.TempDir(), "test.db"), "passphrase")
	require.NoError(t, err)
	defer st.Close()

	value, err := st.Get(context.Background(), "absent")
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func Test_SecureStore_SetGetDelete(t *testing.T) {

	st, err := Open(filepath.Join(t.TempDir(), "test.db"), "passphrase")
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()

	assert.NoError(t, st.Set(ctx, KeyJobs, []byte(`[{"id":"job-1"}]`)))

	value, err := st.Get(ctx, KeyJobs)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"job-1"}]`), value)

	assert.NoError(t, st.Delete(ctx, KeyJobs))

	value, err = st.Get(ctx, KeyJobs)
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func Test_SecureStore_ValuesSurviveReopen(t *testing.T) {

	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	st, err := Open(path, "passphrase")
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, KeyAppLanguage, []byte("hi")))
	require.NoError(t, st.Close())

	reopened, err := Open(path, "passphrase")
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, KeyAppLanguage)
	assert.NoError(t, err)
	assert.Equal(t, []byte("hi"), value)
}

func Test_SecureStore_WrongPassphraseRejectedAtOpen(t *testing.T) {

	path := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(path, "passphrase")
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = Open(path, "different")
	assert.Error(t, err)
}

func Test_SecureStore_ValuesEncryptedAtRest(t *testing.T) {

	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	st, err := Open(path, "passphrase")
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Set(ctx, KeyUsers, []byte("plaintext-marker")))

	var raw item
	require.NoError(t, st.db.First(&raw, "key = ?", KeyUsers).Error)
	assert.NotContains(t, string(raw.Value), "plaintext-marker")
}

func Test_SecureStore_VacuumSucceeds(t *testing.T) {

	st, err := Open(filepath.Join(t.TempDir(), "test.db"), "passphrase")
	require.NoError(t, err)
	defer st.Close()

	assert.NoError(t, st.Vacuum(context.Background()))
}
