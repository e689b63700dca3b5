package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDrivers = []string{DriverCGO, DriverPureGo}

// forEachDriver runs fn once per supported SQLite driver.
func forEachDriver(t *testing.T, fn func(t *testing.T, driver string)) {
	t.Helper()
	for _, d := range testDrivers {
		t.Run(d, func(t *testing.T) {
			t.Parallel()
			fn(t, d)
		})
	}
}

// testCfg returns a config for a database file inside a temp dir.
func testCfg(t *testing.T, driver string) *Cfg {
	t.Helper()
	c, err := NewSQLiteCfg(filepath.Join(t.TempDir(), "stack_memory.db"))
	require.NoError(t, err)
	c.Driver = driver

	return c
}

// setupTestDB returns an initialized store.
func setupTestDB(t *testing.T, driver string) *SQLite {
	t.Helper()
	r := New(testCfg(t, driver))
	require.NoError(t, r.Initialize(t.Context()))

	return r
}

// teardownthewall closes the store.
func teardownthewall(t *testing.T, r *SQLite) {
	t.Helper()
	if r.IsOpen() {
		assert.NoError(t, r.Close())
	}
}

// tableExists checks whether a table with the given name exists.
func tableExists(r *SQLite, name Table) (bool, error) {
	var count int
	err := r.DB.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = ?", name)

	return count > 0, err
}

func TestNewSQLiteCfg(t *testing.T) {
	t.Parallel()
	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		c, err := NewSQLiteCfg("")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("splits name and dir", func(t *testing.T) {
		t.Parallel()
		d := t.TempDir()
		p := filepath.Join(d, "memory.db")
		c, err := NewSQLiteCfg(p)
		require.NoError(t, err)
		assert.Equal(t, "memory.db", c.Name)
		assert.Equal(t, d, c.Path)
		assert.Equal(t, p, c.Fullpath())
		assert.Equal(t, DefaultDriver, c.Driver)
		assert.False(t, c.CaseSensitive)
	})

	t.Run("relative path is resolved", func(t *testing.T) {
		t.Parallel()
		c, err := NewSQLiteCfg("stack_memory.db")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(c.Fullpath()))
	})
}

func TestInitialize(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		c := testCfg(t, driver)
		r := New(c)
		defer teardownthewall(t, r)

		assert.False(t, r.IsOpen())
		require.NoError(t, r.Initialize(t.Context()))
		assert.True(t, r.IsOpen())
		assert.FileExists(t, c.Fullpath())

		exists, err := tableExists(r, schemaMain.name)
		require.NoError(t, err)
		assert.True(t, exists, "table %s does not exist", schemaMain.name)
	})
}

func TestInitializeIdempotent(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		ctx := t.Context()
		c := testCfg(t, driver)

		first := New(c)
		require.NoError(t, first.Initialize(ctx))
		_, err := first.Add(ctx, "https://x/1", "Null pointer", "check the null before deref")
		require.NoError(t, err)
		// same handle, schema runs again
		require.NoError(t, first.Initialize(ctx))
		require.NoError(t, first.Close())

		second := New(c)
		defer teardownthewall(t, second)
		require.NoError(t, second.Initialize(ctx))

		all, err := second.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "https://x/1", all[0].URL)
		assert.Equal(t, 0, all[0].UseCount)
	})
}

func TestInitializeStorageUnavailable(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		forEachDriver(t, func(t *testing.T, driver string) {
			c := testCfg(t, driver)
			c.Path = filepath.Join(c.Path, "does", "not", "exist")
			r := New(c)
			err := r.Initialize(t.Context())
			assert.ErrorIs(t, err, ErrStorageUnavailable)
			assert.False(t, r.IsOpen())
		})
	})

	t.Run("not a database", func(t *testing.T) {
		forEachDriver(t, func(t *testing.T, driver string) {
			c := testCfg(t, driver)
			err := os.WriteFile(c.Fullpath(), []byte("This is not a database, just plain text."), 0o600)
			require.NoError(t, err)
			r := New(c)
			assert.ErrorIs(t, r.Initialize(t.Context()), ErrStorageUnavailable)
			assert.False(t, r.IsOpen())
		})
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		c := testCfg(t, "postgres")
		r := New(c)
		err := r.Initialize(t.Context())
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.ErrorIs(t, err, ErrDriverUnknown)
	})
}

func TestStoreLifecycle(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		ctx := t.Context()
		r := New(testCfg(t, driver))

		// uninitialized
		_, err := r.Add(ctx, "https://x/1", "t", "s")
		assert.ErrorIs(t, err, ErrStoreNotOpen)
		_, err = r.Find(ctx, "t")
		assert.ErrorIs(t, err, ErrStoreNotOpen)
		_, err = r.ListAll(ctx)
		assert.ErrorIs(t, err, ErrStoreNotOpen)
		_, err = r.Count(ctx)
		assert.ErrorIs(t, err, ErrStoreNotOpen)
		assert.ErrorIs(t, r.Close(), ErrStoreNotOpen)

		// open
		require.NoError(t, r.Initialize(ctx))
		_, err = r.ListAll(ctx)
		assert.NoError(t, err)

		// closed
		require.NoError(t, r.Close())
		assert.ErrorIs(t, r.Close(), ErrStoreNotOpen)
		_, err = r.ListAll(ctx)
		assert.ErrorIs(t, err, ErrStoreNotOpen)
		_, err = r.Find(ctx, "t")
		assert.ErrorIs(t, err, ErrStoreNotOpen)
		_, err = r.Count(ctx)
		assert.ErrorIs(t, err, ErrStoreNotOpen)
		assert.ErrorIs(t, r.Initialize(ctx), ErrStoreNotOpen)
	})
}

func TestBuildSQLiteDSN(t *testing.T) {
	t.Parallel()
	p, err := driverParams(DriverCGO)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db?_busy_timeout=5000", buildSQLiteDSN("/tmp/x.db", p))
	assert.Equal(t, "/tmp/x.db?mode=ro&_busy_timeout=5000", buildSQLiteDSN("/tmp/x.db?mode=ro", p))
	assert.Equal(t, "/tmp/x.db", buildSQLiteDSN("/tmp/x.db", nil))

	p, err = driverParams(DriverPureGo)
	require.NoError(t, err)
	assert.Equal(t, "busy_timeout(5000)", p.Get("_pragma"))

	_, err = driverParams("mysql")
	assert.ErrorIs(t, err, ErrDriverUnknown)
}
