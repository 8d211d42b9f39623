package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO state(key, value) VALUES (?, ?)`, "k", []byte("v"))
	assert.NoError(t, err)
}

func TestInitDatabase_Reentrant(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// A second open against the same file must not fail on applied migrations.
	db, err = InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
}
