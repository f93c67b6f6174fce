package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hochschule/internal/db"
	"github.com/yigit/hochschule/internal/db/dbtest"
)

func TestServeReleasesDatabaseOnExit(t *testing.T) {
	dsn := dbtest.DSN(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf(`server:
  port: "0"
  mode: production
  shutdown_timeout: 1s
database:
  provider: memory
  memory_dsn: %q
logging:
  level: error
`, dsn)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "--config", path})
	require.NoError(t, cmd.ExecuteContext(ctx))

	// a shared-cache memory store only survives while a connection is open
	reopened, err := db.OpenMemory(dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	assert.False(t, reopened.DB.Migrator().HasTable("students"))
}
