package job

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaCleanupRemovesOnlyExpired(t *testing.T) {
	t.Parallel()

	uploads, processed := t.TempDir(), t.TempDir()
	old := filepath.Join(uploads, "old.png")
	fresh := filepath.Join(processed, "gen_1_x.png")
	for _, p := range []string{old, fresh} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	}
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))
	require.NoError(t, os.Mkdir(filepath.Join(uploads, "nested"), 0o755))

	j := NewMediaCleanupJob(24*time.Hour, uploads, processed, filepath.Join(uploads, "missing"))
	assert.Equal(t, 1, j.Clean(context.Background()))

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.DirExists(t, filepath.Join(uploads, "nested"))
}
