package job

import (
	"context"
	log "log/slog"
	"os"
	"path/filepath"
	"time"
)

// MediaCleanupJob 清理临时目录中过期的文件
type MediaCleanupJob struct {
	dirs      []string
	retention time.Duration
	now       func() time.Time
}

func NewMediaCleanupJob(retention time.Duration, dirs ...string) *MediaCleanupJob {
	return &MediaCleanupJob{
		dirs:      dirs,
		retention: retention,
		now:       time.Now,
	}
}

func (s *MediaCleanupJob) Run() {
	ctx := context.Background()
	log.InfoContext(ctx, "start media cleanup job")

	count := s.Clean(ctx)
	if count > 0 {
		log.InfoContext(ctx, "media cleanup job finished", "cleaned_count", count)
	}
}

// Clean 返回删除的文件数，单个文件失败不影响其余
func (s *MediaCleanupJob) Clean(ctx context.Context) int {
	deadline := s.now().Add(-s.retention)
	count := 0

	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				log.ErrorContext(ctx, "failed to read media dir", "dir", dir, "err", err)
			}
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(deadline) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if err = os.Remove(path); err != nil {
				log.ErrorContext(ctx, "failed to delete expired file", "path", path, "err", err)
				continue
			}
			count++
		}
	}
	return count
}
