package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册并启动所有定时任务
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("failed to register cron jobs: %w", err)
	}
	mgr.Start()
	return nil
}
