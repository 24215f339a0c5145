package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/workshoplabs/repairtrack/internal/repository"
	"go.uber.org/zap"
)

// initJob starts the optional low-stock watcher. It only reads inventory and
// logs the result; stock is never modified outside request handling.
func (a *Application) initJob() {
	if !a.appConfig.Jobs.LowStockWatch {
		return
	}

	a.sched = cron.New()
	spec := a.appConfig.Jobs.LowStockCron
	if spec == "" {
		spec = "@every 1h"
	}

	_, err := a.sched.AddFunc(spec, a.runLowStockWatch)
	if err != nil {
		zap.L().Error("failed to schedule low stock watcher", zap.Error(err))
		return
	}

	a.sched.Start()
	zap.L().Info("low stock watcher scheduled", zap.String("cron", spec))
}

func (a *Application) runLowStockWatch() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	parts, err := repository.NewGormSparePartRepository(a.gormDB).GetOutOfStock(ctx)
	if err != nil {
		zap.L().Error("low stock watch query failed", zap.Error(err))
		return
	}

	if len(parts) == 0 {
		zap.L().Debug("low stock watch: all parts in stock")
		return
	}

	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.Name)
	}
	zap.L().Warn("spare parts out of stock",
		zap.Int("count", len(parts)),
		zap.Strings("parts", names))
}
