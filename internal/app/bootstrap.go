package app

import (
	"errors"
	"fmt"

	"github.com/dujiao-next/estore/internal/config"
	"github.com/dujiao-next/estore/internal/logger"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/provider"
	"github.com/dujiao-next/estore/internal/router"
	"github.com/dujiao-next/estore/internal/worker"

	"gorm.io/gorm"
)

// BuildRunner 构建服务运行器，db 需已完成迁移
func BuildRunner(cfg *config.Config, db *gorm.DB, mode string) (*Runner, *provider.Container, error) {
	if cfg == nil {
		return nil, nil, errors.New("config is nil")
	}
	if db == nil {
		return nil, nil, errors.New("database not initialized")
	}
	if !isValidMode(mode) {
		return nil, nil, fmt.Errorf("unknown mode %q", mode)
	}

	container, err := provider.NewContainer(cfg, db)
	if err != nil {
		return nil, nil, err
	}

	var services []Service
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(cfg.Server.Addr(), engine))
	}

	if mode == ModeAll || mode == ModeWorker {
		workerService, err := worker.NewService(&cfg.Queue, worker.NewConsumer(container))
		switch {
		case err == nil:
			services = append(services, workerService)
		case mode == ModeWorker:
			container.Close()
			return nil, nil, err
		default:
			// all 模式下队列未启用时仅提供 HTTP 服务
			logger.Warnw("app_worker_skipped", "error", err)
		}
	}

	if len(services) == 0 {
		container.Close()
		return nil, nil, errors.New("no services initialized (check mode and config)")
	}
	return NewRunner(services...), container, nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}
	if opts.DB == nil {
		opts.DB = models.DB
	}

	runner, container, err := BuildRunner(opts.Config, opts.DB, opts.Mode)
	if err != nil {
		return err
	}
	defer container.Close()

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
