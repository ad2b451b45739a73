package app

import (
	"errors"

	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/provider"
	"github.com/superman-store/internal/router"
)

// BuildRunner 构建服务运行器：HTTP 服务在前，资源回收在后
func BuildRunner(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.New("config is nil")
	}
	if opts.DB == nil {
		return nil, errors.New("database is nil")
	}

	container := provider.NewContainer(opts.Config, opts.DB, opts.Redis)
	engine := router.SetupRouter(opts.Config, container)

	resources := NewResourceService(
		Closer{Name: "database", Close: func() error { return models.CloseDB(opts.DB) }},
		Closer{Name: "redis", Close: opts.Redis.Close},
	)
	return NewRunner(NewHTTPService(opts.Config.Server.Addr(), engine), resources), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	runner, err := BuildRunner(opts)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Config.Server.Mode, "redis_enabled", opts.Redis != nil)
	return RunWithOptions(runner, opts)
}
