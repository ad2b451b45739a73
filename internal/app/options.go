package app

import (
	"os"
	"time"

	"github.com/superman-store/internal/config"
	"github.com/superman-store/internal/logger"
	"github.com/superman-store/internal/redisclient"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	DB              *gorm.DB
	Redis           *redisclient.Client
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

// normalizeOptions 补齐默认参数
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return opts
}
