package main

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/superman-store/internal/app"
	"github.com/superman-store/internal/config"
	"github.com/superman-store/internal/logger"
	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/redisclient"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiRed    = "\033[31m"
	ansiBlue   = "\033[34m"
	ansiYellow = "\033[33m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	// 初始化数据库
	db, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, cfg.Server.IsDebug())
	if err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// Redis 仅用于写接口限流，连不上时继续启动
	redis := redisclient.New(&cfg.Redis)
	if redis != nil {
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redis.Ping(pingCtx); err != nil {
			logger.Warnw("redis_unavailable", "addr", redis.Options().Addr, "error", err)
		}
		cancel()
	}

	if !cfg.Server.IsDebug() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		DB:      db,
		Redis:   redis,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiRed + "╔══════════════════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiRed + "║                 Superman Store API 启动中                    ║" + ansiReset)
	fmt.Println(ansiRed + "╚══════════════════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiBlue + ansiBold + "   _____                                             " + ansiReset)
	fmt.Println(ansiBlue + ansiBold + "  / ___/__  ______  ___  _________ ___  ____ _____  " + ansiReset)
	fmt.Println(ansiBlue + ansiBold + "  \\__ \\/ / / / __ \\/ _ \\/ ___/ __ `__ \\/ __ `/ __ \\ " + ansiReset)
	fmt.Println(ansiBlue + ansiBold + " ___/ / /_/ / /_/ /  __/ /  / / / / / / /_/ / / / / " + ansiReset)
	fmt.Println(ansiBlue + ansiBold + "/____/\\__,_/ .___/\\___/_/  /_/ /_/ /_/\\__,_/_/ /_/  " + ansiReset)
	fmt.Println(ansiBlue + ansiBold + "          /_/                                  STORE " + ansiReset)
	fmt.Println(ansiYellow + "• Docs:    /  /healthz  /products  /customers  /purchases  /deliveries" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
