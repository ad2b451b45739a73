package app

import (
	"context"
	"errors"
	"fmt"
)

// Closer 需要在退出时释放的资源
type Closer struct {
	Name  string
	Close func() error
}

// ResourceService 在运行器停止时按顺序释放资源
type ResourceService struct {
	closers []Closer
}

// NewResourceService 创建资源回收服务
func NewResourceService(closers ...Closer) *ResourceService {
	return &ResourceService{closers: closers}
}

// Name 服务名称
func (s *ResourceService) Name() string {
	return "resources"
}

// Start 阻塞到上下文结束
func (s *ResourceService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Stop 依次关闭资源，汇总全部错误
func (s *ResourceService) Stop(ctx context.Context) error {
	var errs []error
	for _, closer := range s.closers {
		if closer.Close == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", closer.Name, err))
		}
	}
	return errors.Join(errs...)
}
