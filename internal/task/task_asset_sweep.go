package task

import (
	"context"

	"github.com/haierkeys/second-brain-service/internal/service"

	"go.uber.org/zap"
)

// AssetSweepTask 清理存储中不再被任何条目引用的对象
// Covers objects left behind by failed record writes or failed deletes.
type AssetSweepTask struct {
	assets service.AssetService
	spec   string
	logger *zap.Logger
}

// NewAssetSweepTask 创建孤儿资源清理任务
func NewAssetSweepTask(assets service.AssetService, spec string, logger *zap.Logger) *AssetSweepTask {
	return &AssetSweepTask{
		assets: assets,
		spec:   spec,
		logger: logger,
	}
}

// Name 返回任务名称
func (t *AssetSweepTask) Name() string {
	return "AssetSweepTask"
}

// Spec 返回 cron 表达式
func (t *AssetSweepTask) Spec() string {
	return t.spec
}

// Run 执行清理任务
func (t *AssetSweepTask) Run(ctx context.Context) error {
	removed, err := t.assets.SweepOrphans(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		t.logger.Info("orphan assets removed", zap.Int("count", removed))
	}
	return nil
}
