package cmd

import (
	"context"
	"fmt"
	"io"

	"patterns-example/catalog"
	"patterns-example/config"
	"patterns-example/pkg/logger"
	"patterns-example/util"

	"go.uber.org/zap"
)

// App 应用程序结构体
type App struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	out     io.Writer
}

// Run executes the configured demonstrations and returns once all have
// finished. With catalog.enabled empty every registered demonstration
// runs in registration order; otherwise only the listed ones run, in the
// listed order.
func (a *App) Run(ctx context.Context) error {
	defer logger.Sync()

	var results []catalog.Result
	if len(a.cfg.Catalog.Enabled) == 0 {
		results = a.catalog.RunAll(ctx, a.out)
	} else {
		for _, name := range a.cfg.Catalog.Enabled {
			r, err := a.catalog.Run(ctx, name, a.out)
			if err != nil {
				return err
			}
			results = append(results, *r)
		}
	}

	if a.cfg.Catalog.Report {
		if err := a.printReport(results); err != nil {
			logger.Warn("failed to render run report", zap.Error(err))
		}
	}

	failed := 0
	for _, r := range results {
		if r.Err() != nil {
			failed++
		}
	}
	logger.Info("catalog run finished",
		zap.Int("total", len(results)),
		zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d demonstrations failed", failed, len(results))
	}
	return nil
}

func (a *App) printReport(results []catalog.Result) error {
	ju := &util.JSONUtil{}
	report, err := ju.PrettyJSON(results)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "run report:")
	fmt.Fprintln(a.out, report)
	return nil
}

// Catalog 获取目录实例（用于测试）
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}
