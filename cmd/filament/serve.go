package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/filament-ui/filament/internal/config"
	"github.com/filament-ui/filament/pkg/dom"
	"github.com/filament-ui/filament/pkg/inspect"
	"github.com/filament-ui/filament/pkg/reactive"
	"github.com/filament-ui/filament/pkg/view"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run a demo reactive app with the inspector attached",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger()

			if err := inspect.RegisterMetrics(); err != nil {
				return err
			}

			srv := inspect.NewServer(inspect.Config{
				Addr:           cfg.Inspector.Addr,
				StreamInterval: time.Duration(cfg.Inspector.StreamIntervalMS) * time.Millisecond,
				Logger:         logger,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go demoLoop(ctx, logger)

			return srv.Run(ctx)
		},
	}
}

// demoLoop drives a small reactive app on its own goroutine so the
// inspector has something to watch: a counter with a derived memo, and a
// keyed list that rotates every tick. All writes stay on this goroutine;
// the inspector only samples counters.
func demoLoop(ctx context.Context, logger zerolog.Logger) {
	reactive.CreateScope(func(dispose func()) struct{} {
		defer dispose()

		counter := reactive.NewSignal(0)
		doubled := reactive.NewMemo(func() int {
			return counter.Get() * 2
		})
		reactive.NewEffect(func() reactive.Cleanup {
			_ = doubled.Get()
			return nil
		})

		items := []int{0, 1, 2, 3, 4, 5, 6, 7}
		root := dom.NewElement("ul")
		region := dom.NewRegion(root)
		list := reactive.NewSignal(append([]int(nil), items...))

		view.For(region, list.Get,
			func(item, _ int) string { return strconv.Itoa(item) },
			func(item int, _ *reactive.Signal[int]) []*dom.Node {
				return []*dom.Node{dom.NewElement("li", dom.NewText(strconv.Itoa(item)))}
			})

		logger.Info().Msg("demo app mounted")

		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info().Msg("demo app stopping")
				return struct{}{}
			case <-ticker.C:
				reactive.Batch(func() {
					counter.Update(func(n int) int { return n + 1 })
					rotated := append(items[1:], items[0])
					copy(items, rotated)
					list.Set(append([]int(nil), items...))
				})
			}
		}
	})
}
