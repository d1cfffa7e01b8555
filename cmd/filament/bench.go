package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/filament-ui/filament/internal/config"
	"github.com/filament-ui/filament/pkg/dom"
	"github.com/filament-ui/filament/pkg/reactive"
	"github.com/filament-ui/filament/pkg/view"
)

func benchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Benchmark graph propagation and list reconciliation",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			benchPropagate(cfg.Bench)
			benchReconcile(cfg.Bench)
			return nil
		},
	}
}

// benchPropagate times a write through a diamond fan of memos into one
// effect, per fan width.
func benchPropagate(cfg config.BenchConfig) {
	tbl := table.NewWriter()
	tbl.SetTitle("Signal Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"scenario", "avg", "min", "p75", "p99", "max", "writes"})

	for _, w := range cfg.Widths {
		width := w
		reactive.CreateScope(func(dispose func()) struct{} {
			defer dispose()

			src := reactive.NewSignal(1)
			memos := make([]*reactive.Memo[int], width)
			for i := range memos {
				memos[i] = reactive.NewMemo(func() int {
					return src.Get() * 2
				})
			}
			reactive.NewEffect(func() reactive.Cleanup {
				sum := 0
				for _, m := range memos {
					sum += m.Get()
				}
				_ = sum
				return nil
			})

			tach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})
			for i := 0; i < cfg.Iterations; i++ {
				start := time.Now()
				src.Set(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRow(table.Row{
				fmt.Sprintf("diamond fan %d", width),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
				humanize.Comma(int64(cfg.Iterations)),
			})
			return struct{}{}
		})
	}

	tbl.Render()
}

// benchReconcile times a full shuffle of a keyed list, per list size.
func benchReconcile(cfg config.BenchConfig) {
	tbl := table.NewWriter()
	tbl.SetTitle("Keyed Reconciliation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"scenario", "avg", "min", "p75", "p99", "max", "shuffles"})

	rng := rand.New(rand.NewSource(42))

	for _, n := range cfg.ListSizes {
		size := n
		reactive.CreateScope(func(dispose func()) struct{} {
			defer dispose()

			items := make([]int, size)
			for i := range items {
				items[i] = i
			}

			root := dom.NewElement("ul")
			region := dom.NewRegion(root)
			list := reactive.NewSignal(append([]int(nil), items...))

			view.For(region, list.Get,
				func(item, _ int) string { return strconv.Itoa(item) },
				func(item int, _ *reactive.Signal[int]) []*dom.Node {
					return []*dom.Node{dom.NewElement("li", dom.NewText(strconv.Itoa(item)))}
				})

			tach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})
			for i := 0; i < cfg.Iterations; i++ {
				rng.Shuffle(len(items), func(a, b int) {
					items[a], items[b] = items[b], items[a]
				})
				next := append([]int(nil), items...)

				start := time.Now()
				list.Set(next)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRow(table.Row{
				fmt.Sprintf("shuffle %d keys", size),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
				humanize.Comma(int64(cfg.Iterations)),
			})
			return struct{}{}
		})
	}

	tbl.Render()
}
