package main

import (
	"fmt"

	"github.com/m1gwings/treedrawer/tree"
	"github.com/spf13/cobra"

	"github.com/filament-ui/filament/pkg/reactive"
)

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Render a sample ownership hierarchy",
		Long: `Builds the scope hierarchy of a small demo app, runs one
update through it, and draws the resulting ownership tree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderDemoTree()
		},
	}
}

// renderDemoTree mounts a demo app, mirrors each scope it creates into a
// drawable tree, and prints the result after one update cycle.
func renderDemoTree() error {
	t := tree.NewTree(tree.NodeString("root scope"))

	reactive.CreateScope(func(dispose func()) struct{} {
		defer dispose()

		count := reactive.NewSignal(0)
		doubled := reactive.NewMemo(func() int {
			return count.Get() * 2
		})
		t.AddChild(tree.NodeString(fmt.Sprintf("signal count #%d", count.ID())))
		t.AddChild(tree.NodeString(fmt.Sprintf("memo doubled #%d", doubled.ID())))

		reactive.CreateScope(func(childDispose func()) struct{} {
			defer childDispose()

			label := reactive.NewMemo(func() string {
				return fmt.Sprintf("count is %d", doubled.Get())
			})
			eff := reactive.NewEffect(func() reactive.Cleanup {
				_ = label.Get()
				return nil
			})

			t.AddChild(tree.NodeString("child scope"))
			if child, err := t.Child(2); err == nil {
				child.AddChild(tree.NodeString(fmt.Sprintf("memo label #%d", label.ID())))
				child.AddChild(tree.NodeString(fmt.Sprintf("effect #%d", eff.ID())))
			}

			count.Set(21)
			return struct{}{}
		})
		return struct{}{}
	})

	fmt.Println(t)

	snap := reactive.Stats()
	fmt.Printf("after one update: %d writes, %d effect runs, %d memo recomputes\n",
		snap.SignalWrites, snap.EffectRuns, snap.MemoRecomputes)
	return nil
}
