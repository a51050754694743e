package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/next-trace/scg-event-bus/adapters/inmemory"
	"github.com/next-trace/scg-event-bus/block"
	"github.com/next-trace/scg-event-bus/eventbus"
	"github.com/next-trace/scg-event-bus/global"
	"github.com/next-trace/scg-event-bus/rule/blockwalk"
	"github.com/next-trace/scg-event-bus/sim"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run the demo world for a few ticks and print the resolved collision shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			set, err := cfg.BlockSet()
			if err != nil {
				return err
			}

			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if cfg.File != "" {
				logger.Info("using config file", "path", cfg.File)
			}

			rec := inmemory.New()

			b, teardown := global.Init(eventbus.WithLogger(logger), eventbus.WithObserver(rec))
			defer teardown()

			blockwalk.New(set, blockwalk.WithLogger(logger)).Initialize(b)

			world := demoWorld()
			loop := sim.NewLoop(world, b, logger)

			shapes := loop.Tick(block.Pos{}, cfg.Sim.Radius)
			for i := 1; i < cfg.Sim.Ticks; i++ {
				shapes = loop.Tick(block.Pos{}, cfg.Sim.Radius)
			}

			out := cmd.OutOrStdout()

			positions := make([]block.Pos, 0, len(shapes))
			for p := range shapes {
				if world.Block(p) != block.Air {
					positions = append(positions, p)
				}
			}

			slices.SortFunc(positions, comparePos)

			for _, p := range positions {
				id := world.Block(p)
				fmt.Fprintf(out, "%-14s %-28s natural=%-22s resolved=%s\n", p, id, sim.NaturalShape(id), shapes[p])
			}

			fmt.Fprintf(out, "ticks=%d dispatches=%d failures=%d\n", loop.Ticks(), len(rec.Records()), rec.Failures())

			return nil
		},
	}
}

// demoWorld is a stone floor with a few walk-through blocks on it.
func demoWorld() *sim.World {
	w := sim.NewWorld()

	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			w.Set(block.Pos{X: x, Y: -1, Z: z}, block.Stone)
		}
	}

	w.Set(block.Pos{X: 1}, block.Cobweb)
	w.Set(block.Pos{Z: 1}, block.Snow)
	w.Set(block.Pos{X: -1}, block.Grass)
	w.Set(block.Pos{Z: -1}, block.SweetBerryBush)
	w.Set(block.Pos{X: 1, Z: 1}, block.PowderSnow)

	return w
}

func comparePos(a, b block.Pos) int {
	switch {
	case a.Y != b.Y:
		return a.Y - b.Y
	case a.X != b.X:
		return a.X - b.X
	default:
		return a.Z - b.Z
	}
}
