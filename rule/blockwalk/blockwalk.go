// Package blockwalk lets the player walk on blocks that normally have no or only a
// partial collision volume by reporting them as full cubes.
package blockwalk

import (
	"log/slog"

	cbus "github.com/next-trace/scg-event-bus/contract/bus"
	"github.com/next-trace/scg-event-bus/block"
	"github.com/next-trace/scg-event-bus/event"
	"github.com/next-trace/scg-event-bus/eventbus"
	"github.com/next-trace/scg-event-bus/shape"
)

// DefaultBlocks is the block set used when nothing is configured.
func DefaultBlocks() block.Set { return block.NewSet(block.Cobweb, block.Snow) }

// Rule overrides the queried shape of its configured blocks. It holds no state
// between events beyond the set it was built with.
type Rule struct {
	blocks block.Set
	logger *slog.Logger
}

// Option configures a Rule.
type Option func(*Rule)

// WithLogger sets the logger used when the rule subscribes.
func WithLogger(l *slog.Logger) Option {
	return func(r *Rule) {
		if l != nil {
			r.logger = l
		}
	}
}

// New builds a rule over a private copy of blocks.
func New(blocks block.Set, opts ...Option) *Rule {
	r := &Rule{
		blocks: blocks.Clone(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, o := range opts {
		o(r)
	}

	return r
}

// Initialize subscribes the rule to shape queries.
func (r *Rule) Initialize(s cbus.Subscriber) cbus.Subscription {
	sub := eventbus.OnFunc(s, r.OnShapeQuery)
	r.logger.Info("blockwalk: subscribed", "blocks", r.blocks.IDs(), "subscription", sub.ID)

	return sub
}

// OnShapeQuery replaces the shape with a full cube when the queried block is configured.
func (r *Rule) OnShapeQuery(e *event.BlockShapeEvent) error {
	if r.blocks.Contains(e.State.Block) {
		e.Shape = shape.FullCube()
	}

	return nil
}

// Blocks returns a copy of the configured set.
func (r *Rule) Blocks() block.Set { return r.blocks.Clone() }
