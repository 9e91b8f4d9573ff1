// File: cmd/simulate.go
package cmd

import (
	"time"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/account"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/ge"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/highlight"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/mocks"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/observability"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/offers"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/render"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/suggestion"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/uithread"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// simStep is one scripted state change fed to the highlight engine.
type simStep struct {
	name  string
	apply func(*mocks.FakeClient, *suggestion.Manager, *account.Status)
}

// newSimulateCmd creates the `simulate` command: a developer harness that
// drives the highlight engine against a scripted fake client and logs every
// decision instead of painting overlays.
func newSimulateCmd() *cobra.Command {
	var stepDelay time.Duration

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the highlight engine against a scripted client session",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			client := mocks.NewFakeClient()
			exchange := ge.New(client)
			status := account.NewStatus()
			tracker := offers.NewTracker()
			source := suggestion.NewManager(logger)
			queue := uithread.NewQueue(logger, 0)
			defer queue.Close()

			controller := highlight.NewController(highlight.Deps{
				Config:   &cfg,
				Source:   source,
				Exchange: exchange,
				Account:  status,
				Offers:   tracker,
				Client:   client,
				Renderer: render.NewLogRenderer(logger),
				Palette:  highlight.NewPalette(cfg.HighlightCfg),
				Queue:    queue,
				Logger:   logger,
			})
			trigger := highlight.NewTrigger(controller.Redraw, cfg.HighlightCfg.RedrawInterval)
			defer trigger.Close()

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				for _, step := range simScript() {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(stepDelay):
					}
					logger.Info("Simulating", zap.String("step", step.name))
					step.apply(client, source, status)
					trigger.Notify()
				}
				// Let the last evaluation land before tearing down.
				time.Sleep(cfg.HighlightCfg.RedrawInterval * 2)
				queue.Flush()
				return nil
			})
			return g.Wait()
		},
	}

	simulateCmd.Flags().DurationVar(&stepDelay, "step-delay", 250*time.Millisecond, "pause between scripted steps")
	return simulateCmd
}

// simScript walks the engine through a representative session: exchange
// closed, home screen with a sell suggestion, collection pending, then an
// offer screen converging on the suggested buy.
func simScript() []simStep {
	return []simStep{
		{
			name: "exchange closed",
			apply: func(c *mocks.FakeClient, s *suggestion.Manager, _ *account.Status) {
				s.Set(&schemas.Suggestion{Type: schemas.SuggestionBuy, ItemID: 560, Price: 210, Quantity: 1000})
			},
		},
		{
			name: "home screen, sell suggestion, item in inventory",
			apply: func(c *mocks.FakeClient, s *suggestion.Manager, _ *account.Status) {
				openHomeScreen(c)
				inv := mocks.NewFakeWidget(200, 280)
				inv.Dynamic = []schemas.Widget{
					mocks.NewFakeWidget(34, 32).WithItem(560),
					mocks.NewFakeWidget(34, 32).WithItem(2),
				}
				c.SetWidget(ge.GroupInventoryGE, 0, inv)
				s.Set(&schemas.Suggestion{Type: schemas.SuggestionSell, ItemID: 560, Price: 208, Quantity: 0})
			},
		},
		{
			name: "collection pending",
			apply: func(_ *mocks.FakeClient, _ *suggestion.Manager, st *account.Status) {
				st.SetSlot(2, account.SlotDone)
			},
		},
		{
			name: "offer screen matches the suggestion",
			apply: func(c *mocks.FakeClient, s *suggestion.Manager, st *account.Status) {
				st.SetSlot(2, account.SlotEmpty)
				s.Set(&schemas.Suggestion{Type: schemas.SuggestionBuy, ItemID: 560, Price: 210, Quantity: 1000})
				openOfferScreen(c, 560, 210, 1000)
			},
		},
	}
}

// openHomeScreen mounts the minimum home-screen widgets.
func openHomeScreen(c *mocks.FakeClient) {
	c.SetWidget(ge.GroupGrandExchange, ge.ChildWindowRoot, mocks.NewFakeWidget(480, 300))
	c.SetWidget(ge.GroupGrandExchange, ge.ChildCollectButton, mocks.NewFakeWidget(85, 20))
	for slot := 0; slot < ge.SlotCount; slot++ {
		slotWidget := mocks.NewFakeWidget(115, 110)
		slotWidget.Children = []schemas.Widget{nil, nil, nil, mocks.NewFakeWidget(45, 44)}
		c.SetWidget(ge.GroupGrandExchange, ge.ChildFirstSlot+slot, slotWidget)
	}
}

// openOfferScreen mounts the offer-creation screen with the given live state.
func openOfferScreen(c *mocks.FakeClient, itemID, price, quantity int) {
	c.SetWidget(ge.GroupGrandExchange, ge.ChildWindowRoot, mocks.NewFakeWidget(480, 300))
	for child := ge.ChildOfferContainer; child <= ge.ChildConfirmButton; child++ {
		c.SetWidget(ge.GroupGrandExchange, child, mocks.NewFakeWidget(40, 30))
	}
	c.SetWidget(ge.GroupGrandExchange, ge.ChildBackButton, mocks.NewFakeWidget(50, 40))
	c.SetVarbit(ge.VarbitOfferType, 0)
	c.SetVarp(ge.VarpCurrentItem, itemID)
	c.SetVarbit(ge.VarbitOfferPrice, price)
	c.SetVarbit(ge.VarbitOfferQuantity, quantity)
}
