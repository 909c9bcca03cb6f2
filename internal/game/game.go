// Package game runs the interactive inventory demo: a fixed-step tick loop
// feeding loot and narration requests through the simulation and drawing the
// result with tcell.
package game

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"dungeon-inventory/internal/catalog"
	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/config"
	"dungeon-inventory/internal/ecs"
	"dungeon-inventory/internal/factory"
	"dungeon-inventory/internal/grid"
	"dungeon-inventory/internal/render"
	"dungeon-inventory/internal/sim"
	"dungeon-inventory/internal/system"

	"github.com/gdamore/tcell/v2"
)

// DefaultTickRate is the fixed simulation step.
const DefaultTickRate = 100 * time.Millisecond

// burstSize is how many loot requests ActionLootBurst queues.
const burstSize = 6

// Options configures a Game.
type Options struct {
	Grid     config.GridConfig
	Texts    config.DungeonTexts
	Catalog  *catalog.Items
	Rand     *rand.Rand
	Logger   *slog.Logger
	TickRate time.Duration
}

// Game owns the world, the simulation and the screen for one demo run.
type Game struct {
	screen   tcell.Screen
	world    *ecs.World
	sim      *sim.Sim
	renderer *render.Renderer
	messages *render.MessageLog
	grid     config.GridConfig
	texts    config.DungeonTexts
	catalog  *catalog.Items
	rng      *rand.Rand
	logger   *slog.Logger
	tickRate time.Duration
	last     sim.TickStats
}

// New wires a Game around an initialised screen.
func New(screen tcell.Screen, opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.Catalog == nil {
		opts.Catalog, _ = catalog.New(nil)
	}
	world := ecs.NewWorld()
	messages := render.NewMessageLog(64)
	logger := opts.Logger

	narration := &sim.NarrationHandler{
		Texts:  opts.Texts,
		Rand:   opts.Rand,
		Sink:   messages,
		Logger: logger.With("handler", "narration"),
	}
	loot := &sim.LootHandler{
		Grids:     opts.Grid,
		Catalog:   opts.Catalog,
		Occupancy: system.Occupancy{World: world},
		Spawner: factory.Spawner{World: world, OnSpawn: func(id ecs.EntityID, req sim.SpawnRequest) {
			logger.Info("item spawned",
				"entity", id.String(),
				"item", string(req.Template.ID),
				"grid", string(req.Grid),
				"region", req.Region.String())
		}},
		Logger: logger.With("handler", "loot"),
	}

	return &Game{
		screen:   screen,
		world:    world,
		sim:      sim.New(narration, loot, logger),
		renderer: render.NewRenderer(screen),
		messages: messages,
		grid:     opts.Grid,
		texts:    opts.Texts,
		catalog:  opts.Catalog,
		rng:      opts.Rand,
		logger:   logger,
		tickRate: opts.TickRate,
	}
}

// World exposes the entity store.
func (g *Game) World() *ecs.World { return g.world }

// Messages exposes the on-screen narration log.
func (g *Game) Messages() *render.MessageLog { return g.messages }

// Run polls input on a separate goroutine and advances the simulation once
// per tick until the user quits, the screen closes or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(g.tickRate)
	defer ticker.Stop()

	g.sim.Narrate(sim.NarrationRequest{Text: config.TextEnterRoom})
	g.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer.Resize()
			case *tcell.EventKey:
				if !g.Apply(keyToAction(ev)) {
					g.logger.Info("quit requested", "tick", g.last.Tick)
					return nil
				}
			}
		case <-ticker.C:
			g.Step()
		}
	}
}

// Step runs one simulation tick and redraws the screen.
func (g *Game) Step() sim.TickStats {
	g.last = g.sim.Tick()
	g.renderer.DrawFrame(g.world, g.grid)
	g.renderer.DrawHUD(g.last, g.messages)
	return g.last
}

// Apply performs a. It returns false when a asks to quit.
func (g *Game) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionLoot:
		g.queueLoot(1)
	case ActionLootBurst:
		g.queueLoot(burstSize)
	case ActionNarrate:
		g.queueNarration()
	case ActionStash:
		g.stash()
	case ActionEquip:
		g.equipAll()
	case ActionClear:
		g.clearDropZone()
	}
	return true
}

func (g *Game) queueLoot(n int) {
	ids := g.catalog.IDs()
	if len(ids) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		g.sim.Loot(sim.LootRequest{Item: ids[g.rng.Intn(len(ids))]})
	}
	g.sim.Narrate(sim.NarrationRequest{Text: config.TextLootFound})
}

func (g *Game) queueNarration() {
	types := config.TextTypes
	g.sim.Narrate(sim.NarrationRequest{Text: types[g.rng.Intn(len(types))]})
}

func (g *Game) stash() {
	moved, left := 0, 0
	for _, id := range (system.Occupancy{World: g.world}).ItemsIn(grid.DropIn) {
		if factory.Move(g.world, id, g.grid, grid.Inventory) {
			moved++
		} else {
			left++
		}
	}
	g.logger.Debug("stashed drop zone", "moved", moved, "left", left)
}

func (g *Game) equipAll() {
	occ := system.Occupancy{World: g.world}
	for _, name := range []grid.Name{grid.DropIn, grid.Inventory} {
		for _, id := range occ.ItemsIn(name) {
			item := g.world.Get(id, component.CItem).(component.CItemComp).Item
			if item.Slot == component.SlotNone {
				continue
			}
			if err := factory.Equip(g.world, id, g.grid.Equipped, item.Slot); err != nil {
				g.logger.Debug("equip skipped", "entity", id.String(), "item", string(item.ID), "error", err)
			}
		}
	}
}

func (g *Game) clearDropZone() {
	for _, id := range (system.Occupancy{World: g.world}).ItemsIn(grid.DropIn) {
		g.world.DestroyEntity(id)
	}
}
