package sim

import (
	"log/slog"
)

// TickStats summarises one tick.
type TickStats struct {
	Tick            uint64
	Narrated        int
	NarrationMisses int
	Spawned         int
	LootMisses      int // unknown item ids
	Dropped         int // no space left
}

// Sim owns the per-tick event queues and the handlers that drain them.
type Sim struct {
	narration *NarrationHandler
	loot      *LootHandler

	narrations Queue[NarrationRequest]
	loots      Queue[LootRequest]
	tick       uint64
	logger     *slog.Logger
}

// New wires a Sim from its handlers.
func New(narration *NarrationHandler, loot *LootHandler, logger *slog.Logger) *Sim {
	return &Sim{narration: narration, loot: loot, logger: orDefault(logger)}
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// Narrate queues a narration request for the next tick.
func (s *Sim) Narrate(req NarrationRequest) { s.narrations.Push(req) }

// Loot queues a loot request for the next tick.
func (s *Sim) Loot(req LootRequest) { s.loots.Push(req) }

// Pending returns the number of queued narration and loot requests.
func (s *Sim) Pending() (narrations, loots int) {
	return s.narrations.Len(), s.loots.Len()
}

// Tick drains both queues once: narration first, then loot. Events queued
// while the tick runs wait for the next one.
func (s *Sim) Tick() TickStats {
	s.tick++
	stats := TickStats{Tick: s.tick}

	narrations := s.narrations.Drain()
	loots := s.loots.Drain()

	stats.Narrated, stats.NarrationMisses = s.narration.Handle(narrations)
	for _, o := range s.loot.Handle(loots) {
		switch o {
		case LootSpawned:
			stats.Spawned++
		case LootUnknown:
			stats.LootMisses++
		case LootNoSpace:
			stats.Dropped++
		}
	}
	if len(narrations) > 0 || len(loots) > 0 {
		s.logger.Debug("tick processed",
			"tick", stats.Tick,
			"narrated", stats.Narrated,
			"spawned", stats.Spawned,
			"dropped", stats.Dropped)
	}
	return stats
}
