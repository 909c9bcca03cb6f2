package sim

import (
	"log/slog"

	"dungeon-inventory/internal/config"
)

// PickText returns a uniformly chosen line from pool, or false if the pool is
// empty.
func PickText(pool []string, rng Rand) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}
	return pool[rng.Intn(len(pool))], true
}

// NarrationHandler prints one random line per narration request.
type NarrationHandler struct {
	Texts  config.DungeonTexts
	Rand   Rand
	Sink   NarrationSink
	Logger *slog.Logger
}

// Handle processes events in order and returns how many lines were
// narrated. A missing or empty category is an authoring gap: it is logged as
// an error and the event is skipped.
func (h *NarrationHandler) Handle(events []NarrationRequest) (narrated, missed int) {
	log := orDefault(h.Logger)
	for _, ev := range events {
		log.Debug("received narration request", "text_type", string(ev.Text))
		pool, _ := h.Texts.Pool(ev.Text)
		line, ok := PickText(pool, h.Rand)
		if !ok {
			log.Error("missing or empty dungeon text", "text_type", string(ev.Text))
			missed++
			continue
		}
		h.Sink.Narrate(line)
		narrated++
	}
	return narrated, missed
}
