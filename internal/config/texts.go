package config

import (
	"log/slog"
	"sort"
)

// TextsFile is the file name of the dungeon texts in both config directories.
const TextsFile = "dungeon_texts.yaml"

// TextType is a narration category.
type TextType string

const (
	TextEnterRoom TextType = "enter_room"
	TextEmptyRoom TextType = "empty_room"
	TextLootFound TextType = "loot_found"
	TextCombat    TextType = "combat"
	TextVictory   TextType = "victory"
	TextRest      TextType = "rest"
	TextFlee      TextType = "flee"
)

// TextTypes lists the known narration categories.
var TextTypes = []TextType{
	TextEnterRoom, TextEmptyRoom, TextLootFound, TextCombat, TextVictory, TextRest, TextFlee,
}

// DungeonTexts maps each narration category to its pool of lines. An empty
// pool is allowed; narrating it is reported as an authoring gap.
type DungeonTexts map[TextType][]string

// Pool returns the lines for t; ok is false when the category is absent.
func (d DungeonTexts) Pool(t TextType) ([]string, bool) {
	lines, ok := d[t]
	return lines, ok
}

// Types returns the categories in sorted order.
func (d DungeonTexts) Types() []TextType {
	out := make([]TextType, 0, len(d))
	for t := range d {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LoadTexts layers the texts file the same way LoadGrid does, using builtin
// when no source can be loaded.
func LoadTexts(p Paths, builtin DungeonTexts, logger *slog.Logger) DungeonTexts {
	texts, _ := loadLayered(p, TextsFile, logger, ReadTexts, func() DungeonTexts { return builtin })
	return texts
}

// ReadTexts parses one texts source: a mapping of category to a list of lines.
func ReadTexts(path string) (DungeonTexts, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}
	var texts DungeonTexts
	if err := decodeStrict(data, &texts); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return texts, nil
}
