package component

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EquipmentSlot identifies one region of the equipment panel.
type EquipmentSlot uint8

const (
	SlotNone     EquipmentSlot = iota // 0, not equippable
	SlotHead                          // 1
	SlotBody                          // 2
	SlotFeet                          // 3
	SlotMainHand                      // 4
	SlotOffHand                       // 5
)

// EquipmentSlots lists every real slot in panel order.
var EquipmentSlots = []EquipmentSlot{SlotHead, SlotBody, SlotFeet, SlotMainHand, SlotOffHand}

var slotNames = map[EquipmentSlot]string{
	SlotHead:     "head",
	SlotBody:     "body",
	SlotFeet:     "feet",
	SlotMainHand: "main_hand",
	SlotOffHand:  "off_hand",
}

// String returns the configuration name of the slot.
func (s EquipmentSlot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	if s == SlotNone {
		return "none"
	}
	return fmt.Sprintf("slot(%d)", uint8(s))
}

// ParseEquipmentSlot maps a configuration name back to its slot.
func ParseEquipmentSlot(name string) (EquipmentSlot, error) {
	for _, s := range EquipmentSlots {
		if slotNames[s] == name {
			return s, nil
		}
	}
	return SlotNone, fmt.Errorf("unknown equipment slot %q", name)
}

// MarshalYAML writes the slot by name.
func (s EquipmentSlot) MarshalYAML() (interface{}, error) {
	if _, ok := slotNames[s]; !ok {
		return nil, fmt.Errorf("cannot encode equipment slot %d", uint8(s))
	}
	return s.String(), nil
}

// UnmarshalYAML reads a slot by name, rejecting anything outside the enumeration.
func (s *EquipmentSlot) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	slot, err := ParseEquipmentSlot(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = slot
	return nil
}
