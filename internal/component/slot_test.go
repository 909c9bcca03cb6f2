package component

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseEquipmentSlotRoundTrip(t *testing.T) {
	for _, s := range EquipmentSlots {
		got, err := ParseEquipmentSlot(s.String())
		if err != nil {
			t.Fatalf("ParseEquipmentSlot(%q): %v", s.String(), err)
		}
		if got != s {
			t.Fatalf("ParseEquipmentSlot(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

func TestParseEquipmentSlotRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "none", "Head", "ring"} {
		if _, err := ParseEquipmentSlot(name); err == nil {
			t.Errorf("ParseEquipmentSlot(%q) should fail", name)
		}
	}
}

func TestEquipmentSlotYAMLKeys(t *testing.T) {
	in := map[EquipmentSlot]int{SlotHead: 1, SlotOffHand: 2}
	out, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), "head: 1") || !strings.Contains(string(out), "off_hand: 2") {
		t.Fatalf("unexpected encoding:\n%s", out)
	}

	var back map[EquipmentSlot]int
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || back[SlotHead] != 1 || back[SlotOffHand] != 2 {
		t.Fatalf("round trip = %v", back)
	}
}

func TestEquipmentSlotYAMLUnknownKeyFails(t *testing.T) {
	var m map[EquipmentSlot]int
	if err := yaml.Unmarshal([]byte("tail: 3\n"), &m); err == nil {
		t.Fatal("expected unknown slot to fail decoding")
	}
}

func TestSlotNoneCannotBeEncoded(t *testing.T) {
	if _, err := yaml.Marshal(map[EquipmentSlot]int{SlotNone: 1}); err == nil {
		t.Fatal("SlotNone must not be written to configuration")
	}
}
