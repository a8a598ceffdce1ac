package reactor

import "testing"

func TestNextUnitID_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NextUnitID()
		if seen[id] {
			t.Fatalf("NextUnitID returned duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestNextStepID_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NextStepID()
		if seen[id] {
			t.Fatalf("NextStepID returned duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestEncodeID_FixedWidthLexicalOrder(t *testing.T) {
	a := encodeID(1)
	b := encodeID(2)
	c := encodeID(36)

	if len(a) != idWidth || len(b) != idWidth || len(c) != idWidth {
		t.Fatalf("expected all ids to be %d chars wide, got %d, %d, %d", idWidth, len(a), len(b), len(c))
	}
	if !(a < b) {
		t.Errorf("expected %q < %q", a, b)
	}
	if !(b < c) {
		t.Errorf("expected %q < %q", b, c)
	}
}

func TestEncodeID_WidensPastIDWidth(t *testing.T) {
	big := encodeID(1<<42 + 1)
	if len(big) <= idWidth {
		t.Fatalf("expected an id wider than %d for a large counter value, got %q", idWidth, big)
	}
}
