package seed

import (
	"regexp"
	"strings"
	"testing"
)

var plateRe = regexp.MustCompile(`^[A-Z]\d{3}[A-Z]$`)
var digitsRe = regexp.MustCompile(`\d+`)

func TestPlateFormat(t *testing.T) {
	f := NewFakerWithSeed(42)

	for i := 0; i < 100; i++ {
		plate := f.Plate()
		if !plateRe.MatchString(plate) {
			t.Fatalf("Plate %q does not match letter-digits-letter format", plate)
		}
	}
}

func TestDeliveryDurationShapes(t *testing.T) {
	f := NewFakerWithSeed(7)

	sawParseable := false
	sawUnparseable := false
	for i := 0; i < 200; i++ {
		v := f.DeliveryDuration()
		if digitsRe.MatchString(v) {
			sawParseable = true
			if !strings.Contains(v, "min") {
				t.Errorf("Parseable duration %q missing minute marker", v)
			}
		} else {
			sawUnparseable = true
			if v != "sin datos" && v != "" {
				t.Errorf("Unexpected unparseable duration %q", v)
			}
		}
	}

	// Both shapes must occur so the parser's silent-drop path gets
	// exercised by seeded data.
	if !sawParseable {
		t.Error("No parseable durations generated")
	}
	if !sawUnparseable {
		t.Error("No unparseable durations generated")
	}
}

func TestCityAndCategoryDrawFromFixedLists(t *testing.T) {
	f := NewFakerWithSeed(11)

	cities := make(map[string]bool, len(Cities))
	for _, c := range Cities {
		cities[c] = true
	}
	categories := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		categories[c] = true
	}

	for i := 0; i < 100; i++ {
		if c := f.City(); !cities[c] {
			t.Fatalf("City %q not in fixed list", c)
		}
		if c := f.Category(); !categories[c] {
			t.Fatalf("Category %q not in fixed list", c)
		}
	}
}

func TestSeededFakerIsReproducible(t *testing.T) {
	a := NewFakerWithSeed(99)
	b := NewFakerWithSeed(99)

	for i := 0; i < 20; i++ {
		if a.Name() != b.Name() {
			t.Fatal("Same seed produced different names")
		}
		if a.Int(1, 1000) != b.Int(1, 1000) {
			t.Fatal("Same seed produced different ints")
		}
	}
}

func TestChooseEmptySlice(t *testing.T) {
	f := NewFakerWithSeed(1)

	if got := Choose(f, []string(nil)); got != "" {
		t.Errorf("Choose on empty slice = %q, want zero value", got)
	}
}
