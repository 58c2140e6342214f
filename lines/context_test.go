package lines

import (
	"reflect"
	"testing"

	"github.com/tsawler/fintab/model"
)

func makeLines(tops ...float64) []model.Line {
	result := make([]model.Line, len(tops))
	for i, top := range tops {
		result[i] = model.Line{Text: textFor(top), Top: top}
	}
	return result
}

func textFor(top float64) string {
	return "line@" + itoa(int(top))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestContext_AboveReadingOrder(t *testing.T) {
	all := makeLines(10, 30, 50, 70, 300)

	above, _ := Context(all, 100, 200, 3)

	// Nearest three lines above, returned top-to-bottom.
	want := []string{"line@30", "line@50", "line@70"}
	if !reflect.DeepEqual(above, want) {
		t.Errorf("Expected above %v, got %v", want, above)
	}
}

func TestContext_BelowReadingOrder(t *testing.T) {
	all := makeLines(210, 400, 250, 230)

	_, below := Context(all, 100, 200, 2)

	want := []string{"line@210", "line@230"}
	if !reflect.DeepEqual(below, want) {
		t.Errorf("Expected below %v, got %v", want, below)
	}
}

func TestContext_StrictBounds(t *testing.T) {
	// Lines exactly at the table's top or bottom belong to the table, not
	// the context.
	all := makeLines(100, 150, 200)

	above, below := Context(all, 100, 200, 5)

	if len(above) != 0 {
		t.Errorf("Expected no lines above, got %v", above)
	}
	if len(below) != 0 {
		t.Errorf("Expected no lines below, got %v", below)
	}
}

func TestContext_ShorterThanRequested(t *testing.T) {
	all := makeLines(50, 250)

	above, below := Context(all, 100, 200, 10)

	if len(above) != 1 || len(below) != 1 {
		t.Errorf("Expected 1 line each side, got %d above / %d below", len(above), len(below))
	}
}

func TestContext_ZeroCount(t *testing.T) {
	all := makeLines(50, 250)

	above, below := Context(all, 100, 200, 0)

	if above != nil || below != nil {
		t.Errorf("Expected empty context for zero count, got %v / %v", above, below)
	}
}
