package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	got := Inset(image.Rect(0, 0, 100, 50), 10)
	if want := image.Rect(10, 10, 90, 40); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if got := Inset(image.Rect(0, 0, 10, 10), 0); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("Inset(0) = %v", got)
	}
}

func TestSplitHorizontalClamps(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 10, 20), 50)
	if top != image.Rect(0, 0, 10, 20) || !bottom.Empty() {
		t.Errorf("top = %v, bottom = %v", top, bottom)
	}
}

func TestGrid(t *testing.T) {
	cells := Grid(image.Rect(0, 0, 300, 200), 5, 3)
	if len(cells) != 5 {
		t.Fatalf("len = %d", len(cells))
	}
	want := []image.Rectangle{
		image.Rect(0, 0, 100, 100),
		image.Rect(100, 0, 200, 100),
		image.Rect(200, 0, 300, 100),
		image.Rect(0, 100, 100, 200),
		image.Rect(100, 100, 200, 200),
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, cells[i], want[i])
		}
	}
	if Grid(image.Rect(0, 0, 10, 10), 0, 3) != nil {
		t.Error("Grid with n=0 should be nil")
	}
}

func TestFitSquareCentres(t *testing.T) {
	got := FitSquare(image.Rect(0, 0, 100, 40))
	if want := image.Rect(30, 0, 70, 40); got != want {
		t.Errorf("FitSquare = %v, want %v", got, want)
	}
}

func TestCenterClamps(t *testing.T) {
	got := Center(image.Rect(10, 10, 20, 20), 50, 4)
	if want := image.Rect(10, 13, 20, 17); got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}
