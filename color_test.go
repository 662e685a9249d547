package outboard

import (
	"image/color"
	"testing"
)

func TestNewColor(t *testing.T) {
	c := NewColor(10, 20, 30, 40)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 40 {
		t.Errorf("NewColor(10,20,30,40) = %+v", c)
	}
}

func TestColorValueSemantics(t *testing.T) {
	a := NewColor(1, 2, 3, 4)
	b := a
	b.R = 99
	if a.R != 1 {
		t.Error("copying a Color must not alias the original")
	}
	if a != NewColor(1, 2, 3, 4) {
		t.Error("equal channel values must compare equal")
	}
}

func TestColorStd(t *testing.T) {
	c := NewColor(255, 128, 0, 255)
	got := c.Std()
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("Std() = %v, want %v", got, want)
	}
}

func TestColorRGBAConversion(t *testing.T) {
	c := NewColor(255, 0, 0, 255)
	rgba := c.rgba()
	if rgba.R != 1 || rgba.G != 0 || rgba.B != 0 || rgba.A != 1 {
		t.Errorf("rgba() = %+v, want {1 0 0 1}", rgba)
	}
}
