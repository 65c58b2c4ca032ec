package terminal

import "testing"

func TestCtrlKey(t *testing.T) {
	cases := []struct {
		k    rune
		want int
	}{
		{'q', 0x11},
		{'Q', 0x11},
		{'a', 0x01},
		{'s', 0x13},
		{'f', 0x06},
	}
	for _, c := range cases {
		if got := CtrlKey(c.k); got != c.want {
			t.Errorf("CtrlKey(%q) = %#x, want %#x", c.k, got, c.want)
		}
	}
}

func TestVirtualKeysDoNotCollideWithBytes(t *testing.T) {
	keys := []int{ArrowLeft, ArrowRight, ArrowUp, ArrowDown, DelKey, HomeKey, EndKey, PageUp, PageDown}
	seen := map[int]bool{}
	for _, k := range keys {
		if k < 256 {
			t.Errorf("virtual key %d collides with the byte range", k)
		}
		if seen[k] {
			t.Errorf("duplicate virtual key value %d", k)
		}
		seen[k] = true
	}
}
