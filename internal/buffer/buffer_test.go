package buffer

import (
	"fmt"
	"testing"
)

func TestOutputAccumulates(t *testing.T) {
	o := New()
	o.WriteString("abc")
	o.Append([]byte("def"))
	if err := o.WriteByte('!'); err != nil {
		t.Fatalf("WriteByte returned %v", err)
	}
	want := "abcdef!"
	if got := string(o.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestOutputSatisfiesIOWriter(t *testing.T) {
	o := New()
	fmt.Fprintf(o, "%d rows", 24)
	if got := string(o.Bytes()); got != "24 rows" {
		t.Errorf("Bytes() = %q, want %q", got, "24 rows")
	}
}

func TestOutputFree(t *testing.T) {
	o := New()
	o.WriteString("leftover")
	o.Free()
	if len(o.Bytes()) != 0 {
		t.Errorf("expected empty buffer after Free, got %q", o.Bytes())
	}
}
