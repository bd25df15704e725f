package xerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("%w: bad move text %q", InvalidInput, "x9")
	if !errors.Is(err, InvalidInput) {
		t.Error("wrapped error should satisfy errors.Is against its sentinel")
	}
	if errors.Is(err, MissingResource) {
		t.Error("wrapped InvalidInput should not satisfy errors.Is against a different sentinel")
	}
}

func TestAssertPanicsOnFalse(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Assert(false, ...) should panic")
		}
		iv, ok := r.(InvariantPanic)
		if !ok {
			t.Fatalf("panic value is %T, want InvariantPanic", r)
		}
		if iv.Msg != "boom" {
			t.Errorf("Msg = %q, want %q", iv.Msg, "boom")
		}
	}()
	Assert(false, "boom")
}

func TestAssertPassesOnTrue(t *testing.T) {
	Assert(true, "should never panic")
}
