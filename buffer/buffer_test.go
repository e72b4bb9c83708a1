package buffer

import (
	"bytes"
	"testing"
)

func TestNew(t *testing.T) {
	b := New(16)
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
	if b.Cap() != 16 {
		t.Errorf("Cap = %d, want 16", b.Cap())
	}
	if len(b.Bytes()) != 0 {
		t.Errorf("Bytes length = %d, want 0", len(b.Bytes()))
	}
	if len(b.Storage()) != 16 {
		t.Errorf("Storage length = %d, want 16", len(b.Storage()))
	}
}

func TestNew_NegativeCapacity(t *testing.T) {
	b := New(-1)
	if b.Cap() != 0 || b.Len() != 0 {
		t.Errorf("negative capacity: Len=%d Cap=%d, want 0/0", b.Len(), b.Cap())
	}
}

func TestSetLen(t *testing.T) {
	b := New(8)
	copy(b.Storage(), "abcde")

	if err := b.SetLen(5); err != nil {
		t.Fatalf("SetLen(5) failed: %v", err)
	}
	if !bytes.Equal(b.Bytes(), []byte("abcde")) {
		t.Errorf("Bytes = %q, want abcde", b.Bytes())
	}

	// Length can shrink
	if err := b.SetLen(2); err != nil {
		t.Fatalf("SetLen(2) failed: %v", err)
	}
	if !bytes.Equal(b.Bytes(), []byte("ab")) {
		t.Errorf("Bytes = %q, want ab", b.Bytes())
	}
}

func TestSetLen_OutOfRange(t *testing.T) {
	b := New(4)
	if err := b.SetLen(5); err == nil {
		t.Error("SetLen beyond capacity should fail")
	}
	if err := b.SetLen(-1); err == nil {
		t.Error("SetLen negative should fail")
	}
	if b.Len() != 0 {
		t.Errorf("failed SetLen must not change length, got %d", b.Len())
	}
}

func TestFromBytes(t *testing.T) {
	src := []byte("hello")
	b := FromBytes(src)
	if b.Len() != 5 || b.Cap() != 5 {
		t.Errorf("Len=%d Cap=%d, want 5/5", b.Len(), b.Cap())
	}
	if !bytes.Equal(b.Bytes(), src) {
		t.Errorf("Bytes = %q, want %q", b.Bytes(), src)
	}
}

func TestZeroValue(t *testing.T) {
	var b Buffer
	if b.Len() != 0 || b.Cap() != 0 {
		t.Errorf("zero value: Len=%d Cap=%d", b.Len(), b.Cap())
	}
	if err := b.SetLen(0); err != nil {
		t.Errorf("SetLen(0) on zero value failed: %v", err)
	}
}

func TestString(t *testing.T) {
	b := New(8)
	b.SetLen(3)
	want := "buffer(len=3 cap=8)"
	if got := b.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
