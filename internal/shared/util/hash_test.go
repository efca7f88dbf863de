package util

import "testing"

func TestSum256Hex(t *testing.T) {
	data := []byte("resume file contents")
	got := Sum256Hex(data)
	if got != Sum256Hex(data) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if got == Sum256Hex([]byte("other contents")) {
		t.Fatalf("expected different inputs to hash differently")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
