package utils

import (
	"regexp"
	"testing"
)

func TestHashContent(t *testing.T) {
	// sha256("")
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := HashContent(nil); got != empty {
		t.Errorf("HashContent(nil) = %s, want %s", got, empty)
	}
	if HashContent([]byte("a")) == HashContent([]byte("b")) {
		t.Error("different inputs should not share a hash")
	}
	if got := HashContent([]byte("same")); got != HashContent([]byte("same")) {
		t.Errorf("HashContent is not stable: %s", got)
	}
}

func TestShortHash(t *testing.T) {
	if got := ShortHash("abc"); got != "abc" {
		t.Errorf("ShortHash(abc) = %s", got)
	}
	if got := ShortHash(HashContent(nil)); got != "e3b0c44298fc" {
		t.Errorf("ShortHash = %s, want e3b0c44298fc", got)
	}
}

func TestNewID(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if !re.MatchString(id) {
			t.Errorf("NewID() = %s, not a v4 uuid", id)
		}
		if seen[id] {
			t.Errorf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestValidID(t *testing.T) {
	if !ValidID(NewID()) {
		t.Error("ValidID rejected a fresh id")
	}
	if ValidID("not-a-uuid") {
		t.Error("ValidID accepted garbage")
	}
}
