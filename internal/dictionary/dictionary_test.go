package dictionary

import (
	"strings"
	"testing"
)

func TestLoadSkipsEmptyLines(t *testing.T) {
	src := "งาน\n\nงานบ้าน\nการงาน\n\n"

	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	sealed := m.Seal()
	for _, word := range []string{"งาน", "งานบ้าน", "การงาน"} {
		if !sealed.Contains(word) {
			t.Errorf("expected dictionary to contain %q", word)
		}
	}
	if sealed.Contains("") {
		t.Errorf("empty line should not have been inserted as a word")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("./testdata/does-not-exist.txt")
	if err == nil {
		t.Fatalf("expected error loading a missing dictionary file")
	}
}
