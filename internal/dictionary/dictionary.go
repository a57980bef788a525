// Package dictionary loads dictionary entries from a plain-text source into
// a trie builder, one entry per line.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"thaitok/trie"
)

// LoadFile opens path and inserts each non-empty line into a freshly built
// mutable trie. Lines are trimmed of their line ending ("\n" or "\r\n") only; empty
// lines are skipped for robustness. The only error this ever returns is the
// underlying I/O failure from opening or reading the file.
func LoadFile(path string) (*trie.Mutable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
	}
	return t, nil
}

// Load reads words, one per line, from r and inserts each into a freshly
// built mutable trie.
func Load(r io.Reader) (*trie.Mutable, error) {
	t := trie.NewMutable()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		t.Insert(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
