package trie

import (
	"sort"
	"testing"
)

func TestInsertAndContains(t *testing.T) {
	words := []string{
		"งาน", "งานบ้าน", "งานกลุ่ม", "งานเรือน",
		"การงาน", "การบ้าน", "งาช้าง",
	}

	m := NewMutable()
	for _, w := range words {
		m.Insert(w)
	}
	sealed := m.Seal()

	for _, w := range words {
		if !sealed.Contains(w) {
			t.Errorf("expected sealed trie to contain %q", w)
		}
	}

	for _, absent := range []string{"กา", "งา", "บ้าน", ""} {
		if sealed.Contains(absent) {
			t.Errorf("did not expect sealed trie to contain %q", absent)
		}
	}
}

func TestTrieShape(t *testing.T) {
	// D = { "งาน", "งานบ้าน", "งานกลุ่ม", "งานเรือน", "การงาน", "การบ้าน", "งาช้าง" }
	words := []string{
		"งาน", "งานบ้าน", "งานกลุ่ม", "งานเรือน",
		"การงาน", "การบ้าน", "งาช้าง",
	}

	m := NewMutable()
	for _, w := range words {
		m.Insert(w)
	}

	if len(m.root.children) != 2 {
		t.Fatalf("expected 2 top-level roots, got %d", len(m.root.children))
	}

	var kan, nga *mutableNode
	for _, c := range m.root.children {
		switch c.label {
		case "การ":
			kan = c
		case "งา":
			nga = c
		}
	}
	if kan == nil || nga == nil {
		t.Fatalf("expected roots \"การ\" and \"งา\", got labels %q, %q", m.root.children[0].label, m.root.children[1].label)
	}

	if kan.terminal {
		t.Errorf("\"การ\" should not be terminal")
	}
	kanLabels := childLabels(kan)
	sort.Strings(kanLabels)
	if got, want := kanLabels, []string{"บ้าน", "งาน"}; !sameSet(got, want) {
		t.Errorf("\"การ\" children = %v, want %v", got, want)
	}
	for _, c := range kan.children {
		if !c.terminal {
			t.Errorf("%q under \"การ\" should be terminal", c.label)
		}
	}

	ngaLabels := childLabels(nga)
	if got, want := ngaLabels, []string{"ช้าง", "น"}; !sameSet(got, want) {
		t.Errorf("\"งา\" children = %v, want %v", got, want)
	}

	var n *mutableNode
	for _, c := range nga.children {
		if c.label == "น" {
			n = c
		}
	}
	if n == nil {
		t.Fatalf("expected child \"น\" under \"งา\"")
	}
	if !n.terminal {
		t.Errorf("\"น\" should be terminal (word \"งาน\")")
	}
	nLabels := childLabels(n)
	sort.Strings(nLabels)
	want := []string{"กลุ่ม", "บ้าน", "เรือน"}
	sort.Strings(want)
	if !sameSet(nLabels, want) {
		t.Errorf("\"น\" children = %v, want %v", nLabels, want)
	}
}

func childLabels(n *mutableNode) []string {
	labels := make([]string, len(n.children))
	for i, c := range n.children {
		labels[i] = c.label
	}
	return labels
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func TestSiblingsSortedByFirstByte(t *testing.T) {
	m := NewMutable()
	for _, w := range []string{"zebra", "apple", "mango", "banana"} {
		m.Insert(w)
	}
	var last byte
	for i, c := range m.root.children {
		if i > 0 && c.label[0] <= last {
			t.Errorf("siblings not sorted: %q follows a label starting with %q", c.label, string(last))
		}
		last = c.label[0]
	}
}

func TestPrefixTerminals(t *testing.T) {
	words := []string{"กรรมกร", "เอา", "ที่", "เอาการเอางาน"}
	m := NewMutable()
	for _, w := range words {
		m.Insert(w)
	}
	sealed := m.Seal()

	text := []byte("เอากรรมกร")
	ends := sealed.PrefixTerminals(text, 0, nil)
	if len(ends) != 1 || ends[0] != len("เอา") {
		t.Fatalf("PrefixTerminals at 0 = %v, want [%d]", ends, len("เอา"))
	}
}

func TestIdempotentReinsertion(t *testing.T) {
	words := []string{"งาน", "งานบ้าน", "การงาน"}
	m1 := NewMutable()
	for _, w := range words {
		m1.Insert(w)
	}
	s1 := m1.Seal()

	m2 := NewMutable()
	for _, w := range words {
		m2.Insert(w)
		m2.Insert(w)
	}
	s2 := m2.Seal()

	for _, w := range words {
		if s1.Contains(w) != s2.Contains(w) {
			t.Errorf("re-insertion changed containment of %q", w)
		}
	}
	if s1.Stats() != s2.Stats() {
		t.Errorf("re-insertion changed trie shape: %+v vs %+v", s1.Stats(), s2.Stats())
	}
}

func TestPrefixClosure(t *testing.T) {
	m := NewMutable()
	m.Insert("งานกลุ่ม")
	sealed := m.Seal()

	ends := sealed.PrefixTerminals([]byte("งานกลุ่ม"), 0, nil)
	found := false
	for _, e := range ends {
		if e == len("งานกลุ่ม") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected prefix-terminal query to find the full word, got %v", ends)
	}
}
