package imdb

import "testing"

func TestMappingInsertionOrder(t *testing.T) {
	m := NewMapping[string]()
	m.Set("b", "id1")
	m.Set("a", "id2")
	m.Set("c", "id3")

	want := []string{"b", "a", "c"}
	keys := m.Keys()
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], key)
		}
	}
}

func TestMappingOverwriteKeepsPosition(t *testing.T) {
	m := NewMapping[string]()
	m.Set("a", "id1")
	m.Set("b", "id2")
	m.Set("a", "id3")

	if m.Len() != 2 {
		t.Fatalf("len = %d, want 2", m.Len())
	}
	if id, _ := m.Get("a"); id != "id3" {
		t.Errorf("a = %q, want id3", id)
	}
	if keys := m.Keys(); keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys = %v, want [a b]", keys)
	}
}
