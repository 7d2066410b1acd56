package registry

import "testing"

func TestRegisterDeduplicatesIdenticalSource(t *testing.T) {
	r := New()
	e1 := r.Register("EXIF:FocalLength", `sprintf("%.1f mm", $val)`, func() {})
	e2 := r.Register("EXIF:LensInfo", `sprintf("%.1f mm", $val)`, func() {})

	if e1 != e2 {
		t.Fatal("expected identical source to reuse the same entry")
	}
	if len(e1.TagKeys) != 2 {
		t.Errorf("expected 2 tag keys sharing the entry, got %d", len(e1.TagKeys))
	}
	stats := r.Stats()
	if stats.UniqueEntries != 1 || stats.Duplicates != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestShardGroupsByHashPrefix(t *testing.T) {
	r := New()
	r.Register("A", "expr-a", nil)
	r.Register("B", "expr-b", nil)
	shards := r.Shard()
	total := 0
	for prefix, entries := range shards {
		if len(prefix) != 2 {
			t.Errorf("expected 2-char shard prefix, got %q", prefix)
		}
		total += len(entries)
	}
	if total != 2 {
		t.Errorf("expected 2 total entries across shards, got %d", total)
	}
}

func TestEmitAllIsSortedByHash(t *testing.T) {
	r := New()
	r.Register("A", "expr-a", nil)
	r.Register("B", "expr-b", nil)
	all := r.EmitAll()
	if len(all) != 2 || all[0].Hash > all[1].Hash {
		t.Errorf("expected sorted output, got %v", all)
	}
}
