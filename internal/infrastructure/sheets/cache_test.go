package sheets

import (
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache(60 * time.Second)
	c.now = func() time.Time { return now }

	c.Set("Jobs:jobs_for_date:2025-01-01", []Record{{Row: 2}})
	c.Set("Quotes:all", []Record{{Row: 2}, {Row: 3}})

	if recs, ok := c.Get("Jobs:jobs_for_date:2025-01-01"); !ok || len(recs) != 1 {
		t.Fatalf("expected cached jobs, got %v %v", recs, ok)
	}

	now = now.Add(59 * time.Second)
	if _, ok := c.Get("Quotes:all"); !ok {
		t.Fatalf("entry should still be fresh")
	}

	now = now.Add(time.Second)
	if _, ok := c.Get("Quotes:all"); ok {
		t.Fatalf("entry should expire at the TTL")
	}

	c.Set("Quotes:all", nil)
	c.InvalidateTable("Jobs")
	if _, ok := c.Get("Jobs:jobs_for_date:2025-01-01"); ok {
		t.Fatalf("jobs entries should be invalidated")
	}
	if c.Len() != 1 {
		t.Fatalf("quotes entry should survive, len=%d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache")
	}

	disabled := NewCache(0)
	disabled.Set("Jobs:x", []Record{{Row: 2}})
	if _, ok := disabled.Get("Jobs:x"); ok {
		t.Fatalf("zero TTL disables caching")
	}
}

func TestCache_SetIfCurrent(t *testing.T) {
	c := NewCache(time.Minute)

	gen := c.Generation("Jobs")
	c.InvalidateTable("Jobs")
	if c.SetIfCurrent("Jobs", gen, "Jobs:all", []Record{{Row: 2}}) {
		t.Fatalf("result read before the invalidation must be dropped")
	}
	if _, ok := c.Get("Jobs:all"); ok {
		t.Fatalf("stale entry was stored")
	}

	gen = c.Generation("Jobs")
	c.InvalidateTable("Quotes")
	if !c.SetIfCurrent("Jobs", gen, "Jobs:all", []Record{{Row: 2}}) {
		t.Fatalf("writes to other tables must not block caching")
	}

	gen = c.Generation("Jobs")
	c.Clear()
	if c.SetIfCurrent("Jobs", gen, "Jobs:all", nil) {
		t.Fatalf("clear must invalidate in-flight scans")
	}
}
