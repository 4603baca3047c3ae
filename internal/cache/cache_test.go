package cache

import (
	"testing"

	"github.com/augur-dev/augur/pkg/models"
)

const allCategories = "security+quality+performance"

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(t.TempDir(), 24, true)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func sampleResult() *models.FileResult {
	return &models.FileResult{
		Path:     "src/main.py",
		Language: "python",
		Scores:   models.Scores{Security: 80, Quality: 100, Performance: 100},
	}
}

func TestCacheRoundtrip(t *testing.T) {
	c := newTestCache(t)
	if err := c.SetResult("src/main.py", "hash-a", allCategories, sampleResult()); err != nil {
		t.Fatal(err)
	}

	got, ok := c.GetResult("src/main.py", "hash-a", allCategories)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Path != "src/main.py" || got.Scores.Security != 80 {
		t.Errorf("cached result mangled: %+v", got)
	}
}

func TestCacheHashMismatch(t *testing.T) {
	c := newTestCache(t)
	if err := c.SetResult("src/main.py", "hash-a", allCategories, sampleResult()); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.GetResult("src/main.py", "hash-b", allCategories); ok {
		t.Error("changed content should miss the cache")
	}
}

func TestCacheScopeMismatch(t *testing.T) {
	c := newTestCache(t)
	if err := c.SetResult("src/main.py", "hash-a", allCategories, sampleResult()); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.GetResult("src/main.py", "hash-a", "quality+performance"); ok {
		t.Error("a result cached under one category set should miss under another")
	}
}

func TestCacheMissingKey(t *testing.T) {
	c := newTestCache(t)
	if _, ok := c.GetResult("never/stored.py", "hash", allCategories); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestCacheDisabled(t *testing.T) {
	c, err := New("", 24, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetResult("a.py", "h", allCategories, sampleResult()); err != nil {
		t.Errorf("disabled cache writes should be no-ops, got %v", err)
	}
	if _, ok := c.GetResult("a.py", "h", allCategories); ok {
		t.Error("disabled cache should never hit")
	}
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t)
	if err := c.SetResult("a.py", "h", allCategories, sampleResult()); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.GetResult("a.py", "h", allCategories); ok {
		t.Error("cleared cache should miss")
	}
}
