package keyboard

import (
	"errors"
	"testing"
)

func countingBuilder(builds *int) Builder {
	return func(id ID) (*Keyboard, error) {
		*builds++
		return &Keyboard{ID: id}, nil
	}
}

func TestCacheBuildsOncePerID(t *testing.T) {
	builds := 0
	c, err := NewCache(4, countingBuilder(&builds))
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	id := ID{LayoutRes: 1, Mode: ModeText}
	first, err := c.GetOrBuild(id)
	if err != nil {
		t.Fatalf("GetOrBuild() error = %v", err)
	}
	second, err := c.GetOrBuild(id)
	if err != nil {
		t.Fatalf("GetOrBuild() error = %v", err)
	}

	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}
	if first != second {
		t.Error("GetOrBuild() should return the cached instance")
	}
}

func TestCachePurge(t *testing.T) {
	builds := 0
	c, _ := NewCache(4, countingBuilder(&builds))

	id := ID{LayoutRes: 1}
	_, _ = c.GetOrBuild(id)
	c.Purge()

	if got := c.Len(); got != 0 {
		t.Errorf("Len() after purge = %d, want 0", got)
	}
	_, _ = c.GetOrBuild(id)
	if builds != 2 {
		t.Errorf("builds = %d, want 2 (rebuilt after purge)", builds)
	}
}

func TestCacheBounded(t *testing.T) {
	builds := 0
	c, _ := NewCache(2, countingBuilder(&builds))

	for res := 0; res < 5; res++ {
		if _, err := c.GetOrBuild(ID{LayoutRes: res}); err != nil {
			t.Fatalf("GetOrBuild() error = %v", err)
		}
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestCacheBuilderError(t *testing.T) {
	wantErr := errors.New("bad layout")
	c, _ := NewCache(2, func(id ID) (*Keyboard, error) {
		return nil, wantErr
	})

	_, err := c.GetOrBuild(ID{LayoutRes: 1})
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrBuild() error = %v, want wrapped %v", err, wantErr)
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0 (failed builds not cached)", got)
	}
}

func TestCacheDefaultSize(t *testing.T) {
	c, err := NewCache(0, countingBuilder(new(int)))
	if err != nil {
		t.Fatalf("NewCache(0) error = %v", err)
	}
	if c == nil {
		t.Fatal("NewCache(0) returned nil cache")
	}
}
