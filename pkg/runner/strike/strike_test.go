package strike

import (
	"context"
	"testing"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/entry"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/glyph"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

type fakePersistence struct {
	data map[string][]*entry.Entry
}

func (f *fakePersistence) MapAll(ctx context.Context) map[string][]*entry.Entry { return f.data }

func (f *fakePersistence) ListAll(ctx context.Context) []*entry.Entry {
	var all []*entry.Entry
	for _, entries := range f.data {
		all = append(all, entries...)
	}
	return all
}

func (f *fakePersistence) List(ctx context.Context, collection string) []*entry.Entry {
	return f.data[collection]
}

func (f *fakePersistence) Collections(ctx context.Context, prefix string) []string { return nil }
func (f *fakePersistence) Store(e *entry.Entry) error                              { return nil }
func (f *fakePersistence) Delete(e *entry.Entry) error                             { return nil }
func (f *fakePersistence) Watch(ctx context.Context) (<-chan store.Event, error)   { return nil, nil }

var _ store.Persistence = (*fakePersistence)(nil)

func TestDoStrikesEntry(t *testing.T) {
	e := entry.New("March 15, 2026", glyph.Task, "reorganize the shed")
	e.ID = "b99dca171dff69f8"
	fp := &fakePersistence{data: map[string][]*entry.Entry{e.Collection: {e}}}

	s := Strike{ID: e.ID, Persistence: fp}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if e.Bullet != glyph.Struck {
		t.Fatalf("bullet = %v, want struck", e.Bullet)
	}
}

func TestDoNoPersistence(t *testing.T) {
	s := Strike{ID: "b99dca171dff69f8"}
	if err := s.Do(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
}
