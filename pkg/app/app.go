// Package app provides high-level operations over page content so the CLI
// and TUI can share logic. Content is always fetched for a page the
// navigation core has already resolved; nothing here feeds back into
// navigation.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/entry"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/glyph"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/store"
)

// Service wraps persistence for page content operations.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// EntriesForPage lists the entries stored against a page's collection.
func (s *Service) EntriesForPage(ctx context.Context, d page.Descriptor) ([]*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.List(ctx, d.Collection()), nil
}

// EntryDates returns the set of days in a month that carry at least one
// entry, keyed by day of month. Month pages use it to mark busy days.
func (s *Service) EntryDates(ctx context.Context, d page.Descriptor) (map[int]bool, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	if d.Kind != page.KindMonth {
		return nil, nil
	}
	days := make(map[int]bool)
	for name, entries := range s.Persistence.MapAll(ctx) {
		if len(entries) == 0 {
			continue
		}
		t, err := parseDayCollection(name)
		if err != nil {
			continue
		}
		if t.Year() == d.Year && t.Month() == d.Month {
			days[t.Day()] = true
		}
	}
	return days, nil
}

// Add creates and stores a new entry on a page.
func (s *Service) Add(ctx context.Context, d page.Descriptor, b glyph.Bullet, msg string, sig glyph.Signifier) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	e := entry.New(d.Collection(), b, msg)
	e.Signifier = sig
	if err := s.Persistence.Store(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Complete marks the entry with the given id completed.
func (s *Service) Complete(ctx context.Context, id string) (*entry.Entry, error) {
	return s.setBullet(ctx, id, glyph.Completed)
}

// Strike marks the entry with the given id irrelevant.
func (s *Service) Strike(ctx context.Context, id string) (*entry.Entry, error) {
	return s.setBullet(ctx, id, glyph.Struck)
}

func (s *Service) setBullet(ctx context.Context, id string, b glyph.Bullet) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	for _, e := range s.Persistence.ListAll(ctx) {
		if e.ID == id {
			e.Bullet = b
			if err := s.Persistence.Store(e); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, errors.New("app: entry not found")
}

// parseDayCollection parses day-page collection names ("January 2, 2006").
func parseDayCollection(name string) (time.Time, error) {
	return time.Parse("January 2, 2006", name)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
