// Package glyph defines the bullet and signifier symbols used for planner
// page content.
package glyph

import (
	"fmt"
	"strings"
)

// Glyph describes one renderable bullet or signifier.
type Glyph struct {
	Symbol    string
	Noun      string
	Meaning   string
	Aliases   []string
	Signifier bool
}

// DefaultBullets returns the glyph table in Bullet/Signifier index order.
func DefaultBullets() []Glyph {
	return []Glyph{
		{Symbol: "●", Noun: "task", Meaning: "task to do", Aliases: []string{"task", "tasks", "t"}},
		{Symbol: "✘", Noun: "completed", Meaning: "task completed", Aliases: []string{"completed", "complete", "done", "x"}},
		{Symbol: "⦵", Noun: "struck", Meaning: "task no longer relevant", Aliases: []string{"struck", "strike", "irrelevant"}},
		{Symbol: "⁃", Noun: "note", Meaning: "note", Aliases: []string{"note", "notes", "n"}},
		{Symbol: "○", Noun: "event", Meaning: "event", Aliases: []string{"event", "events", "e"}},
		{Symbol: "", Noun: "any", Meaning: "any bullet", Aliases: []string{"any", "all"}},
		{Symbol: "✷", Noun: "priority", Meaning: "priority", Aliases: []string{"priority", "*"}, Signifier: true},
		{Symbol: "!", Noun: "inspiration", Meaning: "inspiration", Aliases: []string{"inspiration", "!"}, Signifier: true},
		{Symbol: " ", Noun: "none", Meaning: "no signifier", Aliases: []string{"none"}, Signifier: true},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

// Bullet indexes the non-signifier glyphs.
type Bullet int

// Signifier indexes the signifier glyphs.
type Signifier int

const (
	Task Bullet = iota
	Completed
	Struck
	Note
	Event
	Any
	Priority Signifier = iota
	Inspiration
	None
)

func (b Bullet) Glyph() Glyph {
	return DefaultBullets()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

func (s Signifier) Glyph() Glyph {
	return DefaultBullets()[s]
}

func (s Signifier) String() string {
	return s.Glyph().String()
}

// BulletForAlias resolves a user-supplied noun or alias to its bullet.
func BulletForAlias(alias string) (Bullet, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for i, g := range DefaultBullets() {
		if g.Signifier {
			continue
		}
		for _, a := range g.Aliases {
			if a == needle {
				return Bullet(i), nil
			}
		}
	}
	return Any, fmt.Errorf("glyph: unknown bullet %q", alias)
}
