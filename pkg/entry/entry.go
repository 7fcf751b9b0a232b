// Package entry models the journal content attached to planner pages.
package entry

import (
	"fmt"
	"time"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/glyph"
)

// Entry is one bullet of page content. Collection is the page's collection
// name (see page.Descriptor.Collection); entries never influence navigation.
type Entry struct {
	ID         string          `json:"id,omitempty"`
	Collection string          `json:"collection"`
	Signifier  glyph.Signifier `json:"signifier,omitempty"`
	Bullet     glyph.Bullet    `json:"bullet,omitempty"`
	Message    string          `json:"message,omitempty"`
	Created    Timestamp       `json:"created,omitempty"`
	On         *Timestamp      `json:"on,omitempty"` // optional scheduled date
}

// New creates an entry stamped with the current time.
func New(collection string, bullet glyph.Bullet, message string) *Entry {
	return &Entry{
		Collection: collection,
		Signifier:  glyph.None,
		Bullet:     bullet,
		Message:    message,
		Created:    Timestamp{Time: time.Now()},
	}
}

// Title returns the owning collection name.
func (e *Entry) Title() string {
	return e.Collection
}

// Row returns the signifier, bullet, and message columns for table output.
func (e *Entry) Row() (string, string, string) {
	return e.Signifier.String(), e.Bullet.String(), e.Message
}

func (e *Entry) String() string {
	switch e.Bullet {
	case glyph.Completed:
		return fmt.Sprintf("%s %s  %s", glyph.None.String(), e.Bullet.String(), e.Message)
	default:
		return fmt.Sprintf("%s %s  %s", e.Signifier.String(), e.Bullet.String(), e.Message)
	}
}
