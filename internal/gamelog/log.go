// Package gamelog records the player-facing gameplay messages of a session.
package gamelog

import "cinder-roguelike/internal/content"

// Entry is one formatted log line.
type Entry struct {
	ID   content.MessageID
	Args []any
	Text string
}

// Log is an append-only list of entries with optional listeners.
type Log struct {
	catalog   *content.Catalog
	entries   []Entry
	listeners []func(Entry)
}

// New returns an empty log that formats through catalog.
func New(catalog *content.Catalog) *Log {
	return &Log{catalog: catalog}
}

// Add formats and appends an entry, then notifies listeners.
func (l *Log) Add(id content.MessageID, args ...any) {
	e := Entry{ID: id, Args: args, Text: l.catalog.Format(id, args...)}
	l.entries = append(l.entries, e)
	for _, fn := range l.listeners {
		fn(e)
	}
}

// Subscribe registers fn to receive every later entry.
func (l *Log) Subscribe(fn func(Entry)) {
	l.listeners = append(l.listeners, fn)
}

// TurnStart logs the start of turn n.
func (l *Log) TurnStart(n int) { l.Add(content.TurnStart, n) }

// TurnEnd logs the end of turn n.
func (l *Log) TurnEnd(n int) { l.Add(content.TurnEnd, n) }

// Entries returns a copy of every entry.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// IDs returns the message id of every entry.
func (l *Log) IDs() []content.MessageID {
	out := make([]content.MessageID, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.ID
	}
	return out
}

// Texts returns the formatted text of every entry.
func (l *Log) Texts() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Text
	}
	return out
}

// Tail returns up to the last n texts, oldest first.
func (l *Log) Tail(n int) []string {
	texts := l.Texts()
	if n < len(texts) {
		texts = texts[len(texts)-n:]
	}
	return texts
}

// Catalog returns the catalog entries are formatted with.
func (l *Log) Catalog() *content.Catalog { return l.catalog }
