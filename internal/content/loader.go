package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
)

// File names looked up in a content filesystem.
const (
	ItemsFile    = "items.json"
	ActorsFile   = "actors.json"
	PropsFile    = "props.json"
	MessagesGlob = "messages_*.json"
)

// ActorDef is an actor template: the player or an enemy kind.
type ActorDef struct {
	ID               string
	DisplayName      string
	SpriteID         string
	Kind             string
	FactionID        string
	Tags             []string
	HP               int
	Attack           int
	Defense          int
	Speed            int
	AIProfileID      string
	InitialInventory []InventoryEntry
}

// InventoryEntry is one starting stack of an actor.
type InventoryEntry struct {
	ItemID string
	Count  int
}

func decode(data []byte, source string, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%s: %w", source, ErrEmptyTable)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: parse: %w", source, err)
	}
	return nil
}

// requireFields reports the first empty value among the named fields.
func requireFields(source string, index int, fields ...[2]string) error {
	for _, f := range fields {
		if f[1] == "" {
			return fmt.Errorf("%s: entry %d: %w: %s is empty", source, index, ErrMissingRequired, f[0])
		}
	}
	return nil
}

// DecodeItems parses an items document.
func DecodeItems(data []byte, source string) ([]*item.Definition, error) {
	var doc ItemsDocument
	if err := decode(data, source, &doc); err != nil {
		return nil, err
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("%s: %w: items", source, ErrEmptyTable)
	}
	seen := make(map[string]bool, len(doc.Items))
	out := make([]*item.Definition, 0, len(doc.Items))
	for i, d := range doc.Items {
		if err := requireFields(source, i, [2]string{"id", d.ID}, [2]string{"name", d.Name}, [2]string{"sprite_id", d.SpriteID}); err != nil {
			return nil, err
		}
		if d.MaxStack < 0 {
			return nil, fmt.Errorf("%s: %s: %w: max_stack %d", source, d.ID, ErrInvalidField, d.MaxStack)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("%s: %w: %s", source, ErrDuplicateID, d.ID)
		}
		seen[d.ID] = true
		out = append(out, item.NewDefinition(d.ID, d.Name, d.Description, d.Category, d.Tags, d.SpriteID, d.Stackable, d.MaxStack))
	}
	return out, nil
}

// DecodeActors parses an actors document.
func DecodeActors(data []byte, source string) ([]*ActorDef, error) {
	var doc ActorsDocument
	if err := decode(data, source, &doc); err != nil {
		return nil, err
	}
	if len(doc.Actors) == 0 {
		return nil, fmt.Errorf("%s: %w: actors", source, ErrEmptyTable)
	}
	seen := make(map[string]bool, len(doc.Actors))
	out := make([]*ActorDef, 0, len(doc.Actors))
	for i, d := range doc.Actors {
		if err := requireFields(source, i, [2]string{"id", d.ID}, [2]string{"display_name", d.DisplayName}, [2]string{"sprite_id", d.SpriteID}); err != nil {
			return nil, err
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("%s: %w: %s", source, ErrDuplicateID, d.ID)
		}
		seen[d.ID] = true
		a := &ActorDef{
			ID:          d.ID,
			DisplayName: d.DisplayName,
			SpriteID:    d.SpriteID,
			Kind:        d.Kind,
			FactionID:   d.FactionID,
			Tags:        slices.Clone(d.Tags),
			HP:          d.BaseStats.HP,
			Attack:      d.BaseStats.Attack,
			Defense:     d.BaseStats.Defense,
			Speed:       d.BaseStats.Speed,
			AIProfileID: d.AIProfileID,
		}
		for _, e := range d.InitialInventory {
			if e.ItemID == "" || e.Count <= 0 {
				return nil, fmt.Errorf("%s: %s: %w: initial_inventory entry %+v", source, d.ID, ErrInvalidField, e)
			}
			a.InitialInventory = append(a.InitialInventory, InventoryEntry{ItemID: e.ItemID, Count: e.Count})
		}
		out = append(out, a)
	}
	return out, nil
}

// DecodeProps parses a props document.
func DecodeProps(data []byte, source string) ([]*gamemap.PropDef, error) {
	var doc PropsDocument
	if err := decode(data, source, &doc); err != nil {
		return nil, err
	}
	if len(doc.Props) == 0 {
		return nil, fmt.Errorf("%s: %w: props", source, ErrEmptyTable)
	}
	seen := make(map[string]bool, len(doc.Props))
	out := make([]*gamemap.PropDef, 0, len(doc.Props))
	for i, d := range doc.Props {
		if err := requireFields(source, i, [2]string{"id", d.ID}, [2]string{"display_name", d.DisplayName}, [2]string{"sprite_id", d.SpriteID}); err != nil {
			return nil, err
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("%s: %w: %s", source, ErrDuplicateID, d.ID)
		}
		seen[d.ID] = true
		out = append(out, &gamemap.PropDef{
			ID:                d.ID,
			DisplayName:       d.DisplayName,
			SpriteID:          d.SpriteID,
			BlocksMovement:    d.BlocksMovement,
			BlocksLOS:         d.BlocksLOS,
			BlocksProjectiles: d.BlocksProjectiles,
		})
	}
	return out, nil
}

// DecodeMessages parses one messages document and merges it into into.
// Ids already present in into are duplicates.
func DecodeMessages(data []byte, source string, into map[MessageID]string) error {
	var doc MessagesDocument
	if err := decode(data, source, &doc); err != nil {
		return err
	}
	if len(doc.Entries) == 0 {
		return fmt.Errorf("%s: %w: entries", source, ErrEmptyTable)
	}
	for _, e := range doc.Entries {
		id, ok := ParseMessageID(e.ID)
		if !ok {
			return fmt.Errorf("%s: %w: %q", source, ErrUnknownMessageID, e.ID)
		}
		if e.Text == "" {
			return fmt.Errorf("%s: %s: %w: empty text", source, e.ID, ErrInvalidField)
		}
		if _, dup := into[id]; dup {
			return fmt.Errorf("%s: %w: message %s", source, ErrDuplicateID, e.ID)
		}
		into[id] = e.Text
	}
	return nil
}

// LoadItems reads ItemsFile from fsys.
func LoadItems(fsys fs.FS) ([]*item.Definition, error) {
	data, err := fs.ReadFile(fsys, ItemsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ItemsFile, err)
	}
	return DecodeItems(data, ItemsFile)
}

// LoadActors reads ActorsFile from fsys.
func LoadActors(fsys fs.FS) ([]*ActorDef, error) {
	data, err := fs.ReadFile(fsys, ActorsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ActorsFile, err)
	}
	return DecodeActors(data, ActorsFile)
}

// LoadProps reads PropsFile from fsys.
func LoadProps(fsys fs.FS) ([]*gamemap.PropDef, error) {
	data, err := fs.ReadFile(fsys, PropsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", PropsFile, err)
	}
	return DecodeProps(data, PropsFile)
}

// LoadMessages merges every file matching MessagesGlob, in name order.
func LoadMessages(fsys fs.FS) (map[MessageID]string, error) {
	names, err := fs.Glob(fsys, MessagesGlob)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", MessagesGlob, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no %s files", ErrEmptyTable, MessagesGlob)
	}
	out := make(map[MessageID]string)
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := DecodeMessages(data, path.Base(name), out); err != nil {
			return nil, err
		}
	}
	return out, nil
}
