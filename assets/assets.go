// Package assets ships the default content set and the sprite glyph theme.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed content/*.json
var embedded embed.FS

// Content is the default content filesystem (items.json, actors.json,
// props.json, messages_*.json at its root).
var Content fs.FS = mustSub(embedded, "content")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
