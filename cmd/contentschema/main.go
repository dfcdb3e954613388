// contentschema writes JSON Schemas for the content files. Build:
//
//	go build -o contentschema ./cmd/contentschema
//
// Usage:
//
//	./contentschema [--out assets/schema]
//
// Without --out every schema is printed to stdout as one JSON object keyed
// by file name.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cinder-roguelike/internal/content"

	"github.com/invopop/jsonschema"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write one schema per content file")
	flag.Parse()

	schemas := buildSchemas()
	if outDir == "" {
		data, err := json.MarshalIndent(schemas, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal schemas: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(append(data, '\n'))
		return
	}
	if err := writeSchemas(outDir, schemas); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schemas: %v\n", err)
		os.Exit(1)
	}
}

// buildSchemas reflects every content document, keyed by the file it
// validates.
func buildSchemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference:             true,
	}
	docs := []struct {
		file  string
		doc   any
		title string
	}{
		{content.ItemsFile, new(content.ItemsDocument), "Item definitions"},
		{content.ActorsFile, new(content.ActorsDocument), "Actor definitions"},
		{content.PropsFile, new(content.PropsDocument), "Prop definitions"},
		{content.MessagesGlob, new(content.MessagesDocument), "Message templates"},
	}
	out := make(map[string]*jsonschema.Schema, len(docs))
	for _, d := range docs {
		s := reflector.Reflect(d.doc)
		s.Title = d.title
		s.Description = "Validates " + d.file
		out[d.file] = s
	}
	return out
}

// schemaFileName turns a content file name or glob into a schema file name.
func schemaFileName(file string) string {
	base := strings.TrimSuffix(file, ".json")
	base = strings.ReplaceAll(base, "_*", "")
	return base + ".schema.json"
}

func writeSchemas(dir string, schemas map[string]*jsonschema.Schema) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	for _, file := range slices.Sorted(maps.Keys(schemas)) {
		data, err := json.MarshalIndent(schemas[file], "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", file, err)
		}
		path := filepath.Join(dir, schemaFileName(file))
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write temp schema: %w", err)
		}
		if err := os.Rename(tmp, path); err != nil {
			return fmt.Errorf("replace schema: %w", err)
		}
	}
	return nil
}
