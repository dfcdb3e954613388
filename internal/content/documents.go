package content

// Document types mirror the JSON content files one to one. cmd/contentschema
// reflects them into JSON Schemas.

// ItemsDocument is the root of items.json.
type ItemsDocument struct {
	Items []ItemDocument `json:"items"`
}

type ItemDocument struct {
	ID          string   `json:"id" jsonschema:"minLength=1"`
	Name        string   `json:"name" jsonschema:"minLength=1"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	SpriteID    string   `json:"sprite_id" jsonschema:"minLength=1"`
	Stackable   bool     `json:"stackable,omitempty"`
	MaxStack    int      `json:"max_stack,omitempty" jsonschema:"minimum=0"`
}

// ActorsDocument is the root of actors.json.
type ActorsDocument struct {
	Actors []ActorDocument `json:"actors"`
}

type ActorDocument struct {
	ID               string                   `json:"id" jsonschema:"minLength=1"`
	DisplayName      string                   `json:"display_name" jsonschema:"minLength=1"`
	SpriteID         string                   `json:"sprite_id" jsonschema:"minLength=1"`
	Kind             string                   `json:"kind,omitempty"`
	FactionID        string                   `json:"faction_id,omitempty"`
	Tags             []string                 `json:"tags,omitempty"`
	BaseStats        StatsDocument            `json:"base_stats"`
	AIProfileID      string                   `json:"ai_profile_id,omitempty"`
	InitialInventory []InventoryEntryDocument `json:"initial_inventory,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
}

type StatsDocument struct {
	HP      int `json:"hp" jsonschema:"minimum=0"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed,omitempty"`
}

type InventoryEntryDocument struct {
	ItemID string `json:"item_id" jsonschema:"minLength=1"`
	Count  int    `json:"count" jsonschema:"minimum=1"`
}

// PropsDocument is the root of props.json.
type PropsDocument struct {
	Props []PropDocument `json:"props"`
}

type PropDocument struct {
	ID                string `json:"id" jsonschema:"minLength=1"`
	DisplayName       string `json:"display_name" jsonschema:"minLength=1"`
	SpriteID          string `json:"sprite_id" jsonschema:"minLength=1"`
	BlocksMovement    bool   `json:"blocks_movement,omitempty"`
	BlocksLOS         bool   `json:"blocks_los,omitempty"`
	BlocksProjectiles bool   `json:"blocks_projectiles,omitempty"`
}

// MessagesDocument is the root of every messages_*.json file.
type MessagesDocument struct {
	Entries []MessageEntryDocument `json:"entries"`
}

type MessageEntryDocument struct {
	ID       string `json:"id" jsonschema:"minLength=1"`
	Text     string `json:"text" jsonschema:"minLength=1"`
	Category string `json:"category,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
