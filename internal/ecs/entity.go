// Package ecs stores entities as IDs with typed component values attached.
package ecs

// EntityID names an entity. IDs start at 1.
type EntityID uint64

// NilEntity is never handed out.
const NilEntity EntityID = 0

// ComponentType keys a component store.
type ComponentType uint8

// Component is a value stored in a World.
type Component interface {
	Type() ComponentType
}
