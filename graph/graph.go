/*
Package graph is the dynamic conversion graph: a registry of color spaces
keyed by name, where each space declares exactly one pivot conversion pair to
and from the CIE XYZ hub. Registering that single pair makes the space a
first-class participant: conversion to and from every other registered space
is available immediately, computed as source -> XYZ -> target.

Specialized direct edges can be installed as a performance optimization;
they are required to agree with the composed path within numeric tolerance
and the tests enforce that.

The static generic API of the parent package remains the primary way to
convert between the built-in spaces; this registry exists so user-defined
spaces can join the graph at runtime, and for callers that select spaces
dynamically (by name, from config or wire data).
*/
package graph

import (
	"errors"
	"fmt"
	"sort"
)

// Hub is the name of the pivot space every registered space must reach.
const Hub = "xyz"

// MaxChannels is the widest channel tuple a registered space may have.
const MaxChannels = 4

// Components is a fixed-size channel tuple. Spaces with fewer than
// MaxChannels channels use a prefix and leave the rest zero. The fixed size
// keeps conversion free of heap allocation.
type Components [MaxChannels]float64

// PivotFunc transforms one channel tuple into another. Pivot functions are
// total: they never fail and never clamp.
type PivotFunc func(Components) Components

// Registration errors. All graph configuration problems surface here, at
// definition time, never at first conversion.
var (
	ErrNoPivot        = errors.New("color space declares no pivot conversion")
	ErrUnknownSpace   = errors.New("color space is not registered")
	ErrDuplicateSpace = errors.New("color space is already registered")
	ErrBadChannels    = errors.New("invalid channel count")
)

type spaceEntry struct {
	channels int
	toXYZ    PivotFunc
	fromXYZ  PivotFunc
}

type edgeKey struct {
	from, to string
}

// Graph is a conversion graph. The zero value is not usable; construct with
// New or NewDefault. A Graph is safe for concurrent conversion once fully
// registered; registration itself is not synchronized and belongs in
// startup code.
type Graph struct {
	spaces map[string]spaceEntry
	direct map[edgeKey]PivotFunc
}

// New returns a graph containing only the XYZ hub.
func New() *Graph {
	g := &Graph{
		spaces: make(map[string]spaceEntry),
		direct: make(map[edgeKey]PivotFunc),
	}
	id := func(c Components) Components { return c }
	g.spaces[Hub] = spaceEntry{channels: 3, toXYZ: id, fromXYZ: id}
	return g
}

// Register adds a color space with its pivot conversion pair to and from
// XYZ. A space with a nil conversion in either direction would leave the
// graph disconnected and is rejected.
func (g *Graph) Register(name string, channels int, toXYZ, fromXYZ PivotFunc) error {
	if toXYZ == nil || fromXYZ == nil {
		return fmt.Errorf("registering %q: %w", name, ErrNoPivot)
	}
	if channels < 1 || channels > MaxChannels {
		return fmt.Errorf("registering %q with %d channels: %w", name, channels, ErrBadChannels)
	}
	if _, exists := g.spaces[name]; exists {
		return fmt.Errorf("registering %q: %w", name, ErrDuplicateSpace)
	}
	g.spaces[name] = spaceEntry{channels: channels, toXYZ: toXYZ, fromXYZ: fromXYZ}
	return nil
}

// RegisterVia adds a color space whose pivot is another, already registered
// space rather than XYZ itself: to maps the new space into via, from maps
// via back. The composition with via's own pivot is resolved here, at
// registration time, so an unregistered via (which could otherwise form a
// dangling pivot chain that never reaches the hub) is rejected immediately.
func (g *Graph) RegisterVia(name string, channels int, via string, to, from PivotFunc) error {
	if to == nil || from == nil {
		return fmt.Errorf("registering %q: %w", name, ErrNoPivot)
	}
	if name == via {
		return fmt.Errorf("registering %q via itself: %w", name, ErrUnknownSpace)
	}
	v, ok := g.spaces[via]
	if !ok {
		return fmt.Errorf("registering %q via %q: %w", name, via, ErrUnknownSpace)
	}
	return g.Register(name, channels,
		func(c Components) Components { return v.toXYZ(to(c)) },
		func(c Components) Components { return from(v.fromXYZ(c)) },
	)
}

// RegisterDirect installs a specialized direct edge between two registered
// spaces. It is a performance optimization only: the edge must agree with
// the composed from -> XYZ -> to path within numeric tolerance.
func (g *Graph) RegisterDirect(from, to string, fn PivotFunc) error {
	if fn == nil {
		return fmt.Errorf("direct edge %q -> %q: %w", from, to, ErrNoPivot)
	}
	for _, name := range []string{from, to} {
		if _, ok := g.spaces[name]; !ok {
			return fmt.Errorf("direct edge %q -> %q: %q: %w", from, to, name, ErrUnknownSpace)
		}
	}
	g.direct[edgeKey{from, to}] = fn
	return nil
}

// Channels reports the channel count of a registered space.
func (g *Graph) Channels(name string) (int, error) {
	e, ok := g.spaces[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownSpace)
	}
	return e.channels, nil
}

// Spaces returns the names of all registered spaces in sorted order.
func (g *Graph) Spaces() []string {
	names := make([]string, 0, len(g.spaces))
	for name := range g.spaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Edges enumerates every ordered space pair the graph can convert between.
// Every pair of registered spaces is present: composition through the hub
// never skips an edge.
func (g *Graph) Edges() [][2]string {
	names := g.Spaces()
	edges := make([][2]string, 0, len(names)*(len(names)-1))
	for _, from := range names {
		for _, to := range names {
			if from != to {
				edges = append(edges, [2]string{from, to})
			}
		}
	}
	return edges
}

// Convert maps a channel tuple from one registered space to another. A
// direct edge is used when one was installed, otherwise the conversion is
// composed through XYZ. Conversion between a space and itself is the
// identity.
func (g *Graph) Convert(from, to string, c Components) (Components, error) {
	src, ok := g.spaces[from]
	if !ok {
		return Components{}, fmt.Errorf("convert from %q: %w", from, ErrUnknownSpace)
	}
	dst, ok := g.spaces[to]
	if !ok {
		return Components{}, fmt.Errorf("convert to %q: %w", to, ErrUnknownSpace)
	}
	if from == to {
		return c, nil
	}
	if fn, ok := g.direct[edgeKey{from, to}]; ok {
		return fn(c), nil
	}
	return dst.fromXYZ(src.toXYZ(c)), nil
}

// Composed converts strictly through the hub, ignoring any direct edge. The
// tests use it to verify that direct edges are sugar over composition, not a
// distinct numeric path.
func (g *Graph) Composed(from, to string, c Components) (Components, error) {
	src, ok := g.spaces[from]
	if !ok {
		return Components{}, fmt.Errorf("convert from %q: %w", from, ErrUnknownSpace)
	}
	dst, ok := g.spaces[to]
	if !ok {
		return Components{}, fmt.Errorf("convert to %q: %w", to, ErrUnknownSpace)
	}
	return dst.fromXYZ(src.toXYZ(c)), nil
}
