// Package display groups entities for batch status output.
package display

import (
	"fmt"
	"io"
)

// Entity is anything that can report its own status.
type Entity interface {
	DisplayStatus(w io.Writer)
	IsAlive() bool
}

// Group is a named, ordered collection of entities. Groups are entities
// too, so they nest.
type Group struct {
	Name    string
	members []Entity
}

func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Add appends e.
func (g *Group) Add(e Entity) {
	g.members = append(g.members, e)
}

func (g *Group) Len() int { return len(g.members) }

// DisplayAll writes a header, then each member's status in insertion order.
func (g *Group) DisplayAll(w io.Writer) {
	fmt.Fprintf(w, "Group '%s' status:\n", g.Name)
	for _, e := range g.members {
		e.DisplayStatus(w)
	}
}

func (g *Group) DisplayStatus(w io.Writer) { g.DisplayAll(w) }

// IsAlive reports whether any member is alive.
func (g *Group) IsAlive() bool {
	for _, e := range g.members {
		if e.IsAlive() {
			return true
		}
	}
	return false
}
