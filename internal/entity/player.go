// internal/entity/player.go
//
// Passive data holders for the combatants and loot of a session.
// Defines:
//   - Player: named hero with health and an ordered inventory of item names.
//   - Item:   immutable named loot, consumed by name into an inventory.
//
// Entities never print; callers narrate what happened to them.

package entity

import (
	"fmt"
	"io"
	"strings"
)

const (
	// StartingPlayerHealth is the health every new player begins with.
	StartingPlayerHealth = 100
	// StartingEnemyHealth is the health every new enemy begins with.
	StartingEnemyHealth = 20
)

// Player is a participant identified by name within a session.
type Player struct {
	Name      string   // Unique within a session (first match wins on lookup).
	Health    int      // Starts at StartingPlayerHealth; never decremented by combat.
	Inventory []string // Collected item names in pickup order.
}

// Collect appends an item name to the inventory.
func (p *Player) Collect(itemName string) {
	p.Inventory = append(p.Inventory, itemName)
}

// IsAlive reports whether the player still has health left.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// DisplayStatus writes the player's health and inventory.
func (p *Player) DisplayStatus(w io.Writer) {
	fmt.Fprintf(w, "Player %s - Health: %d\n", p.Name, p.Health)
	fmt.Fprintf(w, "%s's Inventory: [%s]\n", p.Name, strings.Join(p.Inventory, ", "))
}

// Item is a named piece of loot.
type Item struct {
	Name string
}
