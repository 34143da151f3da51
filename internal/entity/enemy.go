package entity

import (
	"fmt"
	"io"
)

// Foe is the capability set shared by every enemy variant.
// The session only ever talks to enemies through it.
type Foe interface {
	Name() string
	Health() int
	Attack(damage int) Hit
}

// Hit reports the outcome of a single Attack.
type Hit struct {
	Target    string // Name of the enemy that was hit.
	Incoming  int    // Damage offered by the attacker.
	Dealt     int    // Damage actually removed from health.
	Absorbed  int    // Incoming - Dealt; reported for display only.
	Remaining int    // Health after the hit; may be negative.
}

// Defeated reports whether the hit left the target at or below zero health.
func (h Hit) Defeated() bool { return h.Remaining <= 0 }

// EffectiveDamage applies armor to incoming damage.
// Every hit deals at least 1 so no amount of armor makes an enemy unkillable.
func EffectiveDamage(incoming, armor int) int {
	return max(1, incoming-armor)
}

// Enemy is the plain enemy variant. Health has no floor.
type Enemy struct {
	name   string
	health int
}

// NewEnemy returns an enemy at StartingEnemyHealth.
func NewEnemy(name string) *Enemy {
	return &Enemy{name: name, health: StartingEnemyHealth}
}

func (e *Enemy) Name() string { return e.name }
func (e *Enemy) Health() int  { return e.health }

// Attack removes damage from health as-is.
func (e *Enemy) Attack(damage int) Hit {
	e.health -= damage
	return Hit{Target: e.name, Incoming: damage, Dealt: damage, Remaining: e.health}
}

func (e *Enemy) IsAlive() bool { return e.health > 0 }

func (e *Enemy) DisplayStatus(w io.Writer) {
	fmt.Fprintf(w, "Enemy %s - Health: %d\n", e.name, e.health)
}

// ArmoredEnemy decorates an Enemy with armor that reduces every hit.
// The wrapper exclusively owns its base enemy.
type ArmoredEnemy struct {
	base  *Enemy
	armor int
}

// NewArmoredEnemy wraps base. Callers must not keep their own reference to base.
// Negative armor is treated as 0.
func NewArmoredEnemy(base *Enemy, armor int) *ArmoredEnemy {
	return &ArmoredEnemy{base: base, armor: max(0, armor)}
}

func (a *ArmoredEnemy) Name() string { return a.base.name }
func (a *ArmoredEnemy) Health() int  { return a.base.health }
func (a *ArmoredEnemy) Armor() int   { return a.armor }

// Attack forwards EffectiveDamage to the base enemy.
func (a *ArmoredEnemy) Attack(damage int) Hit {
	dealt := EffectiveDamage(damage, a.armor)
	hit := a.base.Attack(dealt)
	hit.Incoming = damage
	hit.Absorbed = damage - dealt
	return hit
}

func (a *ArmoredEnemy) IsAlive() bool { return a.base.IsAlive() }

func (a *ArmoredEnemy) DisplayStatus(w io.Writer) {
	fmt.Fprintf(w, "Enemy %s - Health: %d - Armor: %d\n", a.base.name, a.base.health, a.armor)
}
