// Package factory builds entities with their fixed starting stats.
// Names are not validated; the empty string is a valid name.
package factory

import "github.com/robalobadob/arena/internal/entity"

// CreatePlayer returns a player at full health with an empty inventory.
func CreatePlayer(name string) *entity.Player {
	return &entity.Player{
		Name:      name,
		Health:    entity.StartingPlayerHealth,
		Inventory: []string{},
	}
}

// CreateItem returns a named item.
func CreateItem(name string) entity.Item {
	return entity.Item{Name: name}
}

// CreateEnemy returns a plain enemy.
func CreateEnemy(name string) entity.Foe {
	return entity.NewEnemy(name)
}

// CreateArmoredEnemy returns an armored enemy. The inner enemy is created
// here and never escapes the wrapper. Negative armor counts as none.
func CreateArmoredEnemy(name string, armor int) entity.Foe {
	return entity.NewArmoredEnemy(entity.NewEnemy(name), armor)
}
