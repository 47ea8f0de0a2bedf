// internal/types/ids.go
package types

import "fmt"

// Category — к какой группе сущностей относится идентификатор.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// EntityID identifies a combatant by category and slot index.
// The zero value is an invalid ID.
type EntityID struct {
	Category Category `msgpack:"category"`
	Index    int      `msgpack:"index"`
}

// PlayerID возвращает идентификатор единственного персонажа игрока.
func PlayerID() EntityID {
	return EntityID{Category: CategoryPlayer}
}

// EnemyID возвращает идентификатор врага в слоте пула.
func EnemyID(slot int) EntityID {
	return EntityID{Category: CategoryEnemy, Index: slot}
}

func (id EntityID) IsValid() bool { return id.Category != CategoryNone }

func (id EntityID) IsEnemy() bool { return id.Category == CategoryEnemy }

func (id EntityID) IsPlayer() bool { return id.Category == CategoryPlayer }

func (id EntityID) String() string {
	if id.Category == CategoryPlayer {
		return "player"
	}
	return fmt.Sprintf("%s#%d", id.Category, id.Index)
}
