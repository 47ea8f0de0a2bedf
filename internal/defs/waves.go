// internal/defs/waves.go
package defs

// SpawnEntry представляет одну запись в таблице появления врагов.
// MonsterID — ID врага, Weight — его относительный шанс появиться в волне.
type SpawnEntry struct {
	MonsterID string `json:"monster_id"`
	Weight    int    `json:"weight"`
}

// SpawnTable определяет набор врагов для уровня сложности.
type SpawnTable struct {
	Tier    int          `json:"tier"`
	Entries []SpawnEntry `json:"entries"`
}
