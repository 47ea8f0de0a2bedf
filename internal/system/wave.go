// internal/system/wave.go
package system

import (
	"fmt"
	"log"

	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/entity"
	"math-battle/internal/event"
	"math-battle/internal/utils"
)

// WaveSystem выпускает врагов на поле пачками по MonstersPerWave.
type WaveSystem struct {
	library         *defs.Library
	pool            *entity.EnemyPool
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	tier            int
	wave            int
}

func NewWaveSystem(library *defs.Library, pool *entity.EnemyPool, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, tier int) *WaveSystem {
	return &WaveSystem{
		library:         library,
		pool:            pool,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		tier:            tier,
	}
}

// Wave returns the number of waves spawned so far.
func (s *WaveSystem) Wave() int { return s.wave }

// SpawnWave spawns one wave. Monster types are drawn from the tier's weighted
// spawn table and resolved before any slot is taken, so an unknown monster
// fails the whole wave without leaving half of it on the field.
func (s *WaveSystem) SpawnWave() (int, error) {
	table, err := s.library.SpawnTable(s.tier)
	if err != nil {
		return 0, fmt.Errorf("failed to spawn wave %d: %w", s.wave+1, err)
	}

	monsters := make([]defs.MonsterDefinition, 0, config.MonstersPerWave)
	for i := 0; i < config.MonstersPerWave; i++ {
		def, err := s.library.Monster(s.rng.ChooseWeighted(table.Entries))
		if err != nil {
			return 0, fmt.Errorf("failed to spawn wave %d: %w", s.wave+1, err)
		}
		monsters = append(monsters, def)
	}

	s.wave++
	for i, def := range monsters {
		s.spawnEnemy(def, i)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveSpawned, Data: event.WaveData{Wave: s.wave, Spawned: len(monsters)}})
	return len(monsters), nil
}

// spawnEnemy занимает слот пула и ставит врага в одну из трёх полос.
func (s *WaveSystem) spawnEnemy(def defs.MonsterDefinition, index int) {
	oldLen := s.pool.Len()
	e, grown := s.pool.Acquire()
	if grown {
		log.Printf("Enemy pool grown from %d to %d slots", oldLen, s.pool.Len())
		s.eventDispatcher.Dispatch(event.Event{Type: event.PoolGrown, Data: event.PoolGrownData{OldLen: oldLen, NewLen: s.pool.Len()}})
	}

	band := config.SpawnBandsY[index%len(config.SpawnBandsY)]
	e.Phase = component.PhaseSpawned
	e.MonsterID = def.ID
	e.Wave = s.wave
	e.Velocity = component.Velocity{}
	e.PhaseUntilMs = 0
	e.Combatant = component.NewEnemyCombatant(e.ID(), def, s.tier)
	e.Combatant.Position = component.Position{
		X: config.SpawnX + s.rng.Jitter(config.SpawnJitterX),
		Y: band + s.rng.Jitter(config.SpawnJitterY),
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.NewEnemyData(e)})
}
