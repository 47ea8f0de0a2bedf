// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"math-battle/internal/app"
	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/event"
	"math-battle/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaMs/1000.0 {
		deltaTime = config.MaxDeltaMs / 1000.0
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	character := flag.String("character", "archer", "character id")
	tier := flag.Int("tier", 1, "difficulty tier 1..3")
	seed := flag.Int64("seed", 0, "session seed (0 = time based)")
	defsDir := flag.String("defs", "", "directory with definition files (default embedded)")
	flag.Parse()

	var lib *defs.Library
	var err error
	if *defsDir == "" {
		lib, err = defs.LoadDefaults()
	} else {
		lib, err = defs.LoadLibrary(*defsDir)
	}
	if err != nil {
		log.Fatal(err)
	}

	director := app.NewDirector(lib, event.NewDispatcher(),
		app.WithCharacter(*character),
		app.WithTier(*tier),
		app.WithSeed(*seed),
	)
	if err := director.Start(); err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewBattleState(sm, director))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Math Battle")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
