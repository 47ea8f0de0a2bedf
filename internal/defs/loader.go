// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
)

const (
	CharactersFile  = "characters.json"
	MonstersFile    = "monsters.json"
	SpawnTablesFile = "spawn_tables.json"
	QuestionsFile   = "questions.json"
)

var (
	ErrUnknownCharacter  = errors.New("unknown character")
	ErrUnknownMonster    = errors.New("unknown monster")
	ErrUnknownSpawnTable = errors.New("no spawn table for tier")
	ErrInvalidDefinition = errors.New("invalid definition")
)

//go:embed data/*.json
var defaultData embed.FS

// Library holds every static table a combat session reads from.
// It is built once and treated as read-only afterwards.
type Library struct {
	Characters  map[string]CharacterDefinition
	Monsters    map[string]MonsterDefinition
	SpawnTables map[int]SpawnTable
	Questions   QuestionBankFile
}

// NewLibrary validates the given definitions and indexes them by ID.
func NewLibrary(characters []CharacterDefinition, monsters []MonsterDefinition, tables []SpawnTable, bank QuestionBankFile) (*Library, error) {
	lib := &Library{
		Characters:  make(map[string]CharacterDefinition, len(characters)),
		Monsters:    make(map[string]MonsterDefinition, len(monsters)),
		SpawnTables: make(map[int]SpawnTable, len(tables)),
		Questions:   bank,
	}
	for _, def := range characters {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Characters[def.ID]; dup {
			return nil, invalidf("duplicate character %s", def.ID)
		}
		lib.Characters[def.ID] = def
	}
	for _, def := range monsters {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Monsters[def.ID]; dup {
			return nil, invalidf("duplicate monster %s", def.ID)
		}
		lib.Monsters[def.ID] = def
	}
	for _, table := range tables {
		if len(table.Entries) == 0 {
			return nil, invalidf("spawn table for tier %d is empty", table.Tier)
		}
		for _, entry := range table.Entries {
			if _, ok := lib.Monsters[entry.MonsterID]; !ok {
				return nil, fmt.Errorf("spawn table for tier %d: %w: %s", table.Tier, ErrUnknownMonster, entry.MonsterID)
			}
			if entry.Weight <= 0 {
				return nil, invalidf("spawn table for tier %d: weight of %s must be positive", table.Tier, entry.MonsterID)
			}
		}
		lib.SpawnTables[table.Tier] = table
	}
	return lib, nil
}

// LoadDefaults loads the tables embedded into the binary.
func LoadDefaults() (*Library, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return LoadFS(sub)
}

// LoadLibrary reads the definition files from a directory on disk.
func LoadLibrary(dir string) (*Library, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads characters, monsters and spawn tables (all required) and the
// question bank (optional: a missing bank is backfilled procedurally).
func LoadFS(fsys fs.FS) (*Library, error) {
	var characters []CharacterDefinition
	if err := readJSON(fsys, CharactersFile, &characters); err != nil {
		return nil, err
	}
	var monsters []MonsterDefinition
	if err := readJSON(fsys, MonstersFile, &monsters); err != nil {
		return nil, err
	}
	var tables []SpawnTable
	if err := readJSON(fsys, SpawnTablesFile, &tables); err != nil {
		return nil, err
	}
	var bank QuestionBankFile
	if err := readJSON(fsys, QuestionsFile, &bank); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	lib, err := NewLibrary(characters, monsters, tables, bank)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d character, %d monster definitions, %d spawn tables, %d bank questions",
		len(lib.Characters), len(lib.Monsters), len(lib.SpawnTables), len(lib.Questions.Questions))
	return lib, nil
}

func readJSON(fsys fs.FS, name string, v interface{}) error {
	file, err := fs.ReadFile(fsys, path.Clean(name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Character returns the definition of a playable character.
func (l *Library) Character(id string) (CharacterDefinition, error) {
	def, ok := l.Characters[id]
	if !ok {
		return CharacterDefinition{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	return def, nil
}

// Monster returns the definition of an enemy type.
func (l *Library) Monster(id string) (MonsterDefinition, error) {
	def, ok := l.Monsters[id]
	if !ok {
		return MonsterDefinition{}, fmt.Errorf("%w: %q", ErrUnknownMonster, id)
	}
	return def, nil
}

// SpawnTable returns the weighted monster table for a difficulty tier.
func (l *Library) SpawnTable(tier int) (SpawnTable, error) {
	table, ok := l.SpawnTables[tier]
	if !ok {
		return SpawnTable{}, fmt.Errorf("%w %d", ErrUnknownSpawnTable, tier)
	}
	return table, nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}
