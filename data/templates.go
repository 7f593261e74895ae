package data

import (
	_ "embed"
	"fmt"
	"image/color"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"dungeon-crawl/rng"
)

//go:embed monsters.lua
var monstersLua string

// AI behaviours a monster template may ask for
const (
	AIRandom = "random"
	AIChase  = "chase"
)

// MonsterTemplate describes one kind of monster
type MonsterTemplate struct {
	ID     string
	Name   string
	Glyph  rune
	Color  color.RGBA
	HP     int
	AI     string
	Weight int
}

// Bestiary holds every monster template, sorted by id
type Bestiary struct {
	Templates []MonsterTemplate
	weights   []int
}

// LoadBestiary reads the built-in monster definitions
func LoadBestiary() (*Bestiary, error) {
	return LoadBestiarySource("monsters.lua", monstersLua)
}

// LoadBestiarySource executes Lua source in a sandboxed VM and collects the
// Monster definitions it makes. The VM is discarded afterwards.
func LoadBestiarySource(name, src string) (*Bestiary, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	// Base library only: no io, os or module loading
	lua.OpenBase(L)
	for _, global := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(global, lua.LNil)
	}

	type rawMonster struct {
		id    string
		table *lua.LTable
	}
	var raws []rawMonster

	// Monster "id" { ... }
	L.SetGlobal("Monster", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			raws = append(raws, rawMonster{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	b := &Bestiary{}
	seen := make(map[string]bool)
	for _, raw := range raws {
		if seen[raw.id] {
			return nil, fmt.Errorf("%s: duplicate monster %q", name, raw.id)
		}
		seen[raw.id] = true

		t := MonsterTemplate{
			ID:     raw.id,
			Name:   getString(raw.table, "name"),
			Color:  ParseHexColor(getString(raw.table, "color")),
			HP:     getInt(raw.table, "hp"),
			AI:     getString(raw.table, "ai"),
			Weight: getInt(raw.table, "weight"),
		}
		if glyph := []rune(getString(raw.table, "glyph")); len(glyph) == 1 {
			t.Glyph = glyph[0]
		}
		if t.Weight == 0 {
			t.Weight = 1
		}
		if err := ValidateMonsterTemplate(&t); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		b.Templates = append(b.Templates, t)
	}

	if len(b.Templates) == 0 {
		return nil, fmt.Errorf("%s: no monsters defined", name)
	}

	sort.Slice(b.Templates, func(i, j int) bool {
		return b.Templates[i].ID < b.Templates[j].ID
	})
	for _, t := range b.Templates {
		b.weights = append(b.weights, t.Weight)
	}

	return b, nil
}

// ValidateMonsterTemplate checks that a template has everything a spawn needs
func ValidateMonsterTemplate(t *MonsterTemplate) error {
	var problems []string
	if t.Name == "" {
		problems = append(problems, "missing name")
	}
	if t.Glyph == 0 {
		problems = append(problems, "glyph must be a single character")
	}
	if t.HP < 1 {
		problems = append(problems, "hp must be positive")
	}
	if t.AI != AIRandom && t.AI != AIChase {
		problems = append(problems, fmt.Sprintf("unknown ai %q", t.AI))
	}
	if t.Weight < 0 {
		problems = append(problems, "weight must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("monster %q: %s", t.ID, strings.Join(problems, ", "))
	}
	return nil
}

// Choose picks a template by spawn weight
func (b *Bestiary) Choose(r *rng.RNG) MonsterTemplate {
	return b.Templates[r.WeightedSelect(b.weights)]
}

// ParseHexColor converts "#rrggbb" to a color, white on error
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return color.RGBA{255, 255, 255, 255}
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}

func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}
