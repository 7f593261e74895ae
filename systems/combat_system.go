package systems

import "dungeon-crawl/ecs"

// CombatSystem resolves pending attacks
type CombatSystem struct{}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// Name identifies the system in schedules
func (s *CombatSystem) Name() string { return "combat" }

// Update deals one point of damage per attack message. Victims other than the
// player are destroyed when they drop below one hit point. Every message is
// removed whether or not its attack landed.
func (s *CombatSystem) Update(w *World) error {
	reg := w.Registry
	slain := make(map[ecs.Entity]bool)

	for _, msg := range reg.Attacks.Entities() {
		attack, _ := reg.Attacks.Get(msg)
		w.Commands.Despawn(msg)

		health := reg.Healths.GetPtr(attack.Victim)
		if health == nil {
			continue
		}

		health.Current--
		isPlayer := reg.Players.Has(attack.Victim)
		w.EmitEvent(CombatEvent{
			Attacker:     attack.Attacker,
			Victim:       attack.Victim,
			AttackerName: reg.NameOf(attack.Attacker),
			VictimName:   reg.NameOf(attack.Victim),
			Damage:       1,
			Remaining:    health.Current,
			VictimPlayer: isPlayer,
		})

		if health.Current < 1 && !isPlayer && !slain[attack.Victim] {
			slain[attack.Victim] = true
			w.Commands.Despawn(attack.Victim)
			w.EmitEvent(DeathEvent{Entity: attack.Victim, Name: reg.NameOf(attack.Victim)})
		}
	}
	return nil
}
