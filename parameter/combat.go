package parameter

// Hit Points
const (
	// CombatMaxHP is the starting and maximum HP of each combatant
	CombatMaxHP = 100
)

// Base stats assigned at spawn
const (
	StatBasePower   = 10.0
	StatBaseAgility = 10.0
	StatBaseGrit    = 10.0
	StatBaseFocus   = 10.0
)

// Damage
const (
	// CombatBaseDamage is goal damage before Power scaling
	CombatBaseDamage = 10

	// PowerDamageMultiplier is goal damage added per point of the attacker's Power
	PowerDamageMultiplier = 0.5

	// GritDamageReduction is damage removed per point of the defender's Grit
	GritDamageReduction = 0.25
)
