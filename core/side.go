package core

// Side identifies a combatant's half of the arena
// Player defends the left goal, Enemy defends the right goal
type Side uint8

const (
	SideNone Side = iota
	SidePlayer
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Opponent returns the other combatant, SideNone maps to itself
func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideEnemy
	case SideEnemy:
		return SidePlayer
	default:
		return SideNone
	}
}

// DirX returns the horizontal direction a side sends the orb when striking it
// Left paddle (Player) returns +1, right paddle (Enemy) returns -1
func (s Side) DirX() float64 {
	if s == SidePlayer {
		return 1
	}
	return -1
}
