package model

// PlayerKind selects how a player chooses its moves
type PlayerKind string

const (
	PlayerKindHuman  PlayerKind = "human"
	PlayerKindRandom PlayerKind = "random"
	PlayerKindAI     PlayerKind = "ai"
)

// ParsePlayerKind validates a player kind name
func ParsePlayerKind(s string) (PlayerKind, error) {
	k := PlayerKind(s)
	switch k {
	case PlayerKindHuman, PlayerKindRandom, PlayerKindAI:
		return k, nil
	default:
		return "", ErrInvalidPlayerKind
	}
}

// ValidPlayerKinds returns all valid player kinds
func ValidPlayerKinds() []PlayerKind {
	return []PlayerKind{PlayerKindHuman, PlayerKindRandom, PlayerKindAI}
}
