package component

// MatchStatus итог партии
type MatchStatus int

const (
	StatusOngoing MatchStatus = iota
	StatusWon
	StatusLost
)

func (s MatchStatus) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return "ongoing"
}
