package game

// Weights scores a position as (piece difference, stable discs, wedges, mobility).
type Weights [4]int

// Personality selects one of the two weightings searched side by side.
type Personality int

const (
	First Personality = iota
	Second
)

// TerminalScore is the magnitude of a decided game's value.
const TerminalScore = 1000

// DefaultPersonalities are the two weightings the engine plays with unless configured otherwise.
var DefaultPersonalities = [2]Weights{
	{3, 10, 5, 5},
	{2, 8, 3, 8},
}

// PersonalityFor returns the personality that plays for the given side: Player1 plays First,
// Player2 plays Second.
func PersonalityFor(turn Square) Personality {
	if turn == Player2 {
		return Second
	}
	return First
}

func (p Personality) String() string {
	if p == Second {
		return "second"
	}
	return "first"
}

// InstantValue scores the position for the side to move without looking ahead.
func (b *Board) InstantValue(w Weights) int {
	return b.PieceDiff()*w[0] +
		b.Stables(b.turn)*w[1] +
		b.Wedges(b.turn)*w[2] +
		len(b.legal)*w[3]
}

// InstantValues scores the position under both weightings.
func (b *Board) InstantValues(personalities [2]Weights) Values {
	return Values{b.InstantValue(personalities[First]), b.InstantValue(personalities[Second])}
}

// TerminalValues is the payoff of a finished game for the side to move, the same under both
// weightings: +TerminalScore for a win, -TerminalScore for a loss and 0 for a draw.
func (b *Board) TerminalValues() Values {
	v := sign(b.PieceDiff()) * TerminalScore
	return Values{v, v}
}
