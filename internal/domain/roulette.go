package domain

// RouletteColor is a wheel band.
type RouletteColor string

const (
	ColorRed   RouletteColor = "red"
	ColorBlack RouletteColor = "black"
	ColorGreen RouletteColor = "green"
)

// Valid reports whether c is a wheel color.
func (c RouletteColor) Valid() bool {
	return c == ColorRed || c == ColorBlack || c == ColorGreen
}

// RouletteResult is the settled outcome of one wheel spin.
type RouletteResult struct {
	Bet          int64         `json:"bet"`
	Chosen       RouletteColor `json:"chosen"`
	Angle        int           `json:"angle"` // Landing angle in whole degrees [0, 360)
	WinningColor RouletteColor `json:"winning_color"`
	Won          bool          `json:"won"`
	Payout       int64         `json:"payout"` // Gold credited, 0 on a loss
	Gold         int64         `json:"gold"`   // Balance after settlement
}
