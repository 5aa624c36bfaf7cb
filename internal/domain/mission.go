package domain

// Mission counters tracked per player.
const (
	CounterRouletteSpins    = "roulette_spins"
	CounterRouletteWinnings = "roulette_winnings"
	CounterCaseOpens        = "case_opens"
)

// Mission is a one-time objective with a currency reward.
type Mission struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Counter string `json:"counter"`
	Target  int64  `json:"target"`
	Reward  Grant  `json:"reward"`
}

// MissionStatus is a mission with the player's progress toward it.
type MissionStatus struct {
	Mission
	Progress  int64 `json:"progress"`
	Completed bool  `json:"completed"`
	Claimed   bool  `json:"claimed"`
}

// LoginStatus describes the player's daily login streak.
type LoginStatus struct {
	Streak    int    `json:"streak"`
	CanClaim  bool   `json:"can_claim"`
	NextDay   int    `json:"next_day"` // 1-based position in the reward cycle
	NextGrant Grant  `json:"next_reward"`
	LastClaim string `json:"last_claim,omitempty"`
}
