package game

// Board geometry
const (
	Directions  = 6
	NoCell      = -1
	MaxRichness = 3
	BoardRadius = 3
)

// Rules of the day cycle and the tree life cycle
const (
	LastDay         = 24 // The game is over once this day is reached
	MaxSize         = 3
	CompleteCost    = 4
	BankingDayLimit = 14 // Primary income is banked into score before this day
	SeedTreeLimit   = 8  // Seeding is only considered below this many trees
	SeedWindowMin   = 5  // Seed day threshold is drawn from [SeedWindowMin, SeedWindowMax)
	SeedWindowMax   = 15
	ShadowReach     = 3
)

// Base grow cost indexed by the resulting size.
var growBaseCost = [MaxSize + 1]int{0, 1, 3, 7}

// Player identifies a side. The primary player is the one the planner plays for.
type Player int

const (
	Me Player = iota
	Opponent
)

// Other returns the opposing player.
func (p Player) Other() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == Me {
		return "me"
	}
	return "opponent"
}
