package domain

// Item kinds that can appear in a player inventory. Closed set.
const (
	ItemSukunaFinger = "sukuna_finger"
	ItemGokumonkyo   = "gokumonkyo"
)

// KnownItems maps every tradable item kind to true.
var KnownItems = map[string]bool{
	ItemSukunaFinger: true,
	ItemGokumonkyo:   true,
}

// Player is one account in the arena ledger. Created lazily on first
// interaction, never deleted.
type Player struct {
	ID           string         `json:"-"`
	Name         string         `json:"name"`
	Wallet       int            `json:"wallet"`
	Bank         int            `json:"bank"`
	Wins         int            `json:"wins"`
	Losses       int            `json:"losses"`
	Streak       int            `json:"streak"`
	LastWorkDate string         `json:"lastWorkDate,omitempty"`
	Items        map[string]int `json:"items,omitempty"`
	Titles       []string       `json:"titles,omitempty"`
}

// Wealth is the tie-break key for the leaderboard.
func (p *Player) Wealth() int {
	return p.Wallet + p.Bank
}

// ItemCount returns how many of an item kind the player holds.
func (p *Player) ItemCount(kind string) int {
	if p.Items == nil {
		return 0
	}
	return p.Items[kind]
}

// AddItem increments an item count, allocating the map on first use.
func (p *Player) AddItem(kind string, quantity int) {
	if p.Items == nil {
		p.Items = make(map[string]int)
	}
	p.Items[kind] += quantity
}

// HasTitle reports whether the player already earned a title.
func (p *Player) HasTitle(title string) bool {
	for _, t := range p.Titles {
		if t == title {
			return true
		}
	}
	return false
}

// ServiceState is the single service-wide record: the manual override
// (nil means the schedule applies) and the last externally-applied
// open/closed indicator the reconciler observed.
type ServiceState struct {
	Override *bool
	LastOpen *bool
}
