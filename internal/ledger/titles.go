package ledger

import "github.com/arenabets/arenabot/internal/domain"

// Title names awarded by inventory thresholds.
const (
	TitleCursedHost        = "Cursed Host"
	TitlePrisonRealmWarden = "Prison Realm Warden"
)

// TitleRule maps an inventory threshold to a title.
type TitleRule struct {
	Item      string
	Threshold int
	Title     string
}

// TitleRules is the fixed award table.
var TitleRules = []TitleRule{
	{Item: domain.ItemSukunaFinger, Threshold: 2, Title: TitleCursedHost},
	{Item: domain.ItemGokumonkyo, Threshold: 3, Title: TitlePrisonRealmWarden},
}

// CheckTitles returns the titles the player now qualifies for but does not
// hold yet. Pure; granting the external role is the caller's concern.
func CheckTitles(p *domain.Player) []string {
	var earned []string
	for _, rule := range TitleRules {
		if p.ItemCount(rule.Item) >= rule.Threshold && !p.HasTitle(rule.Title) {
			earned = append(earned, rule.Title)
		}
	}
	return earned
}
