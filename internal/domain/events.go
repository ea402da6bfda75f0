package domain

// EventTag labels the outcome of a claim or match for audit records,
// metrics and user-facing replies.
type EventTag string

const (
	EventNone        EventTag = "none"
	EventDisaster    EventTag = "disaster"
	EventStreakBonus EventTag = "streak_bonus"
	EventItemDrop    EventTag = "item_drop"
	EventMultiplier  EventTag = "multiplier"
	EventTitleEarned EventTag = "title_earned"
)
