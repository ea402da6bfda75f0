package domain

// Document is the whole persisted state: every player keyed by platform
// user id, plus the service state fields. This is the exact on-disk JSON
// layout; the store replaces the file atomically on every write.
type Document struct {
	Players  map[string]*Player `json:"players"`
	Override *bool              `json:"override"`
	LastOpen *bool              `json:"lastOpen,omitempty"`
}

// NewDocument returns an empty document with the players map allocated.
func NewDocument() *Document {
	return &Document{Players: make(map[string]*Player)}
}

// State extracts the service-state fields.
func (d *Document) State() ServiceState {
	return ServiceState{
		Override: copyBool(d.Override),
		LastOpen: copyBool(d.LastOpen),
	}
}

// EnsurePlayer returns the player record for id, creating it with zeroed
// balances when missing. The display name is refreshed on every call but
// never used as an identity key.
func (d *Document) EnsurePlayer(id, name string) *Player {
	if d.Players == nil {
		d.Players = make(map[string]*Player)
	}
	p, ok := d.Players[id]
	if !ok {
		p = &Player{ID: id, Name: name}
		d.Players[id] = p
	}
	p.ID = id
	if name != "" {
		p.Name = name
	}
	return p
}

// Clone deep-copies the document so an update can be applied and persisted
// without mutating the live copy until the write succeeds.
func (d *Document) Clone() *Document {
	out := &Document{
		Players:  make(map[string]*Player, len(d.Players)),
		Override: copyBool(d.Override),
		LastOpen: copyBool(d.LastOpen),
	}
	for id, p := range d.Players {
		out.Players[id] = p.Clone()
	}
	return out
}

// Clone deep-copies a player record.
func (p *Player) Clone() *Player {
	out := *p
	if p.Items != nil {
		out.Items = make(map[string]int, len(p.Items))
		for k, v := range p.Items {
			out.Items[k] = v
		}
	}
	if p.Titles != nil {
		out.Titles = append([]string(nil), p.Titles...)
	}
	return &out
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
