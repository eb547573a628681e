package warming

import (
	"gestorzap/models"
	"gestorzap/tools"
)

// Kind holds everything that differs between warm-up record types.
type Kind[T any] interface {
	// Name is used in logs and messages ("numeros", "grupos").
	Name() string
	// Build turns a parsed line into a candidate record (not yet validated).
	Build(l Line) T
	// Valid is the format predicate for the record type.
	Valid(rec T) bool
	// Key is the natural key used for duplicate detection.
	Key(rec T) string
	ID(rec T) int64
	Assign(rec *T, ownerID int64)
}

// NumberKind: `<numero>[|<descricao>]`, numero must start with +55.
type NumberKind struct{}

func (NumberKind) Name() string { return "numeros" }

func (NumberKind) Build(l Line) models.WarmingNumber {
	n := models.WarmingNumber{
		Numero: l.Primary,
		URL:    tools.WhatsAppLink(l.Primary),
	}
	if l.Secondary != "" {
		desc := l.Secondary
		n.Descricao = &desc
	}
	return n
}

func (NumberKind) Valid(n models.WarmingNumber) bool {
	return n.Numero != "" && tools.HasBrazilPrefix(n.Numero)
}

func (NumberKind) Key(n models.WarmingNumber) string { return n.Numero }

func (NumberKind) ID(n models.WarmingNumber) int64 { return n.ID }

func (NumberKind) Assign(n *models.WarmingNumber, ownerID int64) { n.UserID = ownerID }

// GroupKind: `<nome>|<url>`, url must be a group invite link.
type GroupKind struct{}

func (GroupKind) Name() string { return "grupos" }

func (GroupKind) Build(l Line) models.WarmingGroup {
	return models.WarmingGroup{Nome: l.Primary, URL: l.Secondary}
}

func (GroupKind) Valid(g models.WarmingGroup) bool {
	return g.Nome != "" && g.URL != "" && tools.IsGroupInviteURL(g.URL)
}

func (GroupKind) Key(g models.WarmingGroup) string { return g.URL }

func (GroupKind) ID(g models.WarmingGroup) int64 { return g.ID }

func (GroupKind) Assign(g *models.WarmingGroup, ownerID int64) { g.UserID = ownerID }
