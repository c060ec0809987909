package regime

// Faction groups characters by institutional allegiance.
type Faction int

const (
	// FactionUnspecified represents an invalid faction value.
	FactionUnspecified Faction = iota
	// FactionParty is the civilian party apparatus.
	FactionParty
	// FactionMilitary is the armed forces.
	FactionMilitary
	// FactionSecurity is the internal security services.
	FactionSecurity
	// FactionTechnocrat is the planning and industry bureaucracy.
	FactionTechnocrat
)

func (f Faction) String() string {
	switch f {
	case FactionParty:
		return "party"
	case FactionMilitary:
		return "military"
	case FactionSecurity:
		return "security"
	case FactionTechnocrat:
		return "technocrat"
	default:
		return "unspecified"
	}
}

// ParseFaction maps a stored faction string to its Faction. The boolean
// reports whether the value is known.
func ParseFaction(value string) (Faction, bool) {
	for f := FactionParty; f <= FactionTechnocrat; f++ {
		if f.String() == value {
			return f, true
		}
	}
	return FactionUnspecified, false
}

// CharacterStatus tracks whether a roster member is still in play.
type CharacterStatus int

const (
	// CharacterActive is a living, unpurged character.
	CharacterActive CharacterStatus = iota
	// CharacterPurged has been removed through a repression campaign.
	CharacterPurged
	// CharacterDead has died.
	CharacterDead
	// CharacterExiled has fled or been expelled.
	CharacterExiled
)

func (s CharacterStatus) String() string {
	switch s {
	case CharacterActive:
		return "active"
	case CharacterPurged:
		return "purged"
	case CharacterDead:
		return "dead"
	case CharacterExiled:
		return "exiled"
	}
	return "unspecified"
}

// Character is one member of the political roster.
type Character struct {
	ID          string
	Name        string
	Title       string
	Rank        int
	Faction     Faction
	Disposition int
	Status      CharacterStatus
}

// Active reports whether the character is still in play.
func (c *Character) Active() bool {
	return c.Status == CharacterActive
}
