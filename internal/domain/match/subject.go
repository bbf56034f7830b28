package match

import "github.com/kwdash/soccer-analytics/internal/domain/team"

type SubjectKind string

const (
	// SubjectTeam selects matches for a single team by exact name.
	SubjectTeam SubjectKind = "team"
	// SubjectGroup selects matches where any group member plays either side.
	SubjectGroup SubjectKind = "group"
	// SubjectCombined selects matches for every known Key West name variant.
	SubjectCombined SubjectKind = "combined"
)

// Subject is the team, team group, or combined identity whose perspective the
// analytics are computed from.
type Subject struct {
	Kind  SubjectKind
	Name  string
	Teams []string
}

func TeamSubject(name string) Subject {
	return Subject{Kind: SubjectTeam, Name: name}
}

func GroupSubject(name string, teams []string) Subject {
	return Subject{Kind: SubjectGroup, Name: name, Teams: teams}
}

func CombinedSubject() Subject {
	return Subject{Kind: SubjectCombined, Name: team.CombinedDisplayName}
}

func (s Subject) Empty() bool {
	switch s.Kind {
	case SubjectTeam:
		return s.Name == ""
	case SubjectGroup:
		return len(s.Teams) == 0
	case SubjectCombined:
		return false
	default:
		return true
	}
}

// MatchesSide reports whether the given side of a match belongs to the subject.
func (s Subject) MatchesSide(name string) bool {
	switch s.Kind {
	case SubjectTeam:
		return name == s.Name
	case SubjectGroup:
		for _, t := range s.Teams {
			if t == name {
				return true
			}
		}
		return false
	case SubjectCombined:
		return team.IsKeyWestVariant(name)
	default:
		return false
	}
}
