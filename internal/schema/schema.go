// Package schema is the static event registry: every recognized event name
// maps to an immutable descriptor carrying its participant-count rule, its
// collection and which extra fields the registration must bring. Unknown
// event names fail closed before any other processing.
package schema

// Kind enumerates the fixed competition categories.
type Kind int

const (
	KindCodingChallenge Kind = iota
	KindCodeHunt
	KindPosterPresentation
	KindTechnicalQuiz
	KindSports
	KindHackathon
)

type Descriptor struct {
	Name       string
	Kind       Kind
	Collection string

	// TeamSize is the required participant count. ExactCount means the
	// generic length check applies; Sports and Hackathon carry their own
	// composition rules instead.
	TeamSize   int
	ExactCount bool

	// TeamChecks enables the within-team duplicate registration-number
	// check and the per-member store lookup.
	TeamChecks bool

	NeedsTeamName        bool
	NeedsTopic           bool
	NeedsHackathonFields bool

	// Flat events persist one participant's fields at the top level of the
	// record instead of a nested participants array.
	Flat bool
}

const (
	CollCodingChallenges   = "codingchallenges"
	CollCodeHunts          = "codehunts"
	CollPosterPresentation = "posterpresentations"
	CollTechnicalQuizzes   = "technicalquizzes"
	CollSports             = "sports"
	CollHackathons         = "hackathons"
	CollCulturals          = "culturals"
	CollGeneric            = "eventregistrations"
)

var registry = map[string]Descriptor{
	"Coding Challenge": {
		Name:       "Coding Challenge",
		Kind:       KindCodingChallenge,
		Collection: CollCodingChallenges,
		TeamSize:   1,
		ExactCount: true,
	},
	"Code Hunt": {
		Name:          "Code Hunt",
		Kind:          KindCodeHunt,
		Collection:    CollCodeHunts,
		TeamSize:      3,
		ExactCount:    true,
		TeamChecks:    true,
		NeedsTeamName: true,
	},
	"Poster Presentation": {
		Name:       "Poster Presentation",
		Kind:       KindPosterPresentation,
		Collection: CollPosterPresentation,
		TeamSize:   1,
		ExactCount: true,
		NeedsTopic: true,
	},
	"Technical Quiz": {
		Name:          "Technical Quiz",
		Kind:          KindTechnicalQuiz,
		Collection:    CollTechnicalQuizzes,
		TeamSize:      4,
		ExactCount:    true,
		TeamChecks:    true,
		NeedsTeamName: true,
	},
	"Sports": {
		Name:       "Sports",
		Kind:       KindSports,
		Collection: CollSports,
		TeamSize:   1,
		Flat:       true,
	},
	"Hackathon": {
		Name:                 "Hackathon",
		Kind:                 KindHackathon,
		Collection:           CollHackathons,
		TeamSize:             5,
		TeamChecks:           true,
		NeedsHackathonFields: true,
	},
}

// Lookup returns the descriptor for an event name. The second return is false
// for unrecognized names.
func Lookup(eventName string) (Descriptor, bool) {
	d, ok := registry[eventName]
	return d, ok
}

// Names returns the recognized event names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
