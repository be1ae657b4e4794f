package bias

// lexiconGroup is one category of stereotype or loaded-language
// phrases. Matching is case-insensitive and anchored to word
// boundaries on the combined text.
type lexiconGroup struct {
	name    string
	phrases []string
}

// stereotypeLexicon covers gender, race and culture stereotypes. The
// phrase lists are tunable policy; matches are reported at medium
// severity.
var stereotypeLexicon = []lexiconGroup{
	{
		name: "gender",
		phrases: []string{
			"women are",
			"men are",
			"women can't",
			"men can't",
			"girls are",
			"boys are",
			"too emotional",
			"a woman's place",
			"a man's job",
			"women belong",
			"men belong",
			"not suited for leadership",
			"man up",
		},
	},
	{
		name: "race",
		phrases: []string{
			"black people are",
			"white people are",
			"asian people are",
			"latinos are",
			"all immigrants",
			"those people are",
			"typical of their kind",
			"people like them are",
		},
	},
	{
		name: "culture",
		phrases: []string{
			"all muslims",
			"all christians",
			"all jews",
			"all foreigners",
			"foreigners always",
			"people from that country",
			"their culture makes them",
			"backwards culture",
		},
	},
}

// correctiveMarkers signal that the surrounding text is quoting,
// contextualizing or refuting a stereotype rather than asserting it.
// Their presence demotes lexicon matches so refuted bias is not
// penalized.
var correctiveMarkers = []string{
	"is a stereotype",
	"that's a stereotype",
	"this stereotype",
	"a harmful stereotype",
	"it is not true that",
	"there is no evidence",
	"research shows",
	"studies show",
	"contrary to",
	"in fact,",
	"however,",
	"this claim is false",
	"not supported by evidence",
}

// penaltyPerMatch is the score deduction for each asserted stereotype
// phrase; tunable policy.
const penaltyPerMatch = 20.0
