// Package reputation maps a professional's rating and review count to a
// reputation tier.
package reputation

// Tier is one of the five reputation levels with its badge data.
type Tier struct {
	Rank  int    `json:"rank"`
	Level string `json:"level"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var (
	Novato   = Tier{Rank: 0, Level: "Novato", Color: "bg-slate-500", Icon: "🛡️"}
	Bronze   = Tier{Rank: 1, Level: "Bronze", Color: "bg-amber-700", Icon: "🥉"}
	Prata    = Tier{Rank: 2, Level: "Prata", Color: "bg-slate-400", Icon: "🥈"}
	Ouro     = Tier{Rank: 3, Level: "Ouro", Color: "bg-yellow-400", Icon: "🏆"}
	Diamante = Tier{Rank: 4, Level: "Diamante", Color: "bg-cyan-500", Icon: "💎"}
)

type threshold struct {
	tier       Tier
	minReviews int
	minRating  float64
}

// Checked top-down; the first match wins.
var thresholds = []threshold{
	{Diamante, 100, 4.9},
	{Ouro, 50, 4.8},
	{Prata, 30, 4.5},
	{Bronze, 10, 4.0},
}

// Classify returns the tier for the given rating and review count.
func Classify(rating float64, reviewCount int) Tier {
	for _, th := range thresholds {
		if reviewCount >= th.minReviews && rating >= th.minRating {
			return th.tier
		}
	}
	return Novato
}
