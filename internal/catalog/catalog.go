// Package catalog defines the static CSA curriculum data: certification
// levels, training units, topic rules and exact answers.
package catalog

// Level is a certification track. G2 is the superset track: it covers
// every G3 unit plus the advanced units.
type Level string

const (
	LevelG3 Level = "G3"
	LevelG2 Level = "G2"
)

// ValidLevels is the canonical set of accepted level strings.
var ValidLevels = map[string]bool{
	"G3": true,
	"G2": true,
}

// Applicability marks which level(s) a unit belongs to.
type Applicability string

const (
	AppliesG3   Applicability = "G3"
	AppliesG2   Applicability = "G2"
	AppliesBoth Applicability = "Both"
)

// Unit is one curriculum module, identified by a stable number.
type Unit struct {
	Number  int           `json:"number"`
	Title   string        `json:"title"`
	Applies Applicability `json:"applies"`
}

// units lists all CSA B149.1-25 training units in ascending order.
// Units 1-9 are shared; 10-24 are G2-only advanced topics.
var units = []Unit{
	{1, "Safety", AppliesBoth},
	{2, "Fasteners, Tools and Testing Equipment", AppliesBoth},
	{3, "Properties of Natural Gas and Fuels Safe Handling", AppliesBoth},
	{4, "Code and Regulations", AppliesBoth},
	{5, "Introduction to Electricity", AppliesBoth},
	{6, "Technical Manuals, Specs, Drawings and Graphs", AppliesBoth},
	{7, "Customer Relations", AppliesBoth},
	{8, "Introduction to Piping and Tubing Systems", AppliesBoth},
	{9, "Introduction to Gas Appliances", AppliesBoth},
	{10, "Advanced Piping and Tubing Systems", AppliesG2},
	{11, "Pressure Regulators", AppliesG2},
	{12, "Basic Electricity for Gas Fired Equipment", AppliesG2},
	{13, "Controls", AppliesG2},
	{14, "Building as a System", AppliesG2},
	{15, "Domestic Appliances", AppliesG2},
	{16, "Gas Fired Refrigerators", AppliesG2},
	{17, "Conversion Burners", AppliesG2},
	{18, "Water Heaters and Combination Systems", AppliesG2},
	{19, "Forced Warm Air Heating Systems", AppliesG2},
	{20, "Hydronic Heating Systems", AppliesG2},
	{21, "Space Heaters and Fireplaces", AppliesG2},
	{22, "Venting Systems", AppliesG2},
	{23, "Forced Air Add-On Devices", AppliesG2},
	{24, "Air Handling", AppliesG2},
}

// g3UnitCount is how many applicable units the G3 track sees.
const g3UnitCount = 9

// UnitsForLevel returns the units visible at the given level, ordered
// ascending by number. G3 sees the first nine applicable units; G2 sees
// the whole catalog.
func UnitsForLevel(level Level) []Unit {
	if level == LevelG3 {
		var out []Unit
		for _, u := range units {
			if u.Applies == AppliesG3 || u.Applies == AppliesBoth {
				out = append(out, u)
			}
			if len(out) == g3UnitCount {
				break
			}
		}
		return out
	}
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// UnitByNumber returns the unit with the given number, if present.
func UnitByNumber(n int) (Unit, bool) {
	for _, u := range units {
		if u.Number == n {
			return u, true
		}
	}
	return Unit{}, false
}
