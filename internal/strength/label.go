package strength

// Level is a strength band derived from the final score.
type Level struct {
	Name  string
	Class string
	Color string
}

var (
	VeryStrong = Level{Name: "Very Strong", Class: "very-strong", Color: "#10b981"}
	Strong     = Level{Name: "Strong", Class: "strong", Color: "#059669"}
	Moderate   = Level{Name: "Moderate", Class: "moderate", Color: "#d97706"}
	Weak       = Level{Name: "Weak", Class: "weak", Color: "#dc2626"}
)

// LevelFor maps a clamped score to its strength band.
func LevelFor(score int) Level {
	switch {
	case score >= 7:
		return VeryStrong
	case score >= 5:
		return Strong
	case score >= 3:
		return Moderate
	default:
		return Weak
	}
}
