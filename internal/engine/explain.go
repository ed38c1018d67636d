package engine

import (
	"fmt"
	"sort"

	"pathfinder-backend-V1.0/internal/catalog"
)

// Explanation is the human-readable justification attached to each result.
type Explanation struct {
	MatchStrength string   `json:"match_strength"`
	Summary       string   `json:"summary"`
	Reasons       []string `json:"reasons"`
}

// Match-strength bands over the composite fraction (composite / 10).
const (
	excellentThreshold = 0.85
	veryGoodThreshold  = 0.70
	goodThreshold      = 0.50
)

func matchStrength(compositeFraction float64) (label, verdict string) {
	switch {
	case compositeFraction >= excellentThreshold:
		return "Excellent Match", "highly recommended"
	case compositeFraction >= veryGoodThreshold:
		return "Very Good Match", "strongly recommended"
	case compositeFraction >= goodThreshold:
		return "Good Match", "recommended"
	default:
		return "Possible Match", "worth considering"
	}
}

// Explain derives the match band, summary sentence and 1-3 reason strings
// from the sub-scores and the career's domain tables. Deterministic for
// identical inputs: template choice is driven only by score bands and fixed
// iteration order.
func Explain(p StudentProfile, career catalog.CareerRecord, sc ScoredCareer) Explanation {
	label, verdict := matchStrength(sc.Composite / 10)

	strongest := strongestComponent(sc)
	summary := fmt.Sprintf("%s is %s based on your profile; your %s is the strongest signal for the %s domain.",
		career.Title, verdict, strongest, career.Domain)

	reasons := make([]string, 0, 3)

	if sc.Similarity >= 0.5 {
		reasons = append(reasons, fmt.Sprintf("Your stated aspirations closely match the day-to-day work of a %s.", career.Title))
	}
	reasons = append(reasons, aptitudeReasons(p, career.Domain)...)
	if len(reasons) < 3 {
		reasons = append(reasons, interestReasons(p, career.Domain)...)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("Your overall profile is a reasonable fit for the %s domain.", career.Domain))
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	return Explanation{
		MatchStrength: label,
		Summary:       summary,
		Reasons:       reasons,
	}
}

func strongestComponent(sc ScoredCareer) string {
	switch {
	case sc.Similarity >= sc.Aptitude && sc.Similarity >= sc.Interest:
		return "aspiration match"
	case sc.Aptitude >= sc.Interest:
		return "aptitude fit"
	default:
		return "interest fit"
	}
}

// aptitudeReasons names the student aptitudes that both matter for the
// domain (table weight >= 0.2) and are strong (>= 7/10) or good (>= 5/10).
func aptitudeReasons(p StudentProfile, domain string) []string {
	w, ok := domainAptitudes[domain]
	if !ok {
		return nil
	}

	type axis struct {
		name   string
		weight float64
		score  float64
	}
	axes := []axis{
		{"quantitative", w.Quantitative, p.Aptitudes.Quantitative},
		{"logical", w.Logical, p.Aptitudes.Logical},
		{"verbal", w.Verbal, p.Aptitudes.Verbal},
		{"creative", w.Creative, p.Aptitudes.Creative},
		{"technical", w.Technical, p.Aptitudes.Technical},
		{"commerce", w.Commerce, p.Aptitudes.Commerce},
	}
	sort.SliceStable(axes, func(i, j int) bool { return axes[i].score > axes[j].score })

	var reasons []string
	for _, a := range axes {
		if len(reasons) == 2 {
			break
		}
		if a.weight < 0.2 {
			continue
		}
		switch {
		case a.score >= 7:
			reasons = append(reasons, fmt.Sprintf("Your strong %s aptitude (%.0f/10) aligns with this career's requirements.", a.name, a.score))
		case a.score >= 5:
			reasons = append(reasons, fmt.Sprintf("Your good %s aptitude (%.0f/10) supports this career path.", a.name, a.score))
		}
	}
	return reasons
}

// interestReasons names the strong student interests (>= 6/10) the domain's
// interest table actually rewards.
func interestReasons(p StudentProfile, domain string) []string {
	w, ok := domainInterests[domain]
	if !ok {
		return nil
	}

	type axis struct {
		name   string
		weight float64
		score  float64
	}
	axes := []axis{
		{"coding", w.Coding, p.Interests.Coding},
		{"design", w.Design, p.Interests.Design},
		{"mathematics", w.Math, p.Interests.Math},
		{"science", w.Science, p.Interests.Science},
		{"business", w.Business, p.Interests.Business},
		{"working with people", w.People, p.Interests.People},
		{"creative work", w.Creative, p.Interests.Creative},
	}
	sort.SliceStable(axes, func(i, j int) bool { return axes[i].score > axes[j].score })

	var reasons []string
	for _, a := range axes {
		if len(reasons) == 2 {
			break
		}
		if a.weight >= 0.2 && a.score >= 6 {
			reasons = append(reasons, fmt.Sprintf("High interest in %s (%.0f/10) fits the %s domain.", a.name, a.score, domain))
		}
	}
	return reasons
}
