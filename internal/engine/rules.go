package engine

// AptitudeWeights is a fixed per-domain weighting over the six aptitude
// axes. Weights sum to 1 so a weighted dot with 0-10 scores divides by 10
// into [0,1].
type AptitudeWeights struct {
	Quantitative float64
	Logical      float64
	Verbal       float64
	Creative     float64
	Technical    float64
	Commerce     float64
}

// InterestWeights is a fixed per-domain weighting over the seven interest
// axes.
type InterestWeights struct {
	Coding   float64
	Design   float64
	Math     float64
	Science  float64
	Business float64
	People   float64
	Creative float64
}

// NeutralScore is assigned to both sub-scores when a career's domain has no
// table entry. An unknown domain must not fail scoring.
const NeutralScore = 0.5

// domainAptitudes maps career domain -> required aptitude profile.
var domainAptitudes = map[string]AptitudeWeights{
	"technology":  {Technical: 0.35, Logical: 0.30, Quantitative: 0.25, Verbal: 0.05, Creative: 0.05},
	"analytics":   {Quantitative: 0.35, Logical: 0.30, Technical: 0.20, Verbal: 0.10, Creative: 0.05},
	"design":      {Creative: 0.40, Verbal: 0.25, Technical: 0.20, Logical: 0.10, Quantitative: 0.05},
	"engineering": {Technical: 0.30, Quantitative: 0.25, Logical: 0.25, Creative: 0.15, Verbal: 0.05},
	"healthcare":  {Verbal: 0.30, Quantitative: 0.25, Logical: 0.20, Technical: 0.15, Creative: 0.10},
	"finance":     {Quantitative: 0.35, Commerce: 0.30, Logical: 0.20, Verbal: 0.10, Technical: 0.05},
	"business":    {Verbal: 0.30, Commerce: 0.25, Logical: 0.20, Creative: 0.15, Quantitative: 0.10},
	"operations":  {Logical: 0.30, Quantitative: 0.25, Commerce: 0.20, Verbal: 0.15, Technical: 0.10},
}

// domainInterests maps career domain -> associated interest profile.
var domainInterests = map[string]InterestWeights{
	"technology":  {Coding: 0.50, Math: 0.20, Science: 0.20, Creative: 0.10},
	"analytics":   {Math: 0.40, Coding: 0.30, Science: 0.20, Business: 0.10},
	"design":      {Design: 0.50, Creative: 0.30, Coding: 0.20},
	"engineering": {Science: 0.40, Math: 0.30, Coding: 0.20, Creative: 0.10},
	"healthcare":  {Science: 0.50, Math: 0.20, People: 0.20, Coding: 0.10},
	"finance":     {Business: 0.50, Math: 0.30, People: 0.20},
	"business":    {Business: 0.50, People: 0.30, Creative: 0.20},
	"operations":  {Business: 0.40, People: 0.30, Math: 0.30},
}

// AptitudeScore computes the weighted match between the student's aptitude
// vector and the domain's required-aptitude weights, normalized to [0,1].
func AptitudeScore(p StudentProfile, domain string) float64 {
	w, ok := domainAptitudes[domain]
	if !ok {
		return NeutralScore
	}
	score := w.Quantitative*p.Aptitudes.Quantitative +
		w.Logical*p.Aptitudes.Logical +
		w.Verbal*p.Aptitudes.Verbal +
		w.Creative*p.Aptitudes.Creative +
		w.Technical*p.Aptitudes.Technical +
		w.Commerce*p.Aptitudes.Commerce
	return clamp(score/10, 0, 1)
}

// InterestScore computes the normalized overlap between the student's
// interest ratings and the domain's associated interest tags, in [0,1].
func InterestScore(p StudentProfile, domain string) float64 {
	w, ok := domainInterests[domain]
	if !ok {
		return NeutralScore
	}
	score := w.Coding*p.Interests.Coding +
		w.Design*p.Interests.Design +
		w.Math*p.Interests.Math +
		w.Science*p.Interests.Science +
		w.Business*p.Interests.Business +
		w.People*p.Interests.People +
		w.Creative*p.Interests.Creative
	return clamp(score/10, 0, 1)
}

// KnownDomain reports whether the domain has rule-table entries.
func KnownDomain(domain string) bool {
	_, ok := domainAptitudes[domain]
	return ok
}
