package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// FlexFloat accepts JSON numbers or numeric strings; anything unparsable
// decodes to zero rather than failing the request.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// RecommendationForm is the raw payload posted by the frontend.
type RecommendationForm struct {
	Email           string               `json:"email"`
	Name            string               `json:"name"`
	Stream          string               `json:"stream"`
	ClassLevel      string               `json:"classLevel"`
	Marks10th       FlexFloat            `json:"marks10th"`
	Marks12th       FlexFloat            `json:"marks12th"`
	MathsPercent    FlexFloat            `json:"mathsPercent"`
	SciencePercent  FlexFloat            `json:"sciencePercent"`
	CommercePercent FlexFloat            `json:"commercePercent"`
	EnglishPercent  FlexFloat            `json:"englishPercent"`
	CsItPercent     FlexFloat            `json:"csItPercent"`
	Interests       map[string]FlexFloat `json:"interests"`
	Aptitude        map[string]FlexFloat `json:"aptitude"`
	DreamText       string               `json:"dreamText"`
	Skills          []string             `json:"skills"`
	CareerDomains   []string             `json:"careerDomains"`
	EntranceExams   []string             `json:"entranceExams"`
}

// Interests holds normalized 0-10 interest ratings.
type Interests struct {
	Coding   float64 `json:"coding"`
	Design   float64 `json:"design"`
	Math     float64 `json:"math"`
	Science  float64 `json:"science"`
	Business float64 `json:"business"`
	People   float64 `json:"people"`
	Creative float64 `json:"creative"`
}

// Aptitudes holds normalized 0-10 aptitude scores.
type Aptitudes struct {
	Quantitative float64 `json:"quantitative"`
	Logical      float64 `json:"logical"`
	Verbal       float64 `json:"verbal"`
	Creative     float64 `json:"creative"`
	Technical    float64 `json:"technical"`
	Commerce     float64 `json:"commerce"`
}

// StudentProfile is the canonical, normalized profile used by the scoring
// pipeline. Immutable once constructed for a single scoring call.
type StudentProfile struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Stream     string `json:"stream"`
	ClassLevel string `json:"class_level"`

	CGPA        float64 `json:"cgpa"`
	Marks10th   float64 `json:"marks_10th"`
	Marks12th   float64 `json:"marks_12th"`
	MathsPct    float64 `json:"maths_pct"`
	SciencePct  float64 `json:"science_pct"`
	CommercePct float64 `json:"commerce_pct"`
	EnglishPct  float64 `json:"english_pct"`
	CsItPct     float64 `json:"cs_it_pct"`

	Interests Interests `json:"interests"`
	Aptitudes Aptitudes `json:"aptitudes"`

	Aspiration    string   `json:"aspiration"`
	Skills        []string `json:"skills"`
	CareerDomains []string `json:"career_domains"`
	EntranceExams []string `json:"entrance_exams"`
}

var (
	spaceRE   = regexp.MustCompile(`\s+`)
	specialRE = regexp.MustCompile(`[^\w\s.,!?-]`)
)

// CleanText lowercases free-text input, collapses whitespace and strips
// special characters except basic punctuation.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = spaceRE.ReplaceAllString(text, " ")
	text = specialRE.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ratingOutOf5 reads a 1-5 rating from the form. A missing rating defaults
// to the mid-scale 3; values are clamped and doubled onto the 0-10 scale.
func ratingOutOf5(m map[string]FlexFloat, key string) float64 {
	v, ok := m[key]
	if !ok {
		return 6.0 // 3/5 doubled
	}
	return clamp(float64(v), 0, 5) * 2
}

// aptitudeOutOf10 reads a 0-10 aptitude score, defaulting to mid-scale when
// the field is missing.
func aptitudeOutOf10(m map[string]FlexFloat, key string) float64 {
	v, ok := m[key]
	if !ok {
		return 5.0
	}
	return clamp(float64(v), 0, 10)
}

// percentTo10 maps a 0-100 percentage onto the 0-10 scale.
func percentTo10(v FlexFloat) float64 {
	return clamp(float64(v), 0, 100) / 10
}

// NormalizeForm maps raw form fields into a canonical StudentProfile. Pure;
// no side effects. Every field is defaulted and clamped so downstream
// scoring never sees out-of-range values.
func NormalizeForm(form RecommendationForm) StudentProfile {
	marks10 := percentTo10(form.Marks10th)
	marks12 := percentTo10(form.Marks12th)
	cgpa := marks10
	if marks12 > 0 {
		cgpa = (marks10 + marks12) / 2
	}

	return StudentProfile{
		Email:      form.Email,
		Name:       form.Name,
		Stream:     form.Stream,
		ClassLevel: form.ClassLevel,

		CGPA:        cgpa,
		Marks10th:   marks10,
		Marks12th:   marks12,
		MathsPct:    percentTo10(form.MathsPercent),
		SciencePct:  percentTo10(form.SciencePercent),
		CommercePct: percentTo10(form.CommercePercent),
		EnglishPct:  percentTo10(form.EnglishPercent),
		CsItPct:     percentTo10(form.CsItPercent),

		Interests: Interests{
			Coding:   ratingOutOf5(form.Interests, "coding"),
			Design:   ratingOutOf5(form.Interests, "design"),
			Math:     ratingOutOf5(form.Interests, "math"),
			Science:  ratingOutOf5(form.Interests, "science"),
			Business: ratingOutOf5(form.Interests, "business"),
			People:   ratingOutOf5(form.Interests, "people"),
			Creative: ratingOutOf5(form.Interests, "creative"),
		},
		Aptitudes: Aptitudes{
			Quantitative: aptitudeOutOf10(form.Aptitude, "quantitative"),
			Logical:      aptitudeOutOf10(form.Aptitude, "logical"),
			Verbal:       aptitudeOutOf10(form.Aptitude, "verbal"),
			Creative:     aptitudeOutOf10(form.Aptitude, "creative"),
			Technical:    aptitudeOutOf10(form.Aptitude, "technical"),
			Commerce:     aptitudeOutOf10(form.Aptitude, "commerce"),
		},

		Aspiration:    CleanText(form.DreamText),
		Skills:        form.Skills,
		CareerDomains: form.CareerDomains,
		EntranceExams: form.EntranceExams,
	}
}

// QueryText builds the text encoded for semantic matching: the aspiration
// plus stream/class context and the student's strongest interests and
// aptitudes.
func (p StudentProfile) QueryText() string {
	var parts []string

	if p.Aspiration != "" {
		parts = append(parts, p.Aspiration)
	}
	parts = append(parts, "I am a "+p.Stream+" student in "+p.ClassLevel)

	interestNames := []struct {
		name  string
		score float64
	}{
		{"coding", p.Interests.Coding},
		{"design", p.Interests.Design},
		{"mathematics", p.Interests.Math},
		{"science", p.Interests.Science},
		{"business", p.Interests.Business},
		{"working with people", p.Interests.People},
		{"creative work", p.Interests.Creative},
	}
	var strong []string
	for _, in := range interestNames {
		if in.score >= 6 {
			strong = append(strong, in.name)
		}
	}
	if len(strong) > 0 {
		parts = append(parts, "I am interested in "+strings.Join(strong, ", "))
	}

	aptitudeNames := []struct {
		name  string
		score float64
	}{
		{"quantitative reasoning", p.Aptitudes.Quantitative},
		{"logical thinking", p.Aptitudes.Logical},
		{"verbal communication", p.Aptitudes.Verbal},
		{"creative thinking", p.Aptitudes.Creative},
		{"technical skills", p.Aptitudes.Technical},
	}
	var good []string
	for _, apt := range aptitudeNames {
		if apt.score >= 7 {
			good = append(good, apt.name)
		}
	}
	if len(good) > 0 {
		parts = append(parts, "I am good at "+strings.Join(good, ", "))
	}

	return strings.Join(parts, ". ") + "."
}
