package quiz

// Section tags for the three aptitude sections.
const (
	SectionQuantitative = "quantitative"
	SectionLogical      = "logical"
	SectionVerbal       = "verbal"
)

// QuestionBankEntry is a fixed question loaded at start.
type QuestionBankEntry struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	Section     string   `json:"section"`
}

// SectionPools groups the candidate questions per section.
type SectionPools struct {
	Quantitative []QuestionBankEntry
	Logical      []QuestionBankEntry
	Verbal       []QuestionBankEntry
}

// QuestionSource supplies the candidate pools for a quiz request, keyed by
// class level ("10th", "12th", anything else gets the default set).
type QuestionSource interface {
	Questions(classLevel string) SectionPools
}

// BuiltinSource serves the fixed built-in bank. It is both the default
// source and the fallback when the generative source is unavailable.
type BuiltinSource struct{}

func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

// Questions returns copies of the built-in pools. The bank holds twenty
// questions per section so a retake within the exclusion window can still be
// served entirely fresh questions.
func (b *BuiltinSource) Questions(classLevel string) SectionPools {
	return SectionPools{
		Quantitative: append([]QuestionBankEntry(nil), builtinQuantitative...),
		Logical:      append([]QuestionBankEntry(nil), builtinLogical...),
		Verbal:       append([]QuestionBankEntry(nil), builtinVerbal...),
	}
}

var builtinQuantitative = []QuestionBankEntry{
	{ID: "q1", Question: "What is 15% of 200?", Options: []string{"20", "25", "30", "35"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q2", Question: "What is 12 multiplied by 12?", Options: []string{"124", "134", "144", "154"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q3", Question: "If 2x + 6 = 18, what is x?", Options: []string{"4", "5", "6", "7"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q4", Question: "A train covers 60 km in 45 minutes. What is its speed in km/h?", Options: []string{"70", "75", "80", "90"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q5", Question: "What is the average of 4, 8, 15, 16 and 7?", Options: []string{"9", "10", "11", "12"}, AnswerIndex: 1, Section: SectionQuantitative},
	{ID: "q6", Question: "What is three quarters of 96?", Options: []string{"68", "70", "72", "74"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q7", Question: "Simple interest on Rs. 1000 at 10% per year for 2 years is:", Options: []string{"Rs. 100", "Rs. 150", "Rs. 200", "Rs. 250"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q8", Question: "What is the next prime number after 13?", Options: []string{"15", "16", "17", "19"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q9", Question: "The area of a rectangle 8 cm by 5 cm is:", Options: []string{"26 sq cm", "35 sq cm", "40 sq cm", "45 sq cm"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q10", Question: "What is 25% of 25% of 400?", Options: []string{"20", "25", "50", "100"}, AnswerIndex: 1, Section: SectionQuantitative},
	{ID: "q11", Question: "What is the square root of 169?", Options: []string{"11", "12", "13", "14"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q12", Question: "What is the LCM of 4 and 6?", Options: []string{"8", "10", "12", "24"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q13", Question: "What is 7! divided by 5!?", Options: []string{"21", "35", "42", "56"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q14", Question: "Two numbers are in the ratio 3:5 and their sum is 64. The larger number is:", Options: []string{"24", "32", "40", "48"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q15", Question: "What is 0.2 multiplied by 0.5?", Options: []string{"0.01", "0.1", "1.0", "0.25"}, AnswerIndex: 1, Section: SectionQuantitative},
	{ID: "q16", Question: "What is 2 raised to the power 8?", Options: []string{"128", "256", "512", "64"}, AnswerIndex: 1, Section: SectionQuantitative},
	{ID: "q17", Question: "The perimeter of a square with side 9 cm is:", Options: []string{"27 cm", "32 cm", "36 cm", "81 cm"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q18", Question: "45 is what percent of 180?", Options: []string{"20%", "25%", "30%", "35%"}, AnswerIndex: 1, Section: SectionQuantitative},
	{ID: "q19", Question: "The sum of the interior angles of a triangle is:", Options: []string{"90 degrees", "120 degrees", "180 degrees", "360 degrees"}, AnswerIndex: 2, Section: SectionQuantitative},
	{ID: "q20", Question: "If 5 pens cost Rs. 60, how much do 8 pens cost?", Options: []string{"Rs. 86", "Rs. 90", "Rs. 96", "Rs. 100"}, AnswerIndex: 2, Section: SectionQuantitative},
}

var builtinLogical = []QuestionBankEntry{
	{ID: "l1", Question: "What comes next in the series 2, 4, 8, 16, ...?", Options: []string{"24", "28", "32", "36"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l2", Question: "Find the odd one out: apple, banana, carrot, mango.", Options: []string{"apple", "banana", "carrot", "mango"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l3", Question: "What comes next in the series 5, 10, 20, 40, ...?", Options: []string{"60", "70", "80", "90"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l4", Question: "All roses are flowers. Some flowers fade quickly. Which conclusion follows?", Options: []string{"All roses fade quickly", "No rose fades quickly", "Some roses may fade quickly", "Flowers never fade"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l5", Question: "If CAT becomes DBU, what does DOG become?", Options: []string{"EPH", "EPG", "DPH", "CNF"}, AnswerIndex: 0, Section: SectionLogical},
	{ID: "l6", Question: "What comes next in the series 1, 1, 2, 3, 5, 8, ...?", Options: []string{"11", "12", "13", "14"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l7", Question: "What is the angle between the hands of a clock at 3:15?", Options: []string{"0 degrees", "7.5 degrees", "15 degrees", "30 degrees"}, AnswerIndex: 1, Section: SectionLogical},
	{ID: "l8", Question: "Which number replaces the question mark: 3, 6, 11, 18, ?", Options: []string{"25", "26", "27", "28"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l9", Question: "If MONDAY is coded as NPOEBZ, how is FRIDAY coded?", Options: []string{"GSJEBZ", "GSIEBZ", "GRJEBZ", "GSJEBY"}, AnswerIndex: 0, Section: SectionLogical},
	{ID: "l10", Question: "Find the odd one out: triangle, square, circle, rectangle.", Options: []string{"triangle", "square", "circle", "rectangle"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l11", Question: "What comes next in the series 100, 90, 81, 73, ...?", Options: []string{"64", "65", "66", "67"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l12", Question: "You walk north and then turn right. Which direction are you facing?", Options: []string{"West", "East", "South", "North"}, AnswerIndex: 1, Section: SectionLogical},
	{ID: "l13", Question: "Some cats are dogs. All dogs bark. Which conclusion follows?", Options: []string{"All cats bark", "Some cats bark", "No cat barks", "Dogs are cats"}, AnswerIndex: 1, Section: SectionLogical},
	{ID: "l14", Question: "What letter comes next: J, F, M, A, ...?", Options: []string{"J", "M", "S", "O"}, AnswerIndex: 1, Section: SectionLogical},
	{ID: "l15", Question: "Six people each shake hands with every other person once. How many handshakes?", Options: []string{"12", "15", "18", "30"}, AnswerIndex: 1, Section: SectionLogical},
	{ID: "l16", Question: "Find the odd one out: 121, 144, 169, 190.", Options: []string{"121", "144", "169", "190"}, AnswerIndex: 3, Section: SectionLogical},
	{ID: "l17", Question: "If A is greater than B and B is greater than C, then:", Options: []string{"A equals C", "A is greater than C", "C is greater than A", "Cannot be determined"}, AnswerIndex: 1, Section: SectionLogical},
	{ID: "l18", Question: "Complete the pattern: AZ, BY, CX, ...?", Options: []string{"DV", "DW", "EW", "DX"}, AnswerIndex: 1, Section: SectionLogical},
	{ID: "l19", Question: "What comes next in the series 4, 9, 16, 25, ...?", Options: []string{"30", "32", "36", "49"}, AnswerIndex: 2, Section: SectionLogical},
	{ID: "l20", Question: "A father is three times as old as his son. Their ages sum to 48. How old is the son?", Options: []string{"10", "12", "14", "16"}, AnswerIndex: 1, Section: SectionLogical},
}

var builtinVerbal = []QuestionBankEntry{
	{ID: "v1", Question: "Choose the synonym of 'abundant'.", Options: []string{"rare", "plentiful", "small", "empty"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v2", Question: "Choose the antonym of 'expand'.", Options: []string{"grow", "stretch", "contract", "widen"}, AnswerIndex: 2, Section: SectionVerbal},
	{ID: "v3", Question: "Choose the correctly spelled word.", Options: []string{"acommodate", "accomodate", "accommodate", "acomodate"}, AnswerIndex: 2, Section: SectionVerbal},
	{ID: "v4", Question: "She ___ to school every day.", Options: []string{"go", "goes", "going", "gone"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v5", Question: "Choose the synonym of 'candid'.", Options: []string{"secretive", "frank", "rude", "shy"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v6", Question: "Choose the antonym of 'ancient'.", Options: []string{"old", "antique", "modern", "historic"}, AnswerIndex: 2, Section: SectionVerbal},
	{ID: "v7", Question: "What is the plural of 'criterion'?", Options: []string{"criterions", "criteria", "criterias", "criterion"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v8", Question: "The idiom 'once in a blue moon' means:", Options: []string{"very often", "very rarely", "at night", "every month"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v9", Question: "Neither of the boys ___ present.", Options: []string{"were", "are", "was", "have been"}, AnswerIndex: 2, Section: SectionVerbal},
	{ID: "v10", Question: "Choose the antonym of 'victory'.", Options: []string{"win", "defeat", "success", "triumph"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v11", Question: "Choose the synonym of 'diligent'.", Options: []string{"lazy", "careless", "hardworking", "slow"}, AnswerIndex: 2, Section: SectionVerbal},
	{ID: "v12", Question: "Which word is closest in meaning to 'commence'?", Options: []string{"finish", "begin", "pause", "cancel"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v13", Question: "I have lived here ___ 2010.", Options: []string{"for", "from", "since", "until"}, AnswerIndex: 2, Section: SectionVerbal},
	{ID: "v14", Question: "Choose the antonym of 'transparent'.", Options: []string{"clear", "opaque", "thin", "bright"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v15", Question: "Choose the correctly punctuated sentence.", Options: []string{"Its raining outside.", "It's raining outside.", "Its' raining outside.", "It is raining outside"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v16", Question: "Choose the synonym of 'fragile'.", Options: []string{"strong", "delicate", "heavy", "solid"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v17", Question: "He is good ___ mathematics.", Options: []string{"in", "on", "at", "with"}, AnswerIndex: 2, Section: SectionVerbal},
	{ID: "v18", Question: "A person who writes books is called:", Options: []string{"an editor", "an author", "a librarian", "a publisher"}, AnswerIndex: 1, Section: SectionVerbal},
	{ID: "v19", Question: "Choose the antonym of 'generous'.", Options: []string{"kind", "giving", "stingy", "friendly"}, AnswerIndex: 2, Section: SectionVerbal},
	{ID: "v20", Question: "Choose the synonym of 'rapid'.", Options: []string{"slow", "steady", "swift", "late"}, AnswerIndex: 2, Section: SectionVerbal},
}
