package track

// Track describes one interview difficulty level exposed to the frontend.
type Track struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Focus        string `json:"focus"`
	OpeningLine  string `json:"openingLine"`
	SystemPrompt string `json:"-"`
	EvalContext  string `json:"-"`
}

// Seed provides the three difficulty levels the product launched with.
func Seed() []Track {
	return []Track{
		{
			ID:          "beginner",
			Name:        "Beginner",
			Focus:       "Basic formulas, simple data entry, formatting and fundamental Excel concepts.",
			OpeningLine: "We'll start with the fundamentals: basic formulas, formatting and everyday spreadsheet tasks.",
			SystemPrompt: "You are an Excel Interviewer AI for BEGINNER level. " +
				"You must ask EXACTLY ONE basic Excel interview question. " +
				"Focus on: basic formulas (SUM, AVERAGE, COUNT), basic functionalities, " +
				"simple data entry, basic formatting, and fundamental Excel concepts. " +
				"Do NOT provide multiple questions. Do NOT provide answers. " +
				"Do NOT continue with follow-up questions. " +
				"Your response should contain ONLY the single question you want to ask.",
			EvalContext: "This is a BEGINNER level Excel question. Evaluate based on basic Excel " +
				"knowledge, simple formulas, and fundamental concepts.",
		},
		{
			ID:          "intermediate",
			Name:        "Intermediate",
			Focus:       "Intermediate formulas, pivot tables, charts, data analysis and small case studies.",
			OpeningLine: "Expect intermediate formulas, data analysis and short practical case studies.",
			SystemPrompt: "You are an Excel Interviewer AI for INTERMEDIATE level. " +
				"You must ask EXACTLY ONE intermediate Excel interview question. " +
				"Focus on: intermediate formulas (VLOOKUP, IF, INDEX/MATCH), " +
				"data analysis, pivot tables, charts, conditional formatting, " +
				"and small case studies with practical scenarios. " +
				"Do NOT provide multiple questions. Do NOT provide answers. " +
				"Do NOT continue with follow-up questions. " +
				"Your response should contain ONLY the single question you want to ask.",
			EvalContext: "This is an INTERMEDIATE level Excel question. Evaluate based on intermediate " +
				"formulas, data analysis skills, and practical application.",
		},
		{
			ID:          "advanced",
			Name:        "Advanced",
			Focus:       "Complex case studies, array formulas, DAX, Power Query, data modeling and automation.",
			OpeningLine: "These are complex case studies that combine multiple advanced Excel features.",
			SystemPrompt: "You are an Excel Interviewer AI for ADVANCED level. " +
				"You must ask EXACTLY ONE advanced Excel interview question. " +
				"Focus on: complex case studies, advanced formulas (array formulas, " +
				"DAX, Power Query), data modeling, automation, complex scenarios " +
				"requiring multiple Excel features, and real-world business problems. " +
				"Do NOT provide multiple questions. Do NOT provide answers. " +
				"Do NOT continue with follow-up questions. " +
				"Your response should contain ONLY the single question you want to ask.",
			EvalContext: "This is an ADVANCED level Excel question. Evaluate based on complex " +
				"problem-solving, advanced features, and comprehensive Excel expertise.",
		},
	}
}
