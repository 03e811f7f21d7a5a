package cohort

// Word sets used to synthesize course feedback comments.
var (
	StandardWords = []string{
		"interesting", "helpful", "engaging", "clear", "homework",
		"teacher", "discussion", "fun", "confusing", "useful",
	}

	RigorWords = []string{
		"challenging", "rigorous", "demanding", "fast-paced", "stressful",
		"exams", "workload", "problem-sets", "lab", "intense",
	}

	InclusiveWords = []string{
		"perspectives", "identity", "belonging", "community", "voices",
		"justice", "respectful", "empathy", "diverse", "safe",
	}
)
