package emailinsight

// Indicator tables. Matching is a case-insensitive substring test, so every
// entry must be lower case. Order inside a table does not affect results.
var (
	tutorialURLIndicators = []string{"tutorial", "guide", "learn", "course", "lesson", "howto", "docs"}
	vendorURLIndicators   = []string{"shop", "buy", "product", "pricing", "subscribe", "signup", "register"}

	tutorialTextKeywords = []string{
		"step",
		"install",
		"setup",
		"configure",
		"tutorial",
		"guide",
		"npm install",
		"pip install",
	}
)
