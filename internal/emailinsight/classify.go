package emailinsight

import (
	"strings"

	"github.com/Bahjat/email-insight/internal/model"
)

// CategorizeLink classifies a raw href. Tutorial indicators are checked
// before vendor indicators, so a URL matching both is a tutorial link.
func CategorizeLink(rawURL string) model.LinkCategory {
	lower := strings.ToLower(rawURL)

	switch {
	case containsAny(lower, tutorialURLIndicators):
		return model.CategoryTutorial
	case containsAny(lower, vendorURLIndicators):
		return model.CategoryVendor
	default:
		return model.CategoryGeneral
	}
}

// DetectTutorialContent reports whether the document text mentions any
// tutorial keyword.
func DetectTutorialContent(text string) bool {
	return containsAny(strings.ToLower(text), tutorialTextKeywords)
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
