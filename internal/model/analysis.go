package model

// LinkCategory is the single classification assigned to an extracted link.
type LinkCategory string

const (
	CategoryTutorial LinkCategory = "tutorial"
	CategoryVendor   LinkCategory = "vendor"
	CategoryGeneral  LinkCategory = "general"
)

// Link is an anchor found in the email body.
type Link struct {
	URL  string       `json:"url"`
	Text string       `json:"text"`
	Type LinkCategory `json:"type"`
}

// AnalysisResult holds the complete result of analyzing an email body.
type AnalysisResult struct {
	Links              []Link `json:"links"`
	TextLength         int    `json:"text_length"`
	LinkCount          int    `json:"link_count"`
	HasTutorialContent bool   `json:"has_tutorial_content"`
	VendorLinks        []Link `json:"vendor_links"`
	TutorialLinks      []Link `json:"tutorial_links"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
