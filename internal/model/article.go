package model

const (
	// NotSpecified is the journalist value when no byline could be recovered.
	NotSpecified = "Not specified"
	// UnknownDate is the published-at value when a provider gave no date.
	UnknownDate = "Unknown"
	// UnknownSource is the publication value when a provider gave no publisher.
	UnknownSource = "Unknown Source"
	// NoDescription is the description value when a provider gave none.
	NoDescription = "No description available"
)

type Article struct {
	Title       string
	Description string
	Link        string
	OriginLink  string
	Publication string
	PublishedAt string
	Journalist  string
}
