package types

// Mode selects which upstream shape a deployment reads from.
type Mode string

const (
	// ModeStructured reads the JSON badge and certificate endpoints.
	ModeStructured Mode = "structured"
	// ModePage scrapes the public profile page.
	ModePage Mode = "page"
)

// Material is the raw upstream data handed from acquisition to extraction.
// Structured material fills Badges and Certificates; page material fills HTML and PageURL.
type Material struct {
	Mode         Mode
	Badges       []map[string]any
	Certificates []map[string]any
	HTML         string
	PageURL      string
}
