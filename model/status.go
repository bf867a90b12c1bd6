package model

const (
	StatusNone        = "none"
	StatusOperational = "operational"

	defaultStatusDescription = "Everything is fine (for now)"
	missingUpdateDescription = "No description available"
)

// IncidentUpdate ..
type IncidentUpdate struct {
	Body string `json:"body"`
}

// Incident ..
type Incident struct {
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	Impact          string           `json:"impact"`
	IncidentUpdates []IncidentUpdate `json:"incident_updates"`
}

// IncidentFeed is the unresolved-incidents payload of the upstream status page.
type IncidentFeed struct {
	Incidents []Incident `json:"incidents"`
}

// StatusIndicator is the normalized "is anything wrong" signal derived from
// the incident feed.
type StatusIndicator struct {
	Name        string `json:"name,omitempty"`
	Status      string `json:"status"`
	Impact      string `json:"impact,omitempty"`
	Description string `json:"description"`
	URL         string `json:"url"`
	HasIssues   bool   `json:"has_issues"`
}

// NewStatusIndicator rebuilds the indicator from a feed. An empty feed always
// resolves to the no-issues value regardless of prior state; otherwise the
// first (most recent) incident wins, described by its newest update.
func NewStatusIndicator(feed IncidentFeed, pageURL string) StatusIndicator {
	if len(feed.Incidents) == 0 {
		return StatusIndicator{
			Status:      StatusNone,
			Description: defaultStatusDescription,
			URL:         pageURL,
		}
	}

	incident := feed.Incidents[0]
	description := missingUpdateDescription
	if len(incident.IncidentUpdates) > 0 {
		description = incident.IncidentUpdates[0].Body
	}

	return StatusIndicator{
		Name:        incident.Name,
		Status:      incident.Status,
		Impact:      incident.Impact,
		Description: description,
		URL:         pageURL,
		HasIssues:   incident.Status != "" && incident.Status != StatusNone && incident.Status != StatusOperational,
	}
}
