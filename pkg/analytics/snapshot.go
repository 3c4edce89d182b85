package analytics

// Snapshot is a point-in-time aggregate of site metrics, either fetched
// live from Google Analytics or synthesized as demo data. Never persisted.
type Snapshot struct {
	Users      Users      `json:"users"`
	Sessions   Sessions   `json:"sessions"`
	Pageviews  Pageviews  `json:"pageviews"`
	TopPages   []TopPage  `json:"topPages"`
	Devices    Devices    `json:"devices"`
	Locations  []Location `json:"locations"`
	Source     string     `json:"source"`     // "google_analytics" | "mock_data"
	DataStatus string     `json:"dataStatus"` // "live" | "demo"
}

type Users struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Returning int `json:"returning"`
}

type Sessions struct {
	Total       int    `json:"total"`
	AvgDuration string `json:"avgDuration"`
	BounceRate  string `json:"bounceRate"`
}

type Pageviews struct {
	Total      int    `json:"total"`
	PerSession string `json:"perSession"`
}

type TopPage struct {
	Path        string `json:"path"`
	Views       int    `json:"views"`
	UniqueViews int    `json:"uniqueViews"`
}

type Devices struct {
	Desktop int `json:"desktop"`
	Mobile  int `json:"mobile"`
	Tablet  int `json:"tablet"`
}

type Location struct {
	Country string `json:"country"`
	Users   int    `json:"users"`
}

const (
	SourceLive = "google_analytics"
	SourceMock = "mock_data"

	StatusLive = "live"
	StatusDemo = "demo"
)
