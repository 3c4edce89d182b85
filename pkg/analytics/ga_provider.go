package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"peche-payments-be/internal/pkg/logger"

	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

// Config carries the service-account credentials and GA4 property used for
// the live path. The private key must keep its PEM markers; escaped "\n"
// sequences from .env files are unescaped before use.
type Config struct {
	ClientEmail string
	PrivateKey  string
	ProjectID   string
	PropertyID  string
}

type Provider struct {
	cfg    Config
	logger logger.ILogger
	ga     *analyticsdata.Service
}

func NewProvider(cfg Config, sysLogger logger.ILogger) *Provider {
	p := &Provider{
		cfg:    cfg,
		logger: sysLogger,
	}

	if !p.IsConfigured() {
		sysLogger.Warn("analytics", "Google Analytics not configured, using mock data", nil)
		return p
	}

	creds := map[string]string{
		"type":         "service_account",
		"client_email": cfg.ClientEmail,
		"private_key":  strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
		"token_uri":    "https://oauth2.googleapis.com/token",
	}
	if cfg.ProjectID != "" {
		creds["project_id"] = cfg.ProjectID
	}
	payload, err := json.Marshal(creds)
	if err != nil {
		sysLogger.Error("analytics", "Failed to build GA credentials", map[string]interface{}{"error": err.Error()})
		return p
	}

	svc, err := analyticsdata.NewService(context.Background(),
		option.WithCredentialsJSON(payload),
		option.WithScopes(analyticsdata.AnalyticsReadonlyScope),
	)
	if err != nil {
		sysLogger.Error("analytics", "Failed to initialize GA client", map[string]interface{}{"error": err.Error()})
		return p
	}

	p.ga = svc
	sysLogger.Info("analytics", "Google Analytics client initialized", map[string]interface{}{"property": cfg.PropertyID})
	return p
}

// IsConfigured reports whether all credential pieces are present and the
// private key carries the expected PEM marker.
func (p *Provider) IsConfigured() bool {
	if p.cfg.ClientEmail == "" || p.cfg.PrivateKey == "" || p.cfg.PropertyID == "" {
		return false
	}
	return strings.Contains(p.cfg.PrivateKey, "BEGIN PRIVATE KEY")
}

// GetSnapshot returns live data when every reporting query succeeds, and
// falls back wholesale to mock data otherwise. Partial live results are
// never mixed into the mock shape.
func (p *Provider) GetSnapshot(ctx context.Context) *Snapshot {
	if !p.IsConfigured() || p.ga == nil {
		return MockSnapshot()
	}

	snapshot, err := p.fetchLive(ctx)
	if err != nil {
		p.logger.Error("analytics", "GA fetch failed, falling back to mock data", map[string]interface{}{"error": err.Error()})
		return MockSnapshot()
	}
	return snapshot
}

func (p *Provider) runReport(ctx context.Context, req *analyticsdata.RunReportRequest) (*analyticsdata.RunReportResponse, error) {
	return p.ga.Properties.RunReport("properties/"+p.cfg.PropertyID, req).Context(ctx).Do()
}

func last30Days() []*analyticsdata.DateRange {
	return []*analyticsdata.DateRange{{StartDate: "30daysAgo", EndDate: "today"}}
}

func (p *Provider) fetchLive(ctx context.Context) (*Snapshot, error) {
	// Connection probe first, so auth/property problems surface with a
	// cheap query before the full set runs.
	if _, err := p.runReport(ctx, &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{{StartDate: "7daysAgo", EndDate: "today"}},
		Metrics:    []*analyticsdata.Metric{{Name: "activeUsers"}},
	}); err != nil {
		return nil, fmt.Errorf("connection probe: %w", err)
	}

	usersResp, err := p.runReport(ctx, &analyticsdata.RunReportRequest{
		DateRanges: last30Days(),
		Dimensions: []*analyticsdata.Dimension{{Name: "newVsReturning"}},
		Metrics:    []*analyticsdata.Metric{{Name: "activeUsers"}},
	})
	if err != nil {
		return nil, fmt.Errorf("users report: %w", err)
	}

	sessionsResp, err := p.runReport(ctx, &analyticsdata.RunReportRequest{
		DateRanges: last30Days(),
		Metrics: []*analyticsdata.Metric{
			{Name: "sessions"},
			{Name: "averageSessionDuration"},
			{Name: "bounceRate"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sessions report: %w", err)
	}

	pageviewsResp, err := p.runReport(ctx, &analyticsdata.RunReportRequest{
		DateRanges: last30Days(),
		Metrics: []*analyticsdata.Metric{
			{Name: "screenPageViews"},
			{Name: "screenPageViewsPerSession"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("pageviews report: %w", err)
	}

	topPagesResp, err := p.runReport(ctx, &analyticsdata.RunReportRequest{
		DateRanges: last30Days(),
		Dimensions: []*analyticsdata.Dimension{{Name: "pagePath"}},
		Metrics: []*analyticsdata.Metric{
			{Name: "screenPageViews"},
			{Name: "totalUsers"},
		},
		OrderBys: []*analyticsdata.OrderBy{{Metric: &analyticsdata.MetricOrderBy{MetricName: "screenPageViews"}, Desc: true}},
		Limit:    10,
	})
	if err != nil {
		return nil, fmt.Errorf("top pages report: %w", err)
	}

	devicesResp, err := p.runReport(ctx, &analyticsdata.RunReportRequest{
		DateRanges: last30Days(),
		Dimensions: []*analyticsdata.Dimension{{Name: "deviceCategory"}},
		Metrics:    []*analyticsdata.Metric{{Name: "activeUsers"}},
	})
	if err != nil {
		return nil, fmt.Errorf("devices report: %w", err)
	}

	locationsResp, err := p.runReport(ctx, &analyticsdata.RunReportRequest{
		DateRanges: last30Days(),
		Dimensions: []*analyticsdata.Dimension{{Name: "country"}},
		Metrics:    []*analyticsdata.Metric{{Name: "activeUsers"}},
		OrderBys:   []*analyticsdata.OrderBy{{Metric: &analyticsdata.MetricOrderBy{MetricName: "activeUsers"}, Desc: true}},
		Limit:      10,
	})
	if err != nil {
		return nil, fmt.Errorf("locations report: %w", err)
	}

	snapshot := processResponses(usersResp, sessionsResp, pageviewsResp, topPagesResp, devicesResp, locationsResp)
	snapshot.Source = SourceLive
	snapshot.DataStatus = StatusLive
	return snapshot, nil
}

func processResponses(users, sessions, pageviews, topPages, devices, locations *analyticsdata.RunReportResponse) *Snapshot {
	var totalUsers, newUsers, returningUsers int
	for _, row := range users.Rows {
		n := metricInt(row, 0)
		totalUsers += n
		if dimension(row, 0) == "new" {
			newUsers = n
		} else {
			returningUsers = n
		}
	}

	var sessionTotal int
	var avgDuration, bounceRate float64
	if len(sessions.Rows) > 0 {
		sessionTotal = metricInt(sessions.Rows[0], 0)
		avgDuration = metricFloat(sessions.Rows[0], 1)
		bounceRate = metricFloat(sessions.Rows[0], 2)
	}

	var pageviewTotal int
	var perSession float64
	if len(pageviews.Rows) > 0 {
		pageviewTotal = metricInt(pageviews.Rows[0], 0)
		perSession = metricFloat(pageviews.Rows[0], 1)
	}

	pages := make([]TopPage, 0, len(topPages.Rows))
	for _, row := range topPages.Rows {
		pages = append(pages, TopPage{
			Path:        dimension(row, 0),
			Views:       metricInt(row, 0),
			UniqueViews: metricInt(row, 1),
		})
	}

	// Device shares are rounded independently; the three values may not
	// sum to exactly 100 and that is tolerated.
	var totalDeviceUsers int
	deviceUsers := map[string]int{}
	for _, row := range devices.Rows {
		n := metricInt(row, 0)
		totalDeviceUsers += n
		deviceUsers[strings.ToLower(dimension(row, 0))] = n
	}
	share := func(category string) int {
		if totalDeviceUsers == 0 {
			return 0
		}
		return int(float64(deviceUsers[category])/float64(totalDeviceUsers)*100 + 0.5)
	}

	locs := make([]Location, 0, len(locations.Rows))
	for _, row := range locations.Rows {
		locs = append(locs, Location{
			Country: dimension(row, 0),
			Users:   metricInt(row, 0),
		})
	}

	return &Snapshot{
		Users: Users{
			Total:     totalUsers,
			New:       newUsers,
			Returning: returningUsers,
		},
		Sessions: Sessions{
			Total:       sessionTotal,
			AvgDuration: formatDuration(avgDuration),
			BounceRate:  fmt.Sprintf("%.1f%%", bounceRate),
		},
		Pageviews: Pageviews{
			Total:      pageviewTotal,
			PerSession: fmt.Sprintf("%.1f", perSession),
		},
		TopPages:  pages,
		Devices:   Devices{Desktop: share("desktop"), Mobile: share("mobile"), Tablet: share("tablet")},
		Locations: locs,
	}
}

func dimension(row *analyticsdata.Row, i int) string {
	if row == nil || i >= len(row.DimensionValues) {
		return ""
	}
	return row.DimensionValues[i].Value
}

func metricInt(row *analyticsdata.Row, i int) int {
	if row == nil || i >= len(row.MetricValues) {
		return 0
	}
	n, _ := strconv.Atoi(row.MetricValues[i].Value)
	return n
}

func metricFloat(row *analyticsdata.Row, i int) float64 {
	if row == nil || i >= len(row.MetricValues) {
		return 0
	}
	f, _ := strconv.ParseFloat(row.MetricValues[i].Value, 64)
	return f
}

func formatDuration(seconds float64) string {
	m := int(seconds) / 60
	s := int(seconds) % 60
	return fmt.Sprintf("%dm %ds", m, s)
}
