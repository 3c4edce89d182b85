package analytics

import (
	"fmt"
	"math/rand"
)

// MockSnapshot synthesizes a demo snapshot with the same shape as the live
// path. Headline numbers are randomized so the dashboard does not look
// frozen; list data is fixed.
func MockSnapshot() *Snapshot {
	totalUsers := rand.Intn(5000) + 1000
	newUsers := int(float64(totalUsers) * 0.7)
	returningUsers := totalUsers - newUsers

	return &Snapshot{
		Users: Users{
			Total:     totalUsers,
			New:       newUsers,
			Returning: returningUsers,
		},
		Sessions: Sessions{
			Total:       int(float64(totalUsers) * 1.2),
			AvgDuration: formatDuration(rand.Float64()*120 + 60),
			BounceRate:  fmt.Sprintf("%.1f%%", rand.Float64()*20+30),
		},
		Pageviews: Pageviews{
			Total:      int(float64(totalUsers) * 3.5),
			PerSession: fmt.Sprintf("%.1f", rand.Float64()*2+2.5),
		},
		TopPages: []TopPage{
			{Path: "/", Views: 3456, UniqueViews: 2345},
			{Path: "/products", Views: 2876, UniqueViews: 1987},
			{Path: "/about", Views: 1567, UniqueViews: 1234},
			{Path: "/contact", Views: 987, UniqueViews: 876},
			{Path: "/blog", Views: 765, UniqueViews: 654},
		},
		Devices: Devices{
			Desktop: 45,
			Mobile:  52,
			Tablet:  3,
		},
		Locations: []Location{
			{Country: "United States", Users: 2345},
			{Country: "India", Users: 1234},
			{Country: "United Kingdom", Users: 567},
			{Country: "Canada", Users: 456},
			{Country: "Australia", Users: 345},
		},
		Source:     SourceMock,
		DataStatus: StatusDemo,
	}
}
