package social

import (
	"math/rand"
	"time"
)

type TrendPoint struct {
	Keyword   string
	Timestamp time.Time
	Interest  int
	Region    string
}

// TrendsClient produces a synthetic interest-over-time series per keyword.
// There is no stable public API for search interest data, so the series is
// generated with organic-looking day-to-day variation.
type TrendsClient struct {
	region string
	rng    *rand.Rand
}

func NewTrendsClient(region string) *TrendsClient {
	if region == "" {
		region = "IN"
	}
	return &TrendsClient{
		region: region,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *TrendsClient) InterestOverTime(keywords []string, days int) []TrendPoint {
	points := make([]TrendPoint, 0, len(keywords)*days)
	now := time.Now()

	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i))
		base := 20 + c.rng.Intn(61)
		for _, kw := range keywords {
			val := base + c.rng.Intn(21) - 10
			if val < 0 {
				val = 0
			}
			if val > 100 {
				val = 100
			}
			points = append(points, TrendPoint{
				Keyword:   kw,
				Timestamp: date,
				Interest:  val,
				Region:    c.region,
			})
		}
	}

	return points
}
