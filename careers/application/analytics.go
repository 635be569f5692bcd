package application

import (
	"math"
	"sort"
	"time"

	"github.com/Abraxas-365/careersync/pkg/kernel"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// trendWindow is the number of months kept in the monthly series
const trendWindow = 6

// Range selects how far back analytics look
type Range string

const (
	Range3Months Range = "3months"
	Range6Months Range = "6months"
	Range1Year   Range = "1year"
	RangeAll     Range = "all"
)

// allTimeStart is the lower bound used for RangeAll
var allTimeStart = kernel.NewDate(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))

// ParseRange falls back to six months for empty or unknown values
func ParseRange(value string) Range {
	switch r := Range(value); r {
	case Range3Months, Range6Months, Range1Year, RangeAll:
		return r
	default:
		return Range6Months
	}
}

// Start returns the first applied date included in the range
func (r Range) Start(now time.Time) kernel.Date {
	switch r {
	case Range3Months:
		return kernel.NewDate(now.AddDate(0, -3, 0))
	case Range1Year:
		return kernel.NewDate(now.AddDate(-1, 0, 0))
	case RangeAll:
		return allTimeStart
	default:
		return kernel.NewDate(now.AddDate(0, -6, 0))
	}
}

// ============================================================================
// Analytics
// ============================================================================

type MonthlyCount struct {
	Month        string `json:"month"`
	Applications int    `json:"applications"`
}

type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type NamedCount struct {
	Name         string `json:"name"`
	Applications int    `json:"applications"`
}

type TrendPoint struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
	Interviews   int    `json:"interviews"`
	Offers       int    `json:"offers"`
}

// Analytics is the dashboard payload of GET /api/jobs/analytics
type Analytics struct {
	TotalApplications   int            `json:"totalApplications"`
	ResponseRate        int            `json:"responseRate"`
	InterviewRate       int            `json:"interviewRate"`
	OfferRate           int            `json:"offerRate"`
	AverageResponseTime int            `json:"averageResponseTime"`
	MonthlyApplications []MonthlyCount `json:"monthlyApplications"`
	StatusDistribution  []StatusSlice  `json:"statusDistribution"`
	JobTypes            []NamedCount   `json:"jobTypes"`
	CompanyTypes        []NamedCount   `json:"companyTypes"`
	ApplicationTrends   []TrendPoint   `json:"applicationTrends"`
}

// ComputeAnalytics aggregates apps, which are expected in ascending applied order.
// Statuses outside the known set count toward the total only.
func ComputeAnalytics(apps []*Application) *Analytics {
	total := len(apps)
	var responded, interviewed, offers int
	var responseDays, responseSamples int

	byStatus := make(map[Status]int, len(Statuses))
	byJobType := make(map[string]int)
	trends := make(map[string]*TrendPoint)

	for _, app := range apps {
		if app == nil {
			continue
		}
		byStatus[app.Status]++
		byJobType[jobTypeLabel(app.JobType)]++

		if app.HasResponse() {
			responded++
		}
		if app.ReachedInterview() {
			interviewed++
		}
		if app.IsOffer() {
			offers++
		}
		if days, ok := app.ResponseDays(); ok {
			responseDays += days
			responseSamples++
		}

		key := app.AppliedDate.MonthKey()
		point, ok := trends[key]
		if !ok {
			point = &TrendPoint{Date: key}
			trends[key] = point
		}
		point.Applications++
		if app.ReachedInterview() {
			point.Interviews++
		}
		if app.IsOffer() {
			point.Offers++
		}
	}

	out := &Analytics{
		TotalApplications: total,
		ResponseRate:      percent(responded, total),
		InterviewRate:     percent(interviewed, total),
		OfferRate:         percent(offers, total),
	}
	if responseSamples > 0 {
		out.AverageResponseTime = int(math.Round(float64(responseDays) / float64(responseSamples)))
	}

	months := make([]string, 0, len(trends))
	for key := range trends {
		months = append(months, key)
	}
	sort.Strings(months)
	if len(months) > trendWindow {
		months = months[len(months)-trendWindow:]
	}

	out.MonthlyApplications = make([]MonthlyCount, 0, len(months))
	out.ApplicationTrends = make([]TrendPoint, 0, len(months))
	for _, key := range months {
		point := trends[key]
		out.MonthlyApplications = append(out.MonthlyApplications, MonthlyCount{
			Month:        shortMonth(key),
			Applications: point.Applications,
		})
		out.ApplicationTrends = append(out.ApplicationTrends, *point)
	}

	out.StatusDistribution = make([]StatusSlice, 0, len(Statuses))
	for _, status := range Statuses {
		out.StatusDistribution = append(out.StatusDistribution, StatusSlice{
			Name:  status.Label(),
			Value: byStatus[status],
			Color: status.Color(),
		})
	}

	out.JobTypes = make([]NamedCount, 0, len(byJobType))
	for name, count := range byJobType {
		out.JobTypes = append(out.JobTypes, NamedCount{Name: name, Applications: count})
	}
	sort.Slice(out.JobTypes, func(i, j int) bool {
		if out.JobTypes[i].Applications != out.JobTypes[j].Applications {
			return out.JobTypes[i].Applications > out.JobTypes[j].Applications
		}
		return out.JobTypes[i].Name < out.JobTypes[j].Name
	})
	out.CompanyTypes = out.JobTypes

	return out
}

// ============================================================================
// Stats
// ============================================================================

type StatusCounts struct {
	Total     int `json:"total"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	Offer     int `json:"offer"`
	Rejected  int `json:"rejected"`
	Withdrawn int `json:"withdrawn"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Stats is the payload of GET /api/jobs/stats
type Stats struct {
	Stats  StatusCounts `json:"stats"`
	Trends []MonthCount `json:"trends"`
}

// ComputeStats counts apps per status and per applied month
func ComputeStats(apps []*Application) *Stats {
	out := &Stats{Trends: []MonthCount{}}
	byMonth := make(map[string]int)

	for _, app := range apps {
		if app == nil {
			continue
		}
		out.Stats.Total++
		switch app.Status {
		case StatusApplied:
			out.Stats.Applied++
		case StatusInterview:
			out.Stats.Interview++
		case StatusOffer:
			out.Stats.Offer++
		case StatusRejected:
			out.Stats.Rejected++
		case StatusWithdrawn:
			out.Stats.Withdrawn++
		}
		byMonth[app.AppliedDate.MonthKey()]++
	}

	for month, count := range byMonth {
		out.Trends = append(out.Trends, MonthCount{Month: month, Count: count})
	}
	sort.Slice(out.Trends, func(i, j int) bool { return out.Trends[i].Month < out.Trends[j].Month })
	return out
}

// ============================================================================
// Helpers
// ============================================================================

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

func shortMonth(monthKey string) string {
	t, err := time.Parse(kernel.MonthLayout, monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("Jan")
}

// jobTypeLabel title-cases a job type. Casers are stateful so one is built per call.
func jobTypeLabel(jt JobType) string {
	if jt == "" {
		return "Unspecified"
	}
	return cases.Title(language.English).String(string(jt))
}
