package application

import (
	"testing"
	"time"

	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(value)
	require.NoError(t, err)
	return d
}

func app(t *testing.T, status Status, applied string) *Application {
	return &Application{
		JobTitle:    "Engineer",
		CompanyName: "Acme",
		JobType:     JobTypeFullTime,
		Status:      status,
		AppliedDate: mustDate(t, applied),
	}
}

func TestComputeAnalyticsEmpty(t *testing.T) {
	out := ComputeAnalytics(nil)

	assert.Equal(t, 0, out.TotalApplications)
	assert.Equal(t, 0, out.ResponseRate)
	assert.Equal(t, 0, out.InterviewRate)
	assert.Equal(t, 0, out.OfferRate)
	assert.Equal(t, 0, out.AverageResponseTime)
	assert.NotNil(t, out.MonthlyApplications)
	assert.NotNil(t, out.ApplicationTrends)
	assert.Len(t, out.StatusDistribution, 5)
	assert.Empty(t, out.JobTypes)
}

func TestComputeAnalyticsRates(t *testing.T) {
	apps := []*Application{
		app(t, StatusApplied, "2024-01-03"),
		app(t, StatusInterview, "2024-01-10"),
		app(t, StatusOffer, "2024-02-01"),
		app(t, StatusRejected, "2024-02-15"),
		app(t, StatusWithdrawn, "2024-03-01"),
		app(t, StatusApplied, "2024-03-02"),
	}

	out := ComputeAnalytics(apps)

	assert.Equal(t, 6, out.TotalApplications)
	assert.Equal(t, 50, out.ResponseRate)  // 3/6
	assert.Equal(t, 33, out.InterviewRate) // 2/6
	assert.Equal(t, 17, out.OfferRate)     // 1/6 rounds up

	assert.Equal(t, []StatusSlice{
		{Name: "Applied", Value: 2, Color: "#3B82F6"},
		{Name: "Interview", Value: 1, Color: "#F59E0B"},
		{Name: "Offer", Value: 1, Color: "#10B981"},
		{Name: "Rejected", Value: 1, Color: "#EF4444"},
		{Name: "Withdrawn", Value: 1, Color: "#6B7280"},
	}, out.StatusDistribution)

	assert.Equal(t, []MonthlyCount{
		{Month: "Jan", Applications: 2},
		{Month: "Feb", Applications: 2},
		{Month: "Mar", Applications: 2},
	}, out.MonthlyApplications)

	assert.Equal(t, []TrendPoint{
		{Date: "2024-01", Applications: 2, Interviews: 1},
		{Date: "2024-02", Applications: 2, Interviews: 1, Offers: 1},
		{Date: "2024-03", Applications: 2},
	}, out.ApplicationTrends)
}

func TestComputeAnalyticsUnknownStatus(t *testing.T) {
	apps := []*Application{
		app(t, Status("ghosted"), "2024-01-03"),
		app(t, Status(""), "2024-01-04"),
		app(t, StatusOffer, "2024-01-05"),
		app(t, Status("OFFER"), "2024-01-06"),
	}

	out := ComputeAnalytics(apps)

	assert.Equal(t, 4, out.TotalApplications)
	assert.Equal(t, 25, out.OfferRate)
	assert.Equal(t, 25, out.ResponseRate)

	sum := 0
	for _, s := range out.StatusDistribution {
		sum += s.Value
	}
	assert.Equal(t, 1, sum)
}

func TestComputeAnalyticsKeepsLastSixMonthsAcrossYears(t *testing.T) {
	var apps []*Application
	for _, d := range []string{
		"2023-06-01", "2023-09-01", "2023-11-01", "2023-12-01",
		"2024-01-01", "2024-02-01", "2024-06-01", "2024-06-20",
	} {
		apps = append(apps, app(t, StatusApplied, d))
	}

	out := ComputeAnalytics(apps)

	require.Len(t, out.ApplicationTrends, 6)
	assert.Equal(t, "2023-09", out.ApplicationTrends[0].Date)
	assert.Equal(t, "2024-06", out.ApplicationTrends[5].Date)
	assert.Equal(t, 2, out.ApplicationTrends[5].Applications)

	require.Len(t, out.MonthlyApplications, 6)
	assert.Equal(t, "Sep", out.MonthlyApplications[0].Month)
	assert.Equal(t, "Jun", out.MonthlyApplications[5].Month)
}

func TestComputeAnalyticsAverageResponseTime(t *testing.T) {
	a := app(t, StatusInterview, "2024-01-01")
	in := mustDate(t, "2024-01-11")
	a.InterviewDate = &in

	b := app(t, StatusOffer, "2024-01-01")
	in2 := mustDate(t, "2024-01-06")
	b.InterviewDate = &in2

	// interview before applying is ignored
	c := app(t, StatusInterview, "2024-02-01")
	early := mustDate(t, "2024-01-01")
	c.InterviewDate = &early

	out := ComputeAnalytics([]*Application{a, b, c})
	assert.Equal(t, 8, out.AverageResponseTime) // (10 + 5) / 2 = 7.5
}

func TestComputeAnalyticsJobTypes(t *testing.T) {
	a := app(t, StatusApplied, "2024-01-01")
	b := app(t, StatusApplied, "2024-01-02")
	b.JobType = JobTypeContract
	c := app(t, StatusApplied, "2024-01-03")
	c.JobType = JobTypeContract
	d := app(t, StatusApplied, "2024-01-04")
	d.JobType = JobTypeRemote

	out := ComputeAnalytics([]*Application{a, b, c, d})

	require.Len(t, out.JobTypes, 3)
	assert.Equal(t, NamedCount{Name: "Contract", Applications: 2}, out.JobTypes[0])
	assert.Equal(t, 1, out.JobTypes[1].Applications)
	assert.Equal(t, "Remote", out.JobTypes[2].Name)
	assert.Equal(t, out.JobTypes, out.CompanyTypes)
}

func TestComputeStats(t *testing.T) {
	apps := []*Application{
		app(t, StatusOffer, "2024-03-01"),
		app(t, StatusApplied, "2023-12-31"),
		app(t, StatusApplied, "2024-03-15"),
		app(t, Status("unknown"), "2024-01-01"),
	}

	out := ComputeStats(apps)

	assert.Equal(t, StatusCounts{Total: 4, Applied: 2, Offer: 1}, out.Stats)
	assert.Equal(t, []MonthCount{
		{Month: "2023-12", Count: 1},
		{Month: "2024-01", Count: 1},
		{Month: "2024-03", Count: 2},
	}, out.Trends)

	assert.NotNil(t, ComputeStats(nil).Trends)
}

func TestRange(t *testing.T) {
	now := time.Date(2024, time.August, 15, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  string
	}{
		{"3months", "2024-05-15"},
		{"6months", "2024-02-15"},
		{"1year", "2023-08-15"},
		{"all", "2020-01-01"},
		{"", "2024-02-15"},
		{"forever", "2024-02-15"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRange(tt.input).Start(now).String())
		})
	}
}
