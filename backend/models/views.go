package models

// DayPoint is one bar of the dashboard trend chart.
type DayPoint struct {
	Label string `json:"label"` // e.g. "Mon 08"
	Steps int    `json:"steps"`
}

// Dashboard is the data bag handed to the dashboard view.
type Dashboard struct {
	Username       string     `json:"username"`
	Today          string     `json:"today"`
	WeekStart      string     `json:"week_start"`
	WeekEnd        string     `json:"week_end"`
	PeriodStart    string     `json:"period_start"`
	PeriodEnd      string     `json:"period_end"`
	TodaySteps     int        `json:"today_steps"`
	DailyPercent   int        `json:"daily_percent"`
	WeekSteps      int        `json:"week_steps"`
	WeeklyPercent  int        `json:"weekly_percent"`
	MonthSteps     int        `json:"month_steps"`
	MonthlyPercent int        `json:"monthly_percent"`
	Trend          []DayPoint `json:"trend"`
}

// UserAggregate is one leaderboard row.
type UserAggregate struct {
	Username       string `json:"username"`
	TodaySteps     int    `json:"today_steps"`
	DailyPercent   int    `json:"daily_percent"`
	WeekSteps      int    `json:"week_steps"`
	WeeklyPercent  int    `json:"weekly_percent"`
	MonthSteps     int    `json:"month_steps"`
	MonthlyPercent int    `json:"monthly_percent"`
}
