package analytics

// Fixed baselines served when the snapshot is empty. Fresh copies are
// returned so callers cannot mutate the canonical data.

func baselineDemandTrend() []TrendPoint {
	return []TrendPoint{
		{Month: "Jan", Jobs: 1000},
		{Month: "Feb", Jobs: 1200},
		{Month: "Mar", Jobs: 1100},
		{Month: "Apr", Jobs: 1300},
		{Month: "May", Jobs: 1400},
		{Month: "Jun", Jobs: 1500},
	}
}

func baselineSalaries() []CategorySalary {
	return []CategorySalary{
		{Category: "Tech", Salary: 120000},
		{Category: "Finance", Salary: 90000},
		{Category: "Education", Salary: 60000},
		{Category: "Healthcare", Salary: 80000},
	}
}

func baselineSkills() []SkillCount {
	return []SkillCount{
		{Name: "Python", Count: 25, Trend: "up"},
		{Name: "JavaScript", Count: 20, Trend: "up"},
		{Name: "Communication", Count: 18, Trend: "stable"},
		{Name: "Leadership", Count: 15, Trend: "up"},
		{Name: "Excel", Count: 12, Trend: "stable"},
	}
}

func baselineCategories() []CategoryShare {
	return []CategoryShare{
		{Name: "Tech", Count: 45, Percentage: 45.0},
		{Name: "Finance", Count: 20, Percentage: 20.0},
		{Name: "Education", Count: 15, Percentage: 15.0},
		{Name: "Other", Count: 20, Percentage: 20.0},
	}
}
