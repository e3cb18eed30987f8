// Package analytics derives rollup views from a job snapshot. The view
// functions are pure: the same snapshot always produces byte-identical
// output, and an empty snapshot falls back to a fixed baseline.
package analytics

import (
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/vincentkyalomusembi/PathFinder/internal/enrich"
	"github.com/vincentkyalomusembi/PathFinder/internal/models"
)

type TrendPoint struct {
	Month string `json:"month"`
	Jobs  int    `json:"jobs"`
}

type CategorySalary struct {
	Category string `json:"category"`
	Salary   int    `json:"salary"`
}

type SkillCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Trend string `json:"trend"`
}

type CategoryShare struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

var trendMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

const topSkills = 10

// DemandTrend scales the snapshot size by a per-month multiplier derived
// from a stable hash of the month label. Not real time-series data, but
// reproducible for a given snapshot size.
func DemandTrend(snapshot []models.JobPosting) []TrendPoint {
	if len(snapshot) == 0 {
		return baselineDemandTrend()
	}

	trends := make([]TrendPoint, 0, len(trendMonths))
	for i, month := range trendMonths {
		variation := 0.8 + 0.1*float64(i) + float64(xxhash.Sum64String(month)%20)/100
		trends = append(trends, TrendPoint{
			Month: month,
			Jobs:  int(float64(len(snapshot)) * variation),
		})
	}
	return trends
}

// SalaryByCategory averages salaries per category over the postings that
// carry one, sorted by average descending. Categories with no salaried
// postings are omitted; no salaried postings at all means the baseline.
func SalaryByCategory(snapshot []models.JobPosting) []CategorySalary {
	if len(snapshot) == 0 {
		return baselineSalaries()
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, p := range snapshot {
		if p.Salary == nil || p.Category == "" {
			continue
		}
		sums[p.Category] += *p.Salary
		counts[p.Category]++
	}

	if len(counts) == 0 {
		return baselineSalaries()
	}

	salaries := make([]CategorySalary, 0, len(counts))
	for category, count := range counts {
		salaries = append(salaries, CategorySalary{
			Category: enrich.TitleCase(category),
			Salary:   sums[category] / count,
		})
	}
	sort.Slice(salaries, func(i, j int) bool {
		if salaries[i].Salary != salaries[j].Salary {
			return salaries[i].Salary > salaries[j].Salary
		}
		return salaries[i].Category < salaries[j].Category
	})
	return salaries
}

// SkillFrequency counts skill occurrences across the snapshot and returns
// the top 10, labelled "up" above a count of 2 and "stable" otherwise.
func SkillFrequency(snapshot []models.JobPosting) []SkillCount {
	if len(snapshot) == 0 {
		return baselineSkills()
	}

	counts := make(map[string]int)
	for _, p := range snapshot {
		for _, skill := range p.Skills {
			counts[skill]++
		}
	}

	if len(counts) == 0 {
		return baselineSkills()
	}

	skills := make([]SkillCount, 0, len(counts))
	for name, count := range counts {
		trend := "stable"
		if count > 2 {
			trend = "up"
		}
		skills = append(skills, SkillCount{Name: name, Count: count, Trend: trend})
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Count != skills[j].Count {
			return skills[i].Count > skills[j].Count
		}
		return skills[i].Name < skills[j].Name
	})

	if len(skills) > topSkills {
		skills = skills[:topSkills]
	}
	return skills
}

// CategoryDistribution counts postings per category with each share as a
// percentage of the snapshot, one decimal, sorted by count descending.
func CategoryDistribution(snapshot []models.JobPosting) []CategoryShare {
	if len(snapshot) == 0 {
		return baselineCategories()
	}

	counts := make(map[string]int)
	for _, p := range snapshot {
		category := p.Category
		if category == "" {
			category = "other"
		}
		counts[category]++
	}

	total := len(snapshot)
	shares := make([]CategoryShare, 0, len(counts))
	for category, count := range counts {
		shares = append(shares, CategoryShare{
			Name:       enrich.TitleCase(category),
			Count:      count,
			Percentage: math.Round(float64(count)/float64(total)*1000) / 10,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}
