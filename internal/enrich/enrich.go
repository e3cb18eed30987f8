// Package enrich assigns a category and skill tags to a listing from its
// free text. Both tables are fixed and ordered: earlier entries win, so the
// table order is part of the observable contract.
package enrich

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type categoryRule struct {
	name     string
	keywords []string
}

// Keywords are matched case-sensitively against lower-cased input, exactly
// as written here.
var categoryTable = []categoryRule{
	{"tech", []string{"developer", "programmer", "software", "IT", "computer", "data", "analyst", "engineer"}},
	{"finance", []string{"accountant", "finance", "banking", "audit", "financial", "economist"}},
	{"sales", []string{"sales", "marketing", "business development", "account manager"}},
	{"education", []string{"teacher", "lecturer", "instructor", "education", "academic"}},
	{"healthcare", []string{"nurse", "doctor", "medical", "health", "clinical"}},
	{"hospitality", []string{"hotel", "restaurant", "chef", "waiter", "hospitality", "tourism"}},
	{"agriculture", []string{"agriculture", "farming", "agricultural", "livestock", "crop"}},
	{"management", []string{"manager", "director", "supervisor", "coordinator", "lead"}},
	{"customer_service", []string{"customer service", "support", "receptionist", "call center"}},
	{"logistics", []string{"logistics", "transport", "driver", "delivery", "supply chain"}},
}

const maxSkills = 5

var skillVocabulary = []string{
	"python", "java", "javascript", "php", "sql", "mysql", "excel", "powerpoint",
	"accounting", "quickbooks", "sage", "communication", "leadership", "teamwork",
	"project management", "customer service", "sales", "marketing", "social media",
	"microsoft office", "computer literacy", "data analysis", "reporting",
	"budgeting", "planning", "organization", "problem solving", "autocad",
	"teaching", "nursing", "agriculture", "hotel management",
}

// Categorize returns the first category whose keyword set has a substring
// match in the lower-cased title+description, or "other".
func Categorize(title, description string) string {
	text := strings.ToLower(title + " " + description)

	for _, rule := range categoryTable {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.name
			}
		}
	}

	return "other"
}

// TagSkills returns up to 5 vocabulary entries found in the text, in
// vocabulary order, title-cased.
func TagSkills(text string) []string {
	lower := strings.ToLower(text)

	var skills []string
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			skills = append(skills, TitleCase(skill))
			if len(skills) == maxSkills {
				break
			}
		}
	}
	return skills
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
