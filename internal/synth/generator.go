// Package synth produces realistic placeholder listings for the Kenyan
// market when real acquisition comes up short. It is the pipeline's hard
// floor: Generate always returns exactly the requested count.
package synth

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/vincentkyalomusembi/PathFinder/internal/models"
)

// SourceName tags generated postings so they are distinguishable from
// scraped ones.
const SourceName = "Generated (Kenyan Market)"

type catalogEntry struct {
	Title       string
	Company     string
	Location    string
	Description string
	Category    string
	Skills      []string
}

var catalog = []catalogEntry{
	{
		Title:       "Software Developer",
		Company:     "Safaricom PLC",
		Location:    "Nairobi",
		Description: "Develop mobile applications and web solutions for Kenya's leading telecommunications company.",
		Category:    "tech",
		Skills:      []string{"Java", "Python", "Android", "React"},
	},
	{
		Title:       "Data Analyst",
		Company:     "Equity Bank",
		Location:    "Nairobi",
		Description: "Analyze customer data and market trends to support business decisions.",
		Category:    "finance",
		Skills:      []string{"Excel", "SQL", "Python", "Data Analysis"},
	},
	{
		Title:       "Secondary School Teacher",
		Company:     "Alliance High School",
		Location:    "Kikuyu",
		Description: "Teach Mathematics and Physics to Form 1-4 students.",
		Category:    "education",
		Skills:      []string{"Teaching", "Mathematics", "Physics", "Communication"},
	},
	{
		Title:       "Marketing Manager",
		Company:     "Kenya Airways",
		Location:    "Nairobi",
		Description: "Lead marketing campaigns and brand management for Kenya's national carrier.",
		Category:    "marketing",
		Skills:      []string{"Marketing", "Brand Management", "Digital Marketing", "Leadership"},
	},
	{
		Title:       "Accountant",
		Company:     "KPMG Kenya",
		Location:    "Nairobi",
		Description: "Prepare financial statements and conduct audits for various clients.",
		Category:    "finance",
		Skills:      []string{"Accounting", "QuickBooks", "Excel", "Financial Analysis"},
	},
	{
		Title:       "Nurse",
		Company:     "Kenyatta National Hospital",
		Location:    "Nairobi",
		Description: "Provide patient care and support medical procedures in the ICU.",
		Category:    "healthcare",
		Skills:      []string{"Patient Care", "Medical Procedures", "Communication", "Teamwork"},
	},
	{
		Title:       "Agricultural Officer",
		Company:     "Ministry of Agriculture",
		Location:    "Nakuru",
		Description: "Provide technical support to farmers and promote modern farming techniques.",
		Category:    "agriculture",
		Skills:      []string{"Agriculture", "Farming Techniques", "Extension Services", "Research"},
	},
	{
		Title:       "Hotel Manager",
		Company:     "Serena Hotels",
		Location:    "Mombasa",
		Description: "Oversee hotel operations and ensure excellent guest experience.",
		Category:    "hospitality",
		Skills:      []string{"Hotel Management", "Customer Service", "Leadership", "Operations"},
	},
	{
		Title:       "Sales Representative",
		Company:     "Unilever Kenya",
		Location:    "Kisumu",
		Description: "Promote and sell consumer goods to retail outlets across Western Kenya.",
		Category:    "sales",
		Skills:      []string{"Sales", "Customer Relations", "Product Knowledge", "Communication"},
	},
	{
		Title:       "Civil Engineer",
		Company:     "China Road and Bridge Corporation",
		Location:    "Nairobi",
		Description: "Design and supervise construction of roads and infrastructure projects.",
		Category:    "engineering",
		Skills:      []string{"Civil Engineering", "AutoCAD", "Project Management", "Construction"},
	},
	{
		Title:       "Customer Service Representative",
		Company:     "Airtel Kenya",
		Location:    "Nairobi",
		Description: "Handle customer inquiries and resolve service issues via phone and chat.",
		Category:    "customer_service",
		Skills:      []string{"Customer Service", "Communication", "Problem Solving", "Computer Skills"},
	},
	{
		Title:       "Graphic Designer",
		Company:     "Nation Media Group",
		Location:    "Nairobi",
		Description: "Create visual content for newspapers, magazines, and digital platforms.",
		Category:    "creative",
		Skills:      []string{"Graphic Design", "Adobe Creative Suite", "Typography", "Creativity"},
	},
}

type salaryRange struct {
	keyword  string
	min, max int
}

// Ordered: the first keyword found in the title decides the range.
var salaryRanges = []salaryRange{
	{"software", 80000, 200000},
	{"developer", 70000, 180000},
	{"engineer", 60000, 150000},
	{"manager", 90000, 250000},
	{"director", 150000, 400000},
	{"analyst", 50000, 120000},
	{"accountant", 45000, 100000},
	{"teacher", 30000, 80000},
	{"nurse", 35000, 90000},
	{"sales", 40000, 100000},
	{"marketing", 50000, 130000},
	{"customer", 25000, 60000},
	{"officer", 40000, 90000},
	{"assistant", 25000, 55000},
	{"coordinator", 35000, 75000},
}

const (
	defaultSalaryMin = 30000
	defaultSalaryMax = 80000
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns exactly count postings, cycling the catalog when count
// exceeds it. Salaries are sampled per title keyword and apply URLs are
// synthesized per company.
func (g *Generator) Generate(count int) []models.JobPosting {
	if count <= 0 {
		return []models.JobPosting{}
	}

	postings := make([]models.JobPosting, 0, count)
	for i := 0; i < count; i++ {
		base := catalog[i%len(catalog)]
		salary := SalaryFor(base.Title)
		postings = append(postings, models.JobPosting{
			ID:          1000 + i,
			Title:       base.Title,
			Company:     base.Company,
			Location:    base.Location,
			Description: base.Description,
			Salary:      &salary,
			Category:    base.Category,
			Skills:      base.Skills,
			ApplyURL:    ApplyURL("", base.Title, base.Company),
			Source:      SourceName,
		})
	}
	return postings
}

// SalaryFor samples a salary from the first range whose keyword appears in
// the title, or from the default range.
func SalaryFor(title string) int {
	lower := strings.ToLower(title)
	for _, r := range salaryRanges {
		if strings.Contains(lower, r.keyword) {
			return r.min + rand.Intn(r.max-r.min+1)
		}
	}
	return defaultSalaryMin + rand.Intn(defaultSalaryMax-defaultSalaryMin+1)
}

// ApplyURL returns original when it is already an absolute URL; otherwise
// it synthesizes an application URL from the company lookup table, falling
// back to a generic job site chosen by hashing the company name.
func ApplyURL(original, title, company string) string {
	if strings.HasPrefix(original, "http") {
		return original
	}

	companyLower := strings.ToLower(company)
	slug := titleSlug(title)

	switch {
	case strings.Contains(companyLower, "safaricom"):
		return "https://www.safaricom.co.ke/careers/" + slug
	case strings.Contains(companyLower, "equity"):
		return "https://equitybank.co.ke/careers/" + slug
	case strings.Contains(companyLower, "kenya airways"):
		return "https://www.kenya-airways.com/careers/" + slug
	case strings.Contains(companyLower, "kpmg"):
		return "https://home.kpmg/ke/careers/" + slug
	case strings.Contains(companyLower, "unilever"):
		return "https://www.unilever.com/careers/kenya/" + slug
	case strings.Contains(companyLower, "nation media"):
		return "https://www.nationmedia.com/careers/" + slug
	case strings.Contains(companyLower, "serena"):
		return "https://www.serenahotels.com/careers/" + slug
	case strings.Contains(companyLower, "airtel"):
		return "https://www.airtel.co.ke/careers/" + slug
	case strings.Contains(companyLower, "ministry"), strings.Contains(companyLower, "government"):
		return "https://www.publicservice.go.ke/index.php/careers"
	case strings.Contains(companyLower, "hospital"), strings.Contains(companyLower, "knh"):
		return "https://knh.or.ke/careers/"
	case strings.Contains(companyLower, "school"), strings.Contains(companyLower, "university"):
		return "https://www.jobs.co.ke/search/" + slug
	}

	companySlug := strings.ReplaceAll(companyLower, " ", "-")
	jobSites := []string{
		"https://www.brightermonday.co.ke/job/" + slug + "-at-" + companySlug,
		"https://www.myjobmag.co.ke/job/" + slug,
		fmt.Sprintf("https://ke.indeed.com/viewjob?jk=%d", xxhash.Sum64String(title+company)%1000000),
		"https://www.fuzu.com/kenya/job/" + slug,
	}
	return jobSites[xxhash.Sum64String(company)%uint64(len(jobSites))]
}

func titleSlug(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.ReplaceAll(slug, "/", "-")
}
