package models

import (
	"encoding/json"
)

// JobPosting is one normalized listing in a snapshot. Postings are built
// once per acquisition cycle and never mutated afterwards; they disappear
// when the snapshot cache entry expires.
type JobPosting struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Salary      *int     `json:"salary"`
	Category    string   `json:"category"`
	Skills      []string `json:"skills"`
	ApplyURL    string   `json:"apply_url"`
	Source      string   `json:"source"`
}

func (p JobPosting) MarshalBinary() ([]byte, error) {
	return json.Marshal(p)
}

func (p *JobPosting) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}

// Sources returns the distinct source names present in a snapshot.
func Sources(postings []JobPosting) []string {
	seen := make(map[string]bool)
	var sources []string
	for _, p := range postings {
		if p.Source == "" || seen[p.Source] {
			continue
		}
		seen[p.Source] = true
		sources = append(sources, p.Source)
	}
	return sources
}
