package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// CareerRecord is one static catalog entry. The catalog is loaded once at
// process start and read-only afterwards.
type CareerRecord struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Domain         string   `json:"domain"`
	RequiredSkills []string `json:"required_skills"`
	SuitableFor    []string `json:"suitable_interests"`
	EducationPath  string   `json:"education_path"`
	AvgSalary      string   `json:"avg_salary"`
	StreamTag      string   `json:"stream_tag"`
}

// EmbeddingText combines the searchable fields into one string for encoding.
func (c CareerRecord) EmbeddingText() string {
	parts := []string{c.Title + ": " + c.Description}
	if len(c.RequiredSkills) > 0 {
		parts = append(parts, "Required skills: "+strings.Join(c.RequiredSkills, ", "))
	}
	if len(c.SuitableFor) > 0 {
		parts = append(parts, "Suitable for students interested in: "+strings.Join(c.SuitableFor, ", "))
	}
	if c.EducationPath != "" {
		parts = append(parts, "Education path: "+c.EducationPath)
	}
	if c.StreamTag != "" {
		parts = append(parts, "Stream: "+c.StreamTag)
	}
	return strings.Join(parts, " ")
}

// Load reads the career catalog from a JSON file. A missing file yields an
// empty catalog rather than an error; scoring over an empty catalog returns
// an empty ranking.
func Load(path string) ([]CareerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var records []CareerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
