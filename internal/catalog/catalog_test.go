package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileYieldsEmptyCatalog(t *testing.T) {
	careers, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if len(careers) != 0 {
		t.Errorf("expected empty catalog, got %d entries", len(careers))
	}
}

func TestLoadParsesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careers.json")
	data := `[{
		"id": "software-developer",
		"title": "Software Developer",
		"description": "Build software that helps people.",
		"domain": "technology",
		"required_skills": ["programming"],
		"suitable_interests": ["coding"],
		"education_path": "B.Tech",
		"avg_salary": "6-25 LPA",
		"stream_tag": "science"
	}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	careers, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(careers) != 1 {
		t.Fatalf("expected 1 career, got %d", len(careers))
	}
	if careers[0].ID != "software-developer" || careers[0].Domain != "technology" {
		t.Errorf("unexpected record: %+v", careers[0])
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careers.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestEmbeddingTextCombinesFields(t *testing.T) {
	c := CareerRecord{
		Title:          "Software Developer",
		Description:    "Build software that helps people.",
		RequiredSkills: []string{"programming", "debugging"},
		SuitableFor:    []string{"coding"},
		EducationPath:  "B.Tech",
		StreamTag:      "science",
	}
	text := c.EmbeddingText()
	for _, want := range []string{"Build software", "programming", "coding", "B.Tech", "science"} {
		if !strings.Contains(text, want) {
			t.Errorf("embedding text missing %q: %q", want, text)
		}
	}
}
