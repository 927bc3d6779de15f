package pagerec

import "strings"

// EducationLevel is one rung of the attainment hierarchy. A degree string
// belongs to a level when it contains any of the level's keywords.
type EducationLevel struct {
	Slug     string
	Rank     int
	Keywords []string
}

// Education level slugs reported in highest_education_level.
const (
	LevelPhD        = "phd"
	LevelMaster     = "master"
	LevelBachelor   = "bachelor"
	LevelAssociate  = "associate"
	LevelHighSchool = "high_school"
)

// EducationLevels returns the hierarchy, highest rank first.
func EducationLevels() []EducationLevel {
	return []EducationLevel{
		{Slug: LevelPhD, Rank: 5, Keywords: []string{"phd", "doctorate", "d.phil"}},
		{Slug: LevelMaster, Rank: 4, Keywords: []string{"master", "m.sc", "m.a.", "mba", "meng"}},
		{Slug: LevelBachelor, Rank: 3, Keywords: []string{"bachelor", "b.sc", "b.a.", "beng", "llb", "bachelor of science"}},
		{Slug: LevelAssociate, Rank: 2, Keywords: []string{"associate", "diploma"}},
		{Slug: LevelHighSchool, Rank: 1, Keywords: []string{"high school", "a-level", "foundation"}},
	}
}

// HighestEducationLevel returns the slug of the highest level matched by any
// entry's degree, or NotAvailable when nothing matches.
func HighestEducationLevel(entries []EducationEntry) string {
	levels := EducationLevels()
	best := EducationLevel{Slug: NotAvailable}
	for _, e := range entries {
		degree := strings.ToLower(e.Degree)
		if !IsAvailable(e.Degree) {
			continue
		}
		for _, level := range levels {
			if level.Rank > best.Rank && containsAny(degree, level.Keywords) {
				best = level
			}
		}
	}
	return best.Slug
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
