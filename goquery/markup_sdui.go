package goquery

const (
	sduiText       = "p._9cd462e2"
	expandableBox  = "span[data-testid='expandable-text-box']"
	expandableMore = "button[data-testid='expandable-text-button']"
)

// SDUIMarkup matches the server-driven profile layout: sections titled by an
// <h2>, hashed class names, items keyed by componentkey and long text in
// expandable boxes with a trailing "… more" button.
func SDUIMarkup(_ Options) *ProfileMarkup {
	entry := "div._0a9a31e1"

	return &ProfileMarkup{
		Name: "sdui",
		Basic: BasicInfoMarkup{
			Scope:        "section._140ad967",
			Name:         []FieldFunc{textOf("p._9cd462e2._58b9cc0a")},
			Headline:     []FieldFunc{textOf("p.a256db30.ba57d3d2")},
			Location:     []FieldFunc{textExcluding(`p[class*="d89f4058"]`, "Contact info")},
			ProfileImage: []FieldFunc{attrContaining("img._5d57a262", "src", "profile-displayphoto")},
			CoverImage:   []FieldFunc{attrContaining("img._5d57a262", "src", "profile-displaybackgroundimage")},
		},
		About: AboutMarkup{
			Anchor: Anchor{Heading: "About"},
			Text:   []FieldFunc{expandableTextOf(expandableBox, expandableMore)},
		},
		Experience: ExperienceMarkup{
			Anchor:      Anchor{Heading: "Experience"},
			Items:       selectAll("div[componentkey*='entity-collection-item']"),
			Accept:      hasAtLeast(sduiText, 4),
			Role:        []FieldFunc{nthTextOf(sduiText, 0)},
			CompanyLine: []FieldFunc{nthTextOf(sduiText, 1)},
			Dates:       []FieldFunc{nthTextOf(sduiText, 2)},
			Location:    []FieldFunc{nthTextOf(sduiText, 3)},
			Details:     []FieldFunc{expandableTextOf(expandableBox, expandableMore)},
		},
		Education: EducationMarkup{
			Anchor:      Anchor{Heading: "Education"},
			Items:       selectAll(entry),
			Accept:      hasAtLeast(sduiText, 3),
			Institution: []FieldFunc{nthTextOf(sduiText, 0)},
			Degree:      []FieldFunc{nthTextOf(sduiText, 1)},
			Dates:       []FieldFunc{nthTextOf(sduiText, 2)},
			// The fourth line is the description unless it is the skills
			// link rendered as a button.
			Details: []FieldFunc{nthTextOutside(sduiText, 3, "[role='button']")},
		},
		Skills: SkillsMarkup{
			Anchor: Anchor{Heading: "Skills"},
			Items:  selectAll("div[componentkey*='com.linkedin.sdui.profile.skill'] p[class*='a256db30']"),
		},
		Languages: LanguagesMarkup{
			Anchor:      Anchor{Heading: "Languages"},
			Items:       selectAll(entry),
			Accept:      hasAtLeast(sduiText, 2),
			Language:    []FieldFunc{nthTextOf(sduiText, 0)},
			Proficiency: []FieldFunc{nthTextOf(sduiText, 1)},
		},
	}
}
