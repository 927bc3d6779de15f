package pagerec

// NotAvailable is the placeholder for any field that was checked but could
// not be extracted. Extracted records never contain empty strings.
const NotAvailable = "Not available"

// Kind identifies the type of an extracted record.
type Kind string

// Record kinds, serialized as the "type" field.
const (
	KindPerson        Kind = "person"
	KindCompany       Kind = "company"
	KindJob           Kind = "job"
	KindIndeedCompany Kind = "indeed_company"
	KindIndeedJob     Kind = "indeed_job"
)

// Record is a single extracted page record, serialized to JSON as-is.
type Record interface {
	RecordKind() Kind
}

// ProfileRecord is the record extracted from a person profile page.
type ProfileRecord struct {
	Type                  Kind              `json:"type"`
	Name                  string            `json:"name"`
	Headline              string            `json:"headline"`
	Location              string            `json:"location"`
	ProfilePicURL         string            `json:"profile_pic_url"`
	CoverPicURL           string            `json:"cover_pic_url"`
	About                 string            `json:"about"`
	Experience            []ExperienceEntry `json:"experience"`
	Education             []EducationEntry  `json:"education"`
	HighestEducationLevel string            `json:"highest_education_level"`
	Skills                []string          `json:"skills"`
	Languages             []LanguageEntry   `json:"languages"`
}

// NewProfileRecord returns a profile with every field at its default.
func NewProfileRecord() *ProfileRecord {
	r := &ProfileRecord{Type: KindPerson}
	r.FillDefaults()
	return r
}

// RecordKind implements Record.
func (r *ProfileRecord) RecordKind() Kind { return KindPerson }

// FillDefaults replaces empty scalars with NotAvailable and nil lists with
// empty ones, so the serialized shape is always complete.
func (r *ProfileRecord) FillDefaults() {
	r.Type = KindPerson
	fillStrings(&r.Name, &r.Headline, &r.Location, &r.ProfilePicURL, &r.CoverPicURL,
		&r.About, &r.HighestEducationLevel)
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	for i := range r.Experience {
		r.Experience[i].FillDefaults()
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	for i := range r.Education {
		r.Education[i].FillDefaults()
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Languages == nil {
		r.Languages = []LanguageEntry{}
	}
	for i := range r.Languages {
		fillStrings(&r.Languages[i].Language, &r.Languages[i].Proficiency)
	}
}

// ExperienceEntry is one position in a profile's experience section.
// Entries are unique by (Role, CompanyName, DateFrom).
type ExperienceEntry struct {
	CompanyName     string `json:"company_name"`
	CompanyLocation string `json:"company_location"`
	JobType         string `json:"job_type"`
	Role            string `json:"role"`
	DateFrom        string `json:"date_from"`
	DateTo          string `json:"date_to"`
	Details         string `json:"details"`
	IsCurrent       bool   `json:"is_current"`
}

// FillDefaults replaces empty fields with NotAvailable.
func (e *ExperienceEntry) FillDefaults() {
	fillStrings(&e.CompanyName, &e.CompanyLocation, &e.JobType, &e.Role,
		&e.DateFrom, &e.DateTo, &e.Details)
}

// EducationEntry is one school in a profile's education section.
// Entries are unique by (InstitutionName, Degree, DateFrom).
type EducationEntry struct {
	InstitutionName string `json:"institution_name"`
	Degree          string `json:"degree"`
	DateFrom        string `json:"date_from"`
	DateTo          string `json:"date_to"`
	Details         string `json:"details"`
	IsCurrent       bool   `json:"is_current"`
}

// FillDefaults replaces empty fields with NotAvailable.
func (e *EducationEntry) FillDefaults() {
	fillStrings(&e.InstitutionName, &e.Degree, &e.DateFrom, &e.DateTo, &e.Details)
}

// LanguageEntry is one spoken language and its proficiency.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// CompanyRecord is the record extracted from a company page.
type CompanyRecord struct {
	Type          Kind   `json:"type"`
	CompanyName   string `json:"company_name"`
	Tagline       string `json:"tagline"`
	LogoURL       string `json:"logo_url"`
	CoverPicURL   string `json:"cover_pic_url"`
	FollowerCount string `json:"follower_count"`
	About         string `json:"about"`
	Website       string `json:"website"`
	Industry      string `json:"industry"`
	CompanySize   string `json:"company_size"`
	Headquarters  string `json:"headquarters"`
	Founded       string `json:"founded"`
	Specialties   string `json:"specialties"`
}

// RecordKind implements Record.
func (r *CompanyRecord) RecordKind() Kind { return r.Type }

// FillDefaults replaces empty fields with NotAvailable.
func (r *CompanyRecord) FillDefaults() {
	fillStrings(&r.CompanyName, &r.Tagline, &r.LogoURL, &r.CoverPicURL, &r.FollowerCount,
		&r.About, &r.Website, &r.Industry, &r.CompanySize, &r.Headquarters, &r.Founded,
		&r.Specialties)
}

// JobRecord is the record extracted from a LinkedIn job posting.
type JobRecord struct {
	Type            Kind   `json:"type"`
	JobTitle        string `json:"job_title"`
	CompanyName     string `json:"company_name"`
	Location        string `json:"location"`
	DatePosted      string `json:"date_posted"`
	WorkplaceType   string `json:"workplace_type"`
	ApplicantsCount string `json:"applicants_count"`
	EmploymentType  string `json:"employment_type"`
	ExperienceLevel string `json:"experience_level"`
	JobDescription  string `json:"job_description"`
}

// RecordKind implements Record.
func (r *JobRecord) RecordKind() Kind { return KindJob }

// FillDefaults replaces empty fields with NotAvailable.
func (r *JobRecord) FillDefaults() {
	r.Type = KindJob
	fillStrings(&r.JobTitle, &r.CompanyName, &r.Location, &r.DatePosted, &r.WorkplaceType,
		&r.ApplicantsCount, &r.EmploymentType, &r.ExperienceLevel, &r.JobDescription)
}

// IndeedJobRecord is the record extracted from an Indeed job posting.
type IndeedJobRecord struct {
	Type            Kind   `json:"type"`
	JobTitle        string `json:"job_title"`
	CompanyName     string `json:"company_name"`
	Location        string `json:"location"`
	Salary          string `json:"salary"`
	JobType         string `json:"job_type"`
	DatePosted      string `json:"date_posted"`
	ApplicantsCount string `json:"applicants_count"`
	ExperienceLevel string `json:"experience_level"`
	JobDescription  string `json:"job_description"`
}

// RecordKind implements Record.
func (r *IndeedJobRecord) RecordKind() Kind { return KindIndeedJob }

// FillDefaults replaces empty fields with NotAvailable.
func (r *IndeedJobRecord) FillDefaults() {
	r.Type = KindIndeedJob
	fillStrings(&r.JobTitle, &r.CompanyName, &r.Location, &r.Salary, &r.JobType,
		&r.DatePosted, &r.ApplicantsCount, &r.ExperienceLevel, &r.JobDescription)
}

// ErrorRecord is emitted instead of a record when the input cannot be read.
type ErrorRecord struct {
	Type  Kind   `json:"type,omitempty"`
	Error string `json:"error"`
}

// NewErrorRecord returns an error record for kind. Person records carry no
// "type" key, matching the shape consumers already parse.
func NewErrorRecord(kind Kind, message string) *ErrorRecord {
	r := &ErrorRecord{Error: message}
	if kind != KindPerson {
		r.Type = kind
	}
	return r
}

// RecordKind implements Record.
func (r *ErrorRecord) RecordKind() Kind { return r.Type }

func fillStrings(fields ...*string) {
	for _, f := range fields {
		if *f == "" {
			*f = NotAvailable
		}
	}
}
