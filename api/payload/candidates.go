package payload

type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
}

type WorkExperience struct {
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type Candidate struct {
	ID              string           `json:"_id"`
	FullName        string           `json:"fullName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Skills          []string         `json:"skills,omitempty"`
	Education       []Education      `json:"education,omitempty"`
	WorkExperience  []WorkExperience `json:"workExperience,omitempty"`
	AccountStatus   string           `json:"accountStatus,omitempty"`
	CandidateType   string           `json:"candidateType,omitempty"`
	Designation     string           `json:"designation,omitempty"`
	JobTitle        string           `json:"jobTitle,omitempty"`
	TotalExperience string           `json:"totalExperience,omitempty"`
	Location        string           `json:"location,omitempty"`
	Nationality     string           `json:"nationality,omitempty"`
	NoticePeriod    string           `json:"noticePeriod,omitempty"`
	Status          string           `json:"status,omitempty"`
}

// Title prefers the job title, falling back to the designation.
func (c Candidate) Title() string {
	if c.JobTitle != "" {
		return c.JobTitle
	}

	return c.Designation
}

type CandidateInput struct {
	FullName      string   `json:"fullName" validate:"required,notblank,min=2,max=120"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Skills        []string `json:"skills,omitempty" validate:"omitempty,dive,notblank"`
	CandidateType string   `json:"candidateType,omitempty" validate:"omitempty,max=40"`
	AccountStatus string   `json:"accountStatus,omitempty" validate:"omitempty,oneof=active inactive"`
}

// Status values the console offers for pipeline movement.
const (
	StatusSourced   = "sourced"
	StatusSelected  = "selected"
	StatusScreening = "screening"
	StatusPending   = "pending"
	StatusRejected  = "rejected"
)

func PipelineStatuses() []string {
	return []string{StatusSourced, StatusSelected, StatusScreening, StatusPending, StatusRejected}
}

type StatusChange struct {
	Status string `json:"status" validate:"required,oneof=sourced selected screening pending rejected"`
	Remark string `json:"remark,omitempty" validate:"omitempty,max=500"`
}
