package payload

type Project struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Prefix      string `json:"prefix,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type ProjectInput struct {
	Name        string `json:"name" validate:"required,notblank,min=2,max=120"`
	Prefix      string `json:"prefix,omitempty" validate:"omitempty,max=10"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type Client struct {
	ID            string `json:"_id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Type          string `json:"type,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Status        string `json:"status,omitempty"`
}

type ClientInput struct {
	FullName      string `json:"fullName" validate:"required,notblank,min=2,max=120"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Type          string `json:"type,omitempty" validate:"omitempty,max=40"`
	ContactPerson string `json:"contactPerson,omitempty" validate:"omitempty,max=120"`
}

type Staff struct {
	ID          string `json:"_id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Designation string `json:"designation,omitempty"`
	Role        string `json:"role,omitempty"`
	Branch      string `json:"branch,omitempty"`
	Status      string `json:"status,omitempty"`
}

type StaffInput struct {
	FullName    string `json:"fullName" validate:"required,notblank,min=2,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Designation string `json:"designation,omitempty" validate:"omitempty,max=80"`
	Role        string `json:"role,omitempty" validate:"omitempty,max=40"`
	Branch      string `json:"branch,omitempty"`
}

type Recruiter struct {
	ID             string   `json:"_id"`
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	Specialization []string `json:"specialization,omitempty"`
	AccountStatus  string   `json:"accountStatus,omitempty"`
}

type RecruiterInput struct {
	FullName       string   `json:"fullName" validate:"required,notblank,min=2,max=120"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Specialization []string `json:"specialization,omitempty" validate:"omitempty,dive,notblank"`
}

type Branch struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Code     string `json:"branchCode,omitempty"`
	Location string `json:"location,omitempty"`
}

type BranchEmployee struct {
	ID          string `json:"_id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email,omitempty"`
	Designation string `json:"designation,omitempty"`
	Branch      string `json:"branch,omitempty"`
}
