package payload

type Dashboard struct {
	TotalCandidates   int            `json:"totalCandidates"`
	TotalWorkOrders   int            `json:"totalWorkOrders"`
	ActiveWorkOrders  int            `json:"activeWorkOrders"`
	TotalClients      int            `json:"totalClients"`
	TotalRecruiters   int            `json:"totalRecruiters"`
	PendingApprovals  int            `json:"pendingApprovals"`
	CandidatesByStage map[string]int `json:"candidatesByStage,omitempty"`
}

type Notification struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Message   string `json:"message,omitempty"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type MemberType struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type MemberTypeInput struct {
	Name        string `json:"name" validate:"required,notblank,min=2,max=80"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type JobCode struct {
	ID   string `json:"_id"`
	Code string `json:"jobCode"`
	Name string `json:"name,omitempty"`
}

type WhatsAppConfig struct {
	ApiKey        string `json:"apiKey" validate:"required,notblank,min=8"`
	PhoneNumberID string `json:"phoneNumberId,omitempty"`
	TemplateName  string `json:"templateName,omitempty"`
	IsActive      bool   `json:"isActive"`
}

type WhatsAppStatus struct {
	IsActive bool `json:"isActive"`
}

type WhatsAppTemplate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status"`
}

// Acknowledgement is the minimal body mutations answer with.
type Acknowledgement struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
