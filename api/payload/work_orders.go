package payload

type Document struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsMandatory bool   `json:"isMandatory,omitempty"`
}

type StageTimeline struct {
	StageID   string `json:"stageId,omitempty"`
	StageName string `json:"stageName"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type CustomField struct {
	Label string `json:"label"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value,omitempty"`
}

type WorkOrder struct {
	ID                    string          `json:"_id"`
	Title                 string          `json:"title"`
	JobCode               string          `json:"jobCode"`
	SalaryFrom            float64         `json:"salaryFrom,omitempty"`
	SalaryTo              float64         `json:"salaryTo,omitempty"`
	RequiredSkills        []string        `json:"requiredSkills,omitempty"`
	Documents             []Document      `json:"documents,omitempty"`
	PipelineStageTimeline []StageTimeline `json:"pipelineStageTimeline,omitempty"`
	CustomFields          []CustomField   `json:"customFields,omitempty"`
	WorkOrderStatus       string          `json:"workOrderStatus,omitempty"`
}

type WorkOrderInput struct {
	Title           string   `json:"title" validate:"required,notblank,max=200"`
	JobCode         string   `json:"jobCode" validate:"required,notblank"`
	SalaryFrom      float64  `json:"salaryFrom,omitempty" validate:"gte=0"`
	SalaryTo        float64  `json:"salaryTo,omitempty" validate:"omitempty,gtefield=SalaryFrom"`
	RequiredSkills  []string `json:"requiredSkills,omitempty" validate:"omitempty,dive,notblank"`
	WorkOrderStatus string   `json:"workOrderStatus,omitempty" validate:"omitempty,max=40"`
}
