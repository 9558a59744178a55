package payload

type Stage struct {
	ID                string   `json:"_id,omitempty"`
	Name              string   `json:"name" validate:"required,notblank,max=80"`
	Order             int      `json:"order" validate:"gte=1"`
	RequiredDocuments []string `json:"requiredDocuments,omitempty" validate:"omitempty,dive,notblank"`
}

type Pipeline struct {
	ID     string  `json:"_id,omitempty"`
	Name   string  `json:"name" validate:"required,notblank,max=120"`
	Stages []Stage `json:"stages" validate:"required,min=1,dive"`
}
