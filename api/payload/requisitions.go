package payload

type AssignedRecruiter struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Requisition struct {
	ID                    string              `json:"_id"`
	RequisitionNo         string              `json:"requisitionNo"`
	ReferenceNo           string              `json:"referenceNo"`
	OverallApprovalStatus string              `json:"overallapprovalstatus"`
	AssignedRecruiters    []AssignedRecruiter `json:"assignedRecruiters,omitempty"`
	Title                 string              `json:"title,omitempty"`
	Project               string              `json:"project,omitempty"`
	Client                string              `json:"client,omitempty"`
}

// RequisitionGroup is a display bucket of requisitions sharing a
// requisition and reference number.
type RequisitionGroup struct {
	Key           string
	RequisitionNo string
	ReferenceNo   string
	Items         []Requisition
}

func RequisitionKey(r Requisition) string {
	return r.RequisitionNo + "|" + r.ReferenceNo
}

// GroupRequisitions buckets requisitions by requisition and reference
// number, keeping first-seen order for both groups and members.
func GroupRequisitions(items []Requisition) []RequisitionGroup {
	index := make(map[string]int)
	groups := make([]RequisitionGroup, 0)

	for _, item := range items {
		key := RequisitionKey(item)

		position, ok := index[key]
		if !ok {
			position = len(groups)
			index[key] = position

			groups = append(groups, RequisitionGroup{
				Key:           key,
				RequisitionNo: item.RequisitionNo,
				ReferenceNo:   item.ReferenceNo,
			})
		}

		groups[position].Items = append(groups[position].Items, item)
	}

	return groups
}

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type Approval struct {
	ID          string `json:"_id"`
	Requisition string `json:"requisition,omitempty"`
	Approver    string `json:"approver,omitempty"`
	Action      string `json:"action"`
	Remark      string `json:"remark,omitempty"`
	ActionAt    string `json:"actionAt,omitempty"`
}

type ApprovalInput struct {
	Requisition string   `json:"requisition,omitempty" validate:"omitempty,notblank"`
	Approvers   []string `json:"approvers,omitempty" validate:"omitempty,dive,notblank"`
	Action      string   `json:"action" validate:"required,oneof=pending approved rejected"`
	Remark      string   `json:"remark,omitempty" validate:"omitempty,max=500"`
}
