package admin

import (
	"context"
	"fmt"
	"sort"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/pkg/pagination"
	"github.com/tunepath-askeva/eram/pkg/query"
)

// Api is the admin slice: one method per backend operation.
type Api struct {
	slice *query.Slice
}

func New(slice *query.Slice) (*Api, error) {
	names := make([]query.Name, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, name := range names {
		definition := definitions[name]

		if definition.EndpointName() != name {
			return nil, fmt.Errorf("admin: endpoint %s registered as %s", definition.EndpointName(), name)
		}

		if err := slice.Register(definition); err != nil {
			return nil, fmt.Errorf("admin: %w", err)
		}
	}

	return &Api{slice: slice}, nil
}

func (a *Api) Slice() *query.Slice {
	return a.slice
}

func (a *Api) Dashboard(ctx context.Context) (payload.Dashboard, error) {
	return query.Query(ctx, a.slice, dashboardEndpoint, struct{}{})
}

// ---- Pipelines

func (a *Api) ListPipelines(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Pipeline], error) {
	return query.Query(ctx, a.slice, pipelinesEndpoint, params)
}

func (a *Api) CreatePipeline(ctx context.Context, pipeline payload.Pipeline) (payload.Pipeline, error) {
	return query.Mutate(ctx, a.slice, createPipelineEndpoint, pipeline)
}

// ---- Work orders

func (a *Api) ListWorkOrders(ctx context.Context, params query.ListParams) (*pagination.Page[payload.WorkOrder], error) {
	return query.Query(ctx, a.slice, workOrdersEndpoint, params)
}

func (a *Api) GetWorkOrder(ctx context.Context, id string) (payload.WorkOrder, error) {
	return query.Query(ctx, a.slice, workOrderEndpoint, query.ID(id))
}

func (a *Api) UpdateWorkOrder(ctx context.Context, id string, body payload.WorkOrderInput) (payload.WorkOrder, error) {
	return query.Mutate(ctx, a.slice, updateWorkOrderEndpoint, query.Update[payload.WorkOrderInput]{ID: id, Body: body})
}

func (a *Api) DeleteWorkOrder(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.slice, deleteWorkOrderEndpoint, query.ID(id))

	return err
}

func (a *Api) ListBranches(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Branch], error) {
	return query.Query(ctx, a.slice, branchesEndpoint, params)
}

// ---- Recruiters

func (a *Api) ListRecruiters(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Recruiter], error) {
	return query.Query(ctx, a.slice, recruitersEndpoint, params)
}

func (a *Api) GetRecruiter(ctx context.Context, id string) (payload.Recruiter, error) {
	return query.Query(ctx, a.slice, recruiterEndpoint, query.ID(id))
}

func (a *Api) CreateRecruiter(ctx context.Context, body payload.RecruiterInput) (payload.Recruiter, error) {
	return query.Mutate(ctx, a.slice, createRecruiterEndpoint, body)
}

func (a *Api) UpdateRecruiter(ctx context.Context, id string, body payload.RecruiterInput) (payload.Recruiter, error) {
	return query.Mutate(ctx, a.slice, updateRecruiterEndpoint, query.Update[payload.RecruiterInput]{ID: id, Body: body})
}

func (a *Api) DeleteRecruiter(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.slice, deleteRecruiterEndpoint, query.ID(id))

	return err
}

// ---- Projects

func (a *Api) ListProjects(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Project], error) {
	return query.Query(ctx, a.slice, projectsEndpoint, params)
}

func (a *Api) CreateProject(ctx context.Context, body payload.ProjectInput) (payload.Project, error) {
	return query.Mutate(ctx, a.slice, createProjectEndpoint, body)
}

// ---- Candidates

func (a *Api) ListCandidates(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Candidate], error) {
	return query.Query(ctx, a.slice, candidatesEndpoint, params)
}

// WatchCandidates keeps a candidate page active so candidate mutations
// refetch it.
func (a *Api) WatchCandidates(ctx context.Context, params query.ListParams, onUpdate func(*pagination.Page[payload.Candidate], error)) (func(), error) {
	return query.Watch(ctx, a.slice, candidatesEndpoint, params, onUpdate)
}

func (a *Api) GetCandidate(ctx context.Context, id string) (payload.Candidate, error) {
	return query.Query(ctx, a.slice, candidateEndpoint, query.ID(id))
}

func (a *Api) CreateCandidate(ctx context.Context, body payload.CandidateInput) (payload.Candidate, error) {
	return query.Mutate(ctx, a.slice, createCandidateEndpoint, body)
}

func (a *Api) UpdateCandidate(ctx context.Context, id string, body payload.CandidateInput) (payload.Candidate, error) {
	return query.Mutate(ctx, a.slice, updateCandidateEndpoint, query.Update[payload.CandidateInput]{ID: id, Body: body})
}

func (a *Api) DeleteCandidate(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.slice, deleteCandidateEndpoint, query.ID(id))

	return err
}

// ---- Approvals

func (a *Api) ListApprovals(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Approval], error) {
	return query.Query(ctx, a.slice, approvalsEndpoint, params)
}

func (a *Api) GetApproval(ctx context.Context, id string) (payload.Approval, error) {
	return query.Query(ctx, a.slice, approvalEndpoint, query.ID(id))
}

func (a *Api) CreateApproval(ctx context.Context, body payload.ApprovalInput) (payload.Approval, error) {
	return query.Mutate(ctx, a.slice, createApprovalEndpoint, body)
}

func (a *Api) UpdateApproval(ctx context.Context, id string, body payload.ApprovalInput) (payload.Approval, error) {
	return query.Mutate(ctx, a.slice, updateApprovalEndpoint, query.Update[payload.ApprovalInput]{ID: id, Body: body})
}

// ---- Clients

func (a *Api) ListClients(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Client], error) {
	return query.Query(ctx, a.slice, clientsEndpoint, params)
}

func (a *Api) GetClient(ctx context.Context, id string) (payload.Client, error) {
	return query.Query(ctx, a.slice, clientEndpoint, query.ID(id))
}

func (a *Api) CreateClient(ctx context.Context, body payload.ClientInput) (payload.Client, error) {
	return query.Mutate(ctx, a.slice, createClientEndpoint, body)
}

func (a *Api) UpdateClient(ctx context.Context, id string, body payload.ClientInput) (payload.Client, error) {
	return query.Mutate(ctx, a.slice, updateClientEndpoint, query.Update[payload.ClientInput]{ID: id, Body: body})
}

func (a *Api) DeleteClient(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.slice, deleteClientEndpoint, query.ID(id))

	return err
}

// ---- Staff

func (a *Api) ListStaff(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Staff], error) {
	return query.Query(ctx, a.slice, staffsEndpoint, params)
}

func (a *Api) GetStaff(ctx context.Context, id string) (payload.Staff, error) {
	return query.Query(ctx, a.slice, staffEndpoint, query.ID(id))
}

func (a *Api) CreateStaff(ctx context.Context, body payload.StaffInput) (payload.Staff, error) {
	return query.Mutate(ctx, a.slice, createStaffEndpoint, body)
}

func (a *Api) UpdateStaff(ctx context.Context, id string, body payload.StaffInput) (payload.Staff, error) {
	return query.Mutate(ctx, a.slice, updateStaffEndpoint, query.Update[payload.StaffInput]{ID: id, Body: body})
}

func (a *Api) DeleteStaff(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.slice, deleteStaffEndpoint, query.ID(id))

	return err
}

func (a *Api) ListBranchEmployees(ctx context.Context, params query.ListParams) (*pagination.Page[payload.BranchEmployee], error) {
	return query.Query(ctx, a.slice, branchEmployeesEndpoint, params)
}

// ---- Requisitions

func (a *Api) ListRequisitions(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Requisition], error) {
	return query.Query(ctx, a.slice, requisitionsEndpoint, params)
}

// GroupedRequisitions lists a page of requisitions bucketed for display.
func (a *Api) GroupedRequisitions(ctx context.Context, params query.ListParams) ([]payload.RequisitionGroup, error) {
	page, err := a.ListRequisitions(ctx, params)
	if err != nil {
		return nil, err
	}

	return payload.GroupRequisitions(page.Items), nil
}

// ---- WhatsApp

func (a *Api) SaveWhatsAppConfig(ctx context.Context, config payload.WhatsAppConfig) (payload.Acknowledgement, error) {
	return query.Mutate(ctx, a.slice, saveWhatsAppEndpoint, config)
}

func (a *Api) UpdateWhatsAppStatus(ctx context.Context, id string, active bool) (payload.Acknowledgement, error) {
	return query.Mutate(ctx, a.slice, whatsAppStatusEndpoint, query.Update[payload.WhatsAppStatus]{ID: id, Body: payload.WhatsAppStatus{IsActive: active}})
}

// ---- Lookups

func (a *Api) ListNotifications(ctx context.Context, params query.ListParams) (*pagination.Page[payload.Notification], error) {
	return query.Query(ctx, a.slice, notificationsEndpoint, params)
}

func (a *Api) ListMemberTypes(ctx context.Context, params query.ListParams) (*pagination.Page[payload.MemberType], error) {
	return query.Query(ctx, a.slice, memberTypesEndpoint, params)
}

func (a *Api) CreateMemberType(ctx context.Context, body payload.MemberTypeInput) (payload.MemberType, error) {
	return query.Mutate(ctx, a.slice, createMemberTypeEndpoint, body)
}

func (a *Api) ListJobCodes(ctx context.Context, params query.ListParams) (*pagination.Page[payload.JobCode], error) {
	return query.Query(ctx, a.slice, jobCodesEndpoint, params)
}
