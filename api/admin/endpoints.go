package admin

import (
	"net/http"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/pkg/query"
)

var (
	dashboardEndpoint = query.Endpoint[struct{}, payload.Dashboard]{
		Name:      GetDashboard,
		Method:    http.MethodGet,
		Path:      func(struct{}) string { return "/dashboard" },
		Transform: payload.DecodeObject[payload.Dashboard](keys("dashboard")...),
		Provides:  query.Tags[struct{}](TagDashboard),
	}

	pipelinesEndpoint      = list[payload.Pipeline](GetPipelines, "/Pipeline", payload.Items("pipelines").WithLegacy("pipeline"), TagPipeline)
	createPipelineEndpoint = create[payload.Pipeline, payload.Pipeline](CreatePipeline, "/Pipeline", keys("pipeline"), TagPipeline)

	workOrdersEndpoint      = list[payload.WorkOrder](GetWorkOrders, "/workOrder", payload.Items("workOrders"), TagWorkOrder)
	workOrderEndpoint       = fetchOne[payload.WorkOrder](GetWorkOrder, "/workOrder", keys("workOrder"), TagWorkOrder)
	updateWorkOrderEndpoint = update[payload.WorkOrderInput, payload.WorkOrder](UpdateWorkOrder, http.MethodPut, "/workOrder", keys("workOrder"), TagWorkOrder)
	deleteWorkOrderEndpoint = remove(DeleteWorkOrder, "/workOrder", TagWorkOrder)

	branchesEndpoint = list[payload.Branch](GetBranches, "/branches", payload.Items("branches"), TagBranch)

	recruitersEndpoint      = list[payload.Recruiter](GetRecruiters, "/recruiters", payload.Items("recruiters"), TagRecruiter)
	recruiterEndpoint       = fetchOne[payload.Recruiter](GetRecruiter, "/recruiters", keys("recruiter"), TagRecruiter)
	createRecruiterEndpoint = create[payload.RecruiterInput, payload.Recruiter](CreateRecruiter, "/recruiters", keys("recruiter"), TagRecruiter)
	updateRecruiterEndpoint = update[payload.RecruiterInput, payload.Recruiter](UpdateRecruiter, http.MethodPut, "/recruiters", keys("recruiter"), TagRecruiter)
	deleteRecruiterEndpoint = remove(DeleteRecruiter, "/recruiters", TagRecruiter)

	projectsEndpoint      = list[payload.Project](GetProjects, "/projects", payload.Items("projects"), TagProject)
	createProjectEndpoint = create[payload.ProjectInput, payload.Project](CreateProject, "/projects", keys("project"), TagProject)

	candidatesEndpoint      = list[payload.Candidate](GetCandidates, "/candidate", payload.Items("candidates"), TagCandidate)
	candidateEndpoint       = fetchOne[payload.Candidate](GetCandidate, "/candidate", keys("candidate"), TagCandidate)
	createCandidateEndpoint = create[payload.CandidateInput, payload.Candidate](CreateCandidate, "/candidate", keys("candidate"), TagCandidate)
	updateCandidateEndpoint = update[payload.CandidateInput, payload.Candidate](UpdateCandidate, http.MethodPut, "/candidate", keys("candidate"), TagCandidate)
	deleteCandidateEndpoint = remove(DeleteCandidate, "/candidate", TagCandidate)

	approvalsEndpoint      = list[payload.Approval](GetApprovals, "/approval", payload.Items("approvals"), TagApproval, TagRequisition)
	approvalEndpoint       = fetchOne[payload.Approval](GetApproval, "/approval", keys("approval"), TagApproval)
	createApprovalEndpoint = create[payload.ApprovalInput, payload.Approval](CreateApproval, "/approval", keys("approval"), TagApproval, TagRequisition)
	updateApprovalEndpoint = update[payload.ApprovalInput, payload.Approval](UpdateApproval, http.MethodPut, "/approval", keys("approval"), TagApproval, TagRequisition)

	clientsEndpoint      = list[payload.Client](GetClients, "/client", payload.Items("clients"), TagClient)
	clientEndpoint       = fetchOne[payload.Client](GetClient, "/client", keys("client"), TagClient)
	createClientEndpoint = create[payload.ClientInput, payload.Client](CreateClient, "/client", keys("client"), TagClient)
	updateClientEndpoint = update[payload.ClientInput, payload.Client](UpdateClient, http.MethodPut, "/client", keys("client"), TagClient)
	deleteClientEndpoint = remove(DeleteClient, "/client", TagClient)

	staffsEndpoint      = list[payload.Staff](GetStaffs, "/staff", payload.Items("staffs").WithLegacy("staff"), TagStaff)
	staffEndpoint       = fetchOne[payload.Staff](GetStaff, "/staff", keys("staff"), TagStaff)
	createStaffEndpoint = create[payload.StaffInput, payload.Staff](CreateStaff, "/staff", keys("staff"), TagStaff)
	updateStaffEndpoint = update[payload.StaffInput, payload.Staff](UpdateStaff, http.MethodPut, "/staff", keys("staff"), TagStaff)
	deleteStaffEndpoint = remove(DeleteStaff, "/staff", TagStaff)

	requisitionsEndpoint = list[payload.Requisition](GetRequisitions, "/requisition", payload.Items("requisitions"), TagRequisition)

	saveWhatsAppEndpoint   = create[payload.WhatsAppConfig, payload.Acknowledgement](SaveWhatsAppConfig, "/whatsapp-api", nil, TagWhatsApp)
	whatsAppStatusEndpoint = update[payload.WhatsAppStatus, payload.Acknowledgement](UpdateWhatsAppStatus, http.MethodPatch, "/whatsapp-status", nil, TagWhatsApp)

	notificationsEndpoint = list[payload.Notification](GetNotifications, "/notify", payload.Items("notifications"), TagNotification)

	memberTypesEndpoint      = list[payload.MemberType](GetMemberTypes, "/member-types", payload.Items("memberTypes"), TagMemberType)
	createMemberTypeEndpoint = create[payload.MemberTypeInput, payload.MemberType](CreateMemberType, "/member-types", keys("memberType"), TagMemberType)

	jobCodesEndpoint = list[payload.JobCode](GetJobCodes, "/job-codes", payload.Items("jobCodes"), TagJobCode)

	branchEmployeesEndpoint = list[payload.BranchEmployee](GetBranchEmployees, "/branch-employees", payload.Items("employees"), TagStaff)
)

// definitions is keyed by endpoint name so a second entry with the same
// name does not compile.
var definitions = map[query.Name]query.Definition{
	GetDashboard: dashboardEndpoint,

	GetPipelines:   pipelinesEndpoint,
	CreatePipeline: createPipelineEndpoint,

	GetWorkOrders:   workOrdersEndpoint,
	GetWorkOrder:    workOrderEndpoint,
	UpdateWorkOrder: updateWorkOrderEndpoint,
	DeleteWorkOrder: deleteWorkOrderEndpoint,

	GetBranches: branchesEndpoint,

	GetRecruiters:   recruitersEndpoint,
	GetRecruiter:    recruiterEndpoint,
	CreateRecruiter: createRecruiterEndpoint,
	UpdateRecruiter: updateRecruiterEndpoint,
	DeleteRecruiter: deleteRecruiterEndpoint,

	GetProjects:   projectsEndpoint,
	CreateProject: createProjectEndpoint,

	GetCandidates:   candidatesEndpoint,
	GetCandidate:    candidateEndpoint,
	CreateCandidate: createCandidateEndpoint,
	UpdateCandidate: updateCandidateEndpoint,
	DeleteCandidate: deleteCandidateEndpoint,

	GetApprovals:   approvalsEndpoint,
	GetApproval:    approvalEndpoint,
	CreateApproval: createApprovalEndpoint,
	UpdateApproval: updateApprovalEndpoint,

	GetClients:   clientsEndpoint,
	GetClient:    clientEndpoint,
	CreateClient: createClientEndpoint,
	UpdateClient: updateClientEndpoint,
	DeleteClient: deleteClientEndpoint,

	GetStaffs:   staffsEndpoint,
	GetStaff:    staffEndpoint,
	CreateStaff: createStaffEndpoint,
	UpdateStaff: updateStaffEndpoint,
	DeleteStaff: deleteStaffEndpoint,

	GetRequisitions: requisitionsEndpoint,

	SaveWhatsAppConfig:   saveWhatsAppEndpoint,
	UpdateWhatsAppStatus: whatsAppStatusEndpoint,

	GetNotifications: notificationsEndpoint,

	GetMemberTypes:   memberTypesEndpoint,
	CreateMemberType: createMemberTypeEndpoint,

	GetJobCodes: jobCodesEndpoint,

	GetBranchEmployees: branchEmployeesEndpoint,
}
