package admin

import (
	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/query"
)

const BasePath = "/api/admin"

const (
	GetDashboard query.Name = "getDashboard"

	GetPipelines   query.Name = "getPipelines"
	CreatePipeline query.Name = "createPipeline"

	GetWorkOrders   query.Name = "getWorkOrders"
	GetWorkOrder    query.Name = "getWorkOrderById"
	UpdateWorkOrder query.Name = "updateWorkOrder"
	DeleteWorkOrder query.Name = "deleteWorkOrder"

	GetBranches query.Name = "getBranches"

	GetRecruiters   query.Name = "getRecruiters"
	GetRecruiter    query.Name = "getRecruiterById"
	CreateRecruiter query.Name = "createRecruiter"
	UpdateRecruiter query.Name = "updateRecruiter"
	DeleteRecruiter query.Name = "deleteRecruiter"

	GetProjects   query.Name = "getProjects"
	CreateProject query.Name = "createProject"

	GetCandidates   query.Name = "getCandidates"
	GetCandidate    query.Name = "getCandidateById"
	CreateCandidate query.Name = "createCandidate"
	UpdateCandidate query.Name = "updateCandidate"
	DeleteCandidate query.Name = "deleteCandidate"

	GetApprovals   query.Name = "getApprovals"
	GetApproval    query.Name = "getApprovalById"
	CreateApproval query.Name = "createApproval"
	UpdateApproval query.Name = "updateApproval"

	GetClients   query.Name = "getClients"
	GetClient    query.Name = "getClientById"
	CreateClient query.Name = "createClient"
	UpdateClient query.Name = "updateClient"
	DeleteClient query.Name = "deleteClient"

	GetStaffs   query.Name = "getStaffs"
	GetStaff    query.Name = "getStaffById"
	CreateStaff query.Name = "createStaff"
	UpdateStaff query.Name = "updateStaff"
	DeleteStaff query.Name = "deleteStaff"

	GetRequisitions query.Name = "getRequisitions"

	SaveWhatsAppConfig   query.Name = "saveWhatsAppConfig"
	UpdateWhatsAppStatus query.Name = "updateWhatsAppStatus"

	GetNotifications query.Name = "getNotifications"

	GetMemberTypes   query.Name = "getMemberTypes"
	CreateMemberType query.Name = "createMemberType"

	GetJobCodes query.Name = "getJobCodes"

	GetBranchEmployees query.Name = "getBranchEmployees"
)

const (
	TagDashboard    cache.Tag = "Dashboard"
	TagPipeline     cache.Tag = "Pipeline"
	TagWorkOrder    cache.Tag = "WorkOrder"
	TagBranch       cache.Tag = "Branch"
	TagRecruiter    cache.Tag = "Recruiter"
	TagProject      cache.Tag = "Project"
	TagCandidate    cache.Tag = "Candidate"
	TagApproval     cache.Tag = "Approval"
	TagClient       cache.Tag = "Client"
	TagStaff        cache.Tag = "Staff"
	TagRequisition  cache.Tag = "Requisition"
	TagWhatsApp     cache.Tag = "WhatsApp"
	TagNotification cache.Tag = "Notification"
	TagMemberType   cache.Tag = "MemberType"
	TagJobCode      cache.Tag = "JobCode"
)
