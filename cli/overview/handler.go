package overview

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/tunepath-askeva/eram/api/admin"
	"github.com/tunepath-askeva/eram/pkg/cli"
	"github.com/tunepath-askeva/eram/pkg/portal"
	"github.com/tunepath-askeva/eram/pkg/query"
	"github.com/tunepath-askeva/eram/whatsapp"
)

type Handler struct {
	Admin    *admin.Api
	WhatsApp *whatsapp.Provider
}

func MakeHandler(adminApi *admin.Api, provider *whatsapp.Provider) Handler {
	return Handler{Admin: adminApi, WhatsApp: provider}
}

func (h Handler) Dashboard(ctx context.Context) error {
	dashboard, err := h.Admin.Dashboard(ctx)
	if err != nil {
		return err
	}

	cli.Successln("\nDashboard")
	cli.Table([]string{"METRIC", "VALUE"}, [][]string{
		{"Candidates", strconv.Itoa(dashboard.TotalCandidates)},
		{"Work orders", strconv.Itoa(dashboard.TotalWorkOrders)},
		{"Active work orders", strconv.Itoa(dashboard.ActiveWorkOrders)},
		{"Clients", strconv.Itoa(dashboard.TotalClients)},
		{"Recruiters", strconv.Itoa(dashboard.TotalRecruiters)},
		{"Pending approvals", strconv.Itoa(dashboard.PendingApprovals)},
	})

	if len(dashboard.CandidatesByStage) == 0 {
		return nil
	}

	stages := make([]string, 0, len(dashboard.CandidatesByStage))
	for stage := range dashboard.CandidatesByStage {
		stages = append(stages, stage)
	}
	sort.Strings(stages)

	rows := make([][]string, 0, len(stages))
	for _, stage := range stages {
		rows = append(rows, []string{stage, strconv.Itoa(dashboard.CandidatesByStage[stage])})
	}

	cli.Blueln("\nCandidates by stage")
	cli.Table([]string{"STAGE", "CANDIDATES"}, rows)

	return nil
}

// Templates lists approved templates. A missing api key is a notice, not a
// failure.
func (h Handler) Templates(ctx context.Context) error {
	templates, err := h.WhatsApp.ApprovedTemplates(ctx)

	if errors.Is(err, whatsapp.ErrMissingApiKey) {
		cli.Warningln("WhatsApp is not configured: set ENV_WHATSAPP_API_KEY.")

		return nil
	}

	if err != nil {
		return err
	}

	if len(templates) == 0 {
		cli.Warningln("No approved templates.")

		return nil
	}

	rows := make([][]string, 0, len(templates))
	for _, template := range templates {
		rows = append(rows, []string{template.Name, template.Language, template.Category})
	}

	cli.Table([]string{"NAME", "LANGUAGE", "CATEGORY"}, rows)

	return nil
}

// Requisitions prints one block per requisition and reference number.
func (h Handler) Requisitions(ctx context.Context, page int) error {
	groups, err := h.Admin.GroupedRequisitions(ctx, query.ListParams{Page: page})
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		cli.Warningln("No requisitions.")

		return nil
	}

	for _, group := range groups {
		cli.Magentaln(fmt.Sprintf("\nRequisition %s / Reference %s (%d)", orDash(group.RequisitionNo), orDash(group.ReferenceNo), len(group.Items)))

		rows := make([][]string, 0, len(group.Items))
		for _, item := range group.Items {
			rows = append(rows, []string{item.ID, cli.Truncate(item.Title, 32), item.Client, item.OverallApprovalStatus})
		}

		cli.Table([]string{"ID", "TITLE", "CLIENT", "APPROVAL"}, rows)
	}

	return nil
}

func orDash(value string) string {
	if portal.NewStringable(value).IsBlank() {
		return "-"
	}

	return value
}
