package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tunepath-askeva/eram/cli/candidates"
	"github.com/tunepath-askeva/eram/cli/gate"
	"github.com/tunepath-askeva/eram/cli/overview"
	"github.com/tunepath-askeva/eram/cli/panel"
	"github.com/tunepath-askeva/eram/cli/sourcing"
	"github.com/tunepath-askeva/eram/metal/kernel"
	"github.com/tunepath-askeva/eram/pkg/cli"
	"github.com/tunepath-askeva/eram/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	environment, err := kernel.Ignite("./.env", validate)
	if err != nil {
		cli.Errorln(err.Error())
		os.Exit(1)
	}

	if app, err = kernel.MakeApp(environment, validate); err != nil {
		cli.Errorln(err.Error())
		os.Exit(1)
	}
}

func main() {
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr := app.GetEnv().Metrics.Addr; addr != "" {
		go func() {
			if err := app.Metrics().Serve(ctx, addr); err != nil {
				cli.Errorln("metrics server: " + err.Error())
			}
		}()
	}

	cli.ClearScreen()

	menu := panel.MakeMenu(os.Stdin)

	candidateHandler := candidates.MakeHandler(app.Admin(), app.Recruiter(), app.Metrics())
	sourcingHandler := sourcing.MakeHandler(app.Recruiter(), app.Metrics(), app.GetEnv().Search.GetDebounce())
	overviewHandler := overview.MakeHandler(app.Admin(), app.WhatsApp())

	for {
		if ctx.Err() != nil {
			return
		}

		if err := menu.CaptureInput(); err != nil {
			cli.Errorln(err.Error())
			continue
		}

		var (
			action string
			err    error
		)

		switch menu.GetChoice() {
		case panel.ShowDashboard:
			action, err = "dashboard", overviewHandler.Dashboard(ctx)
		case panel.ListCandidates:
			action, err = "list candidates", listCandidates(ctx, menu, candidateHandler)
		case panel.ExportCandidates:
			action, err = "export candidates", exportCandidates(ctx, menu, candidateHandler)
		case panel.RunPreset:
			action, err = "run preset", runPreset(ctx, menu, sourcingHandler)
		case panel.SuggestionMatch:
			action, err = "suggestion match", suggestions(ctx, menu, sourcingHandler)
		case panel.BulkMove:
			action, err = "move candidates", moveCandidates(ctx, menu, candidateHandler)
		case panel.ApprovedTemplates:
			action, err = "whatsapp templates", overviewHandler.Templates(ctx)
		case panel.GroupedRequisitions:
			action, err = "requisitions", requisitions(ctx, menu, overviewHandler)
		case panel.Exit:
			cli.Successln("Goodbye!")
			return
		default:
			cli.Errorln("Unknown option. Try again.")
			continue
		}

		if err != nil {
			cli.Errorln(app.Reporter().Report(ctx, action, err))
		}

		cli.Blueln("Press Enter to continue...")

		menu.PrintLine()
		menu.Print()
	}
}

func listCandidates(ctx context.Context, menu panel.Menu, h candidates.Handler) error {
	search, err := menu.CaptureText("Search (optional): ", false)
	if err != nil {
		return err
	}

	page, err := menu.CaptureInt("Page [1]: ", 1)
	if err != nil {
		return err
	}

	return h.List(ctx, page, search)
}

func exportCandidates(ctx context.Context, menu panel.Menu, h candidates.Handler) error {
	path, err := menu.CaptureText("Write the CSV to: ", true)
	if err != nil {
		return err
	}

	search, err := menu.CaptureText("Search (optional): ", false)
	if err != nil {
		return err
	}

	_, err = h.Export(ctx, path, search)

	return err
}

func runPreset(ctx context.Context, menu panel.Menu, h sourcing.Handler) error {
	path, err := menu.CaptureText("Preset file: ", true)
	if err != nil {
		return err
	}

	jobID, err := menu.CaptureText("Job id (blank to use the preset's): ", false)
	if err != nil {
		return err
	}

	session, err := h.RunPreset(ctx, jobID, path)
	if err != nil {
		return err
	}

	cli.Grayln("Refine the keywords line by line; an empty line finishes.")

	return h.Refine(ctx, session, func() (string, error) {
		return menu.CaptureText("> ", false)
	})
}

func suggestions(ctx context.Context, menu panel.Menu, h sourcing.Handler) error {
	jobID, err := menu.CaptureJobID()
	if err != nil {
		return err
	}

	page, err := menu.CaptureInt("Page [1]: ", 1)
	if err != nil {
		return err
	}

	return h.Suggestions(ctx, jobID, page)
}

func moveCandidates(ctx context.Context, menu panel.Menu, h candidates.Handler) error {
	jobID, err := menu.CaptureJobID()
	if err != nil {
		return err
	}

	ids, err := menu.CaptureIDs()
	if err != nil {
		return err
	}

	change, err := menu.CaptureStatusChange()
	if err != nil {
		return err
	}

	guard := gate.MakeGuard(jobID, menu.Reader)

	if err := guard.CaptureInput(fmt.Sprintf("About to move %d candidates of job %s to %s.", len(ids), jobID, change.Status)); err != nil {
		return err
	}

	if guard.Rejects() {
		cli.Warningln("Cancelled.")

		return nil
	}

	_, err = h.Move(ctx, jobID, ids, change)

	return err
}

func requisitions(ctx context.Context, menu panel.Menu, h overview.Handler) error {
	page, err := menu.CaptureInt("Page [1]: ", 1)
	if err != nil {
		return err
	}

	return h.Requisitions(ctx, page)
}
