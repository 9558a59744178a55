package panel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/pkg/cli"
	"github.com/tunepath-askeva/eram/pkg/portal"
)

const (
	ShowDashboard = iota + 1
	ListCandidates
	ExportCandidates
	RunPreset
	SuggestionMatch
	BulkMove
	ApprovedTemplates
	GroupedRequisitions
	Exit = 0
)

var options = []string{
	"1) Dashboard summary",
	"2) List candidates",
	"3) Export candidates to CSV",
	"4) Run a sourcing search preset",
	"5) Suggestion match for a job",
	"6) Move candidates to a status",
	"7) Approved WhatsApp templates",
	"8) Requisitions by requisition number",
	"0) Exit",
}

type Menu struct {
	Choice    *int
	Reader    *bufio.Reader
	Validator *portal.Validator
}

func MakeMenu(input io.Reader) Menu {
	menu := Menu{
		Reader:    bufio.NewReader(input),
		Validator: portal.GetDefaultValidator(),
	}

	menu.Print()

	return menu
}

func (p *Menu) PrintLine() {
	_, _ = p.Reader.ReadString('\n')
}

func (p *Menu) GetChoice() int {
	if p.Choice == nil {
		return 0
	}

	return *p.Choice
}

func (p *Menu) CaptureInput() error {
	cli.Warning("Select an option: ")

	input, err := p.readLine()
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	choice, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("please enter a valid number")
	}

	p.Choice = &choice

	return nil
}

func (p *Menu) Print() {
	inner := cli.Width(80) - 2

	border := "╔" + strings.Repeat("═", inner) + "╗"
	title := "║" + p.CenterText(" ERAM Admin ", inner) + "║"
	divider := "╠" + strings.Repeat("═", inner) + "╣"
	footer := "╚" + strings.Repeat("═", inner) + "╝"

	fmt.Fprintln(cli.Output)
	fmt.Fprintln(cli.Output, cli.CyanColour+border)
	fmt.Fprintln(cli.Output, title)
	fmt.Fprintln(cli.Output, divider)

	for _, option := range options {
		p.PrintOption(option, inner)
	}

	fmt.Fprintln(cli.Output, footer+cli.Reset)
}

// PrintOption left-pads a space, writes the text, then fills to the full inner width.
func (p *Menu) PrintOption(text string, inner int) {
	content := " " + text

	if len(content) > inner {
		content = content[:inner]
	}

	padding := inner - len(content)
	fmt.Fprintf(cli.Output, "║%s%s║\n", content, strings.Repeat(" ", padding))
}

// CenterText centers s within width, padding with spaces.
func (p *Menu) CenterText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}

	pad := width - len(s)
	left := pad / 2
	right := pad - left

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// CaptureText prompts for a line. An empty answer is an error when required.
func (p *Menu) CaptureText(prompt string, required bool) (string, error) {
	fmt.Fprint(cli.Output, prompt)

	value, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", strings.TrimRight(prompt, ": "), err)
	}

	if required && value == "" {
		return "", fmt.Errorf("a value is required")
	}

	return value, nil
}

// CaptureInt prompts for a number, returning fallback on an empty answer.
func (p *Menu) CaptureInt(prompt string, fallback int) (int, error) {
	raw, err := p.CaptureText(prompt, false)
	if err != nil {
		return 0, err
	}

	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("%q is not a positive number", raw)
	}

	return value, nil
}

func (p *Menu) CaptureJobID() (string, error) {
	return p.CaptureText("Enter the job id: ", true)
}

// CaptureIDs reads ids separated by commas or spaces.
func (p *Menu) CaptureIDs() ([]string, error) {
	raw, err := p.CaptureText("Enter the candidate ids: ", true)
	if err != nil {
		return nil, err
	}

	ids := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	if len(ids) == 0 {
		return nil, fmt.Errorf("no candidate ids given")
	}

	return ids, nil
}

// CaptureStatusChange reads a pipeline status and an optional remark.
func (p *Menu) CaptureStatusChange() (payload.StatusChange, error) {
	prompt := fmt.Sprintf("Enter the new status (%s): ", strings.Join(payload.PipelineStatuses(), ", "))

	status, err := p.CaptureText(prompt, true)
	if err != nil {
		return payload.StatusChange{}, err
	}

	remark, err := p.CaptureText("Remark (optional): ", false)
	if err != nil {
		return payload.StatusChange{}, err
	}

	change := payload.StatusChange{Status: strings.ToLower(status), Remark: remark}

	if _, err := p.Validator.Rejects(change); err != nil {
		return payload.StatusChange{}, fmt.Errorf("invalid status change: %s", p.Validator.GetErrorsAsJson())
	}

	return change, nil
}

func (p *Menu) readLine() (string, error) {
	line, err := p.Reader.ReadString('\n')

	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
