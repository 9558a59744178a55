package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/pkg/portal"
)

var ErrStageIndex = errors.New("stage index out of range")

// PipelineDraft assembles a pipeline locally. Stage orders are always
// 1..n in list order; nothing reaches the server until Submit.
type PipelineDraft struct {
	Name   string
	stages []payload.Stage
}

func NewPipelineDraft(name string) *PipelineDraft {
	return &PipelineDraft{Name: strings.TrimSpace(name)}
}

func (d *PipelineDraft) AddStage(name string, requiredDocuments ...string) {
	d.stages = append(d.stages, payload.Stage{
		Name:              strings.TrimSpace(name),
		RequiredDocuments: portal.FilterNonEmpty(requiredDocuments),
	})

	d.renumber()
}

func (d *PipelineDraft) RemoveStage(index int) error {
	if index < 0 || index >= len(d.stages) {
		return fmt.Errorf("%w: %d", ErrStageIndex, index)
	}

	d.stages = append(d.stages[:index], d.stages[index+1:]...)
	d.renumber()

	return nil
}

func (d *PipelineDraft) MoveStage(from, to int) error {
	if from < 0 || from >= len(d.stages) || to < 0 || to >= len(d.stages) {
		return fmt.Errorf("%w: %d -> %d", ErrStageIndex, from, to)
	}

	stage := d.stages[from]
	d.stages = append(d.stages[:from], d.stages[from+1:]...)
	d.stages = append(d.stages[:to], append([]payload.Stage{stage}, d.stages[to:]...)...)
	d.renumber()

	return nil
}

func (d *PipelineDraft) Stages() []payload.Stage {
	return append([]payload.Stage(nil), d.stages...)
}

func (d *PipelineDraft) Build() payload.Pipeline {
	return payload.Pipeline{
		Name:   d.Name,
		Stages: d.Stages(),
	}
}

// Submit sends the whole pipeline in one create call.
func (d *PipelineDraft) Submit(ctx context.Context, api *Api) (payload.Pipeline, error) {
	return api.CreatePipeline(ctx, d.Build())
}

func (d *PipelineDraft) renumber() {
	for i := range d.stages {
		d.stages[i].Order = i + 1
	}
}
