package candidates

import (
	"github.com/tunepath-askeva/eram/api/admin"
	"github.com/tunepath-askeva/eram/api/recruiter"
	"github.com/tunepath-askeva/eram/bulk"
	"github.com/tunepath-askeva/eram/pkg/metrics"
	"github.com/tunepath-askeva/eram/pkg/pagination"
)

type Handler struct {
	Admin          *admin.Api
	Recruiter      *recruiter.Api
	Metrics        *metrics.Collector
	PageSize       int
	Concurrency    int
	MaxExportPages int
}

func MakeHandler(adminApi *admin.Api, recruiterApi *recruiter.Api, collector *metrics.Collector) Handler {
	return Handler{
		Admin:          adminApi,
		Recruiter:      recruiterApi,
		Metrics:        collector,
		PageSize:       pagination.DefaultLimit,
		Concurrency:    bulk.DefaultConcurrency,
		MaxExportPages: maxExportPages,
	}
}
