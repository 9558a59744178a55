package search

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/tunepath-askeva/eram/pkg/portal"
)

// Range is an inclusive [min, max] pair.
type Range [2]int

type Filters struct {
	Keywords     string   `yaml:"keywords"`
	Experience   Range    `yaml:"experience"`
	Skills       []string `yaml:"skills"`
	Location     string   `yaml:"location"`
	Company      string   `yaml:"company"`
	Salary       Range    `yaml:"salary"`
	AgeRange     Range    `yaml:"ageRange"`
	Nationality  string   `yaml:"nationality"`
	NoticePeriod string   `yaml:"noticePeriod"`
	VisaStatus   string   `yaml:"visaStatus"`
	Languages    []string `yaml:"languages"`
}

var (
	DefaultExperience = Range{0, 20}
	DefaultSalary     = Range{0, 2000000}
	DefaultAgeRange   = Range{18, 70}
)

func DefaultFilters() Filters {
	return Filters{
		Experience: DefaultExperience,
		Salary:     DefaultSalary,
		AgeRange:   DefaultAgeRange,
	}
}

// Normalize trims and lower-cases text fields and drops blank list entries.
func (f Filters) Normalize() Filters {
	return Filters{
		Keywords:     normalizeText(f.Keywords),
		Experience:   f.Experience,
		Skills:       normalizeList(f.Skills),
		Location:     normalizeText(f.Location),
		Company:      normalizeText(f.Company),
		Salary:       f.Salary,
		AgeRange:     f.AgeRange,
		Nationality:  normalizeText(f.Nationality),
		NoticePeriod: normalizeText(f.NoticePeriod),
		VisaStatus:   normalizeText(f.VisaStatus),
		Languages:    normalizeList(f.Languages),
	}
}

func (f Filters) Equal(other Filters) bool {
	a, b := f.Normalize(), other.Normalize()

	return a.Keywords == b.Keywords &&
		a.Experience == b.Experience &&
		slices.Equal(a.Skills, b.Skills) &&
		a.Location == b.Location &&
		a.Company == b.Company &&
		a.Salary == b.Salary &&
		a.AgeRange == b.AgeRange &&
		a.Nationality == b.Nationality &&
		a.NoticePeriod == b.NoticePeriod &&
		a.VisaStatus == b.VisaStatus &&
		slices.Equal(a.Languages, b.Languages)
}

// IsDefault reports whether f would search for everything.
func (f Filters) IsDefault() bool {
	return f.Equal(DefaultFilters())
}

// Encode serialises only the fields that differ from their defaults.
func (f Filters) Encode() url.Values {
	n := f.Normalize()
	values := url.Values{}

	setText(values, "keywords", n.Keywords)
	setRange(values, "experience", n.Experience, DefaultExperience)
	setList(values, "skills", n.Skills)
	setText(values, "location", n.Location)
	setText(values, "company", n.Company)
	setRange(values, "salary", n.Salary, DefaultSalary)
	setRange(values, "age", n.AgeRange, DefaultAgeRange)
	setText(values, "nationality", n.Nationality)
	setText(values, "noticePeriod", n.NoticePeriod)
	setText(values, "visaStatus", n.VisaStatus)
	setList(values, "languages", n.Languages)

	return values
}

func (f Filters) clone() Filters {
	f.Skills = slices.Clone(f.Skills)
	f.Languages = slices.Clone(f.Languages)

	return f
}

func normalizeText(value string) string {
	return portal.NewStringable(value).ToLower()
}

func normalizeList(values []string) []string {
	var out []string

	for _, value := range portal.FilterNonEmpty(values) {
		out = append(out, normalizeText(value))
	}

	return out
}

func setText(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setList(values url.Values, key string, list []string) {
	if len(list) > 0 {
		values.Set(key, strings.Join(list, ","))
	}
}

func setRange(values url.Values, key string, value, fallback Range) {
	if value == fallback {
		return
	}

	values.Set(key+"Min", strconv.Itoa(value[0]))
	values.Set(key+"Max", strconv.Itoa(value[1]))
}
