package project

import "fmt"

// ProjectLocale holds translation progress of one locale within one project.
type ProjectLocale struct {
	projectID       uint
	locale          *Locale
	approvedStrings int
	totalStrings    int
}

func ReconstructProjectLocale(projectID uint, locale *Locale, approved, total int) (*ProjectLocale, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if locale == nil {
		return nil, fmt.Errorf("locale is required")
	}
	if approved < 0 || total < 0 {
		return nil, fmt.Errorf("string counts cannot be negative")
	}

	return &ProjectLocale{
		projectID:       projectID,
		locale:          locale,
		approvedStrings: approved,
		totalStrings:    total,
	}, nil
}

func (pl *ProjectLocale) ProjectID() uint {
	return pl.projectID
}

func (pl *ProjectLocale) Locale() *Locale {
	return pl.locale
}

func (pl *ProjectLocale) ApprovedStrings() int {
	return pl.approvedStrings
}

func (pl *ProjectLocale) TotalStrings() int {
	return pl.totalStrings
}

// IsIncomplete reports approved < total.
func (pl *ProjectLocale) IsIncomplete() bool {
	return pl.approvedStrings < pl.totalStrings
}
