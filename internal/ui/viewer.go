package ui

import "procon/internal/domain"

// Viewer displays testcases interactively
type Viewer interface {
	View() error
}

// CaseStore is the part of the testcase store the browser needs
type CaseStore interface {
	List() ([]domain.Testcase, error)
	Read(id string) (string, string, error)
	DelCase(id string) error
}
