package tui

import (
	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
	"github.com/EdoardoGruppi/Watch-Movies/internal/service"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SearchResultsMsg signals that search results are ready
type SearchResultsMsg struct {
	Results []domain.MediaEntry
	Query   string
}

// DetailsLoadedMsg signals that a title's details have been loaded
type DetailsLoadedMsg struct {
	Entry *domain.MediaEntry
	ID    string
}

// OffersLoadedMsg signals that the multi-country offer comparison is ready
type OffersLoadedMsg struct {
	Rows     []service.ComparisonRow
	Services []string
	ID       string
}
