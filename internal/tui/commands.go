package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EdoardoGruppi/Watch-Movies/internal/service"
)

// Command factories for async operations

// SearchCmd searches the catalog for titles matching the query
func SearchCmd(svc *service.CatalogService, query, country, language string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		results, err := svc.Search(ctx, query, country, language)
		if err != nil {
			return ErrMsg{Err: err, Context: "searching titles"}
		}
		return SearchResultsMsg{Results: results, Query: query}
	}
}

// RefreshSearchCmd re-runs a search bypassing the cache
func RefreshSearchCmd(svc *service.CatalogService, query, country, language string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		results, err := svc.RefreshSearch(ctx, query, country, language)
		if err != nil {
			return ErrMsg{Err: err, Context: "refreshing search"}
		}
		return SearchResultsMsg{Results: results, Query: query}
	}
}

// LoadDetailsCmd loads one title's full details
func LoadDetailsCmd(svc *service.CatalogService, nodeID, country, language string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		entry, err := svc.Details(ctx, nodeID, country, language)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading title details"}
		}
		return DetailsLoadedMsg{Entry: entry, ID: nodeID}
	}
}

// LoadOffersCmd loads the multi-country offer comparison for a title
func LoadOffersCmd(svc *service.CatalogService, nodeID string, countries []string, language string, refresh bool) tea.Cmd {
	return func() tea.Msg {
		// All countries resolve in one aliased request; allow more time
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		fetch := svc.Offers
		if refresh {
			fetch = svc.RefreshOffers
		}
		offers, err := fetch(ctx, nodeID, countries, language)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading offers"}
		}

		rows := service.BuildComparison(offers)
		return OffersLoadedMsg{Rows: rows, Services: service.ComparisonServices(rows), ID: nodeID}
	}
}
