package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/EdoardoGruppi/Watch-Movies/internal/config"
	"github.com/EdoardoGruppi/Watch-Movies/internal/justwatch"
	"github.com/EdoardoGruppi/Watch-Movies/internal/log"
	"github.com/EdoardoGruppi/Watch-Movies/internal/service"
	"github.com/EdoardoGruppi/Watch-Movies/internal/store"
	"github.com/EdoardoGruppi/Watch-Movies/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		search      string
		country     string
		clearCache  bool
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&search, "search", "", "run a one-shot search and print results instead of starting the UI")
	flag.StringVar(&country, "country", "", "2-letter country code for the one-shot search")
	flag.BoolVar(&clearCache, "clear-cache", false, "remove all cached catalog data and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("watchmovies %s\n", Version)
		return
	}

	if clearCache {
		if err := config.ClearCache(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cache cleared.")
		return
	}

	if err := run(search, country); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(search, country string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting watchmovies", "version", Version)

	catalogStore, err := store.NewCatalogStore(config.GetCachePath(), store.DefaultStaleAfter)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer catalogStore.Close()

	client := justwatch.NewClient(cfg.Catalog.Endpoint, logger)
	svc := service.NewCatalogService(client, catalogStore, service.Defaults{
		Country:     cfg.Catalog.Country,
		Language:    cfg.Catalog.Language,
		ResultCount: cfg.Catalog.ResultCount,
		BestOnly:    cfg.Catalog.BestOnly,
	}, logger)

	if search != "" {
		return runOneShot(svc, search, country, cfg.Catalog.Language)
	}

	countries := cfg.Catalog.Countries
	if len(countries) == 0 {
		countries = justwatch.SupportedCountries()
	}

	model := tui.NewModel(svc, countries, cfg.Catalog.Country, cfg.Catalog.Language)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}

// runOneShot prints search results as a plain table for scripted use
func runOneShot(svc *service.CatalogService, query, country, language string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := svc.Search(ctx, query, country, language)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	for _, entry := range results {
		line := entry.Title
		if year := entry.YearString(); year != "" {
			line += " (" + year + ")"
		}
		if entry.Scoring != nil && entry.Scoring.IMDBScore != nil {
			line += fmt.Sprintf("  IMDB %.1f", *entry.Scoring.IMDBScore)
		}
		if genres := entry.GenreList(); genres != "" {
			line += "  " + genres
		}
		if len(line) > width {
			line = line[:width-1] + "…"
		}
		fmt.Println(line)
		for _, offer := range entry.Offers {
			detail := fmt.Sprintf("    %s  %s  %s",
				offer.Package.Name,
				strings.ToLower(offer.MonetizationType),
				offer.FormattedPrice())
			if len(detail) > width {
				detail = detail[:width-1] + "…"
			}
			fmt.Println(detail)
		}
	}
	return nil
}
