package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/atelier-modern/archivesearch/internal/version"
	"github.com/atelier-modern/archivesearch/pkg/archive"
)

func main() {
	app := &cli.App{
		Name:    "archivesearch",
		Usage:   "Search and recommendation engine for the architecture archive",
		Version: version.Version,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API server",
				Action: serveCommand,
			},
			{
				Name:      "search",
				Usage:     "Run a one-shot search against a local corpus",
				ArgsUsage: "[term]",
				Flags: append(corpusFlags(),
					&cli.StringFlag{Name: "sort", Usage: "Sort key: relevance, year, title, secondary", Value: "relevance"},
					&cli.StringSliceFlag{Name: "type", Usage: "Restrict to content types (work, scholar, biography)"},
					&cli.StringSliceFlag{Name: "category", Usage: "Restrict works to categories"},
					&cli.StringSliceFlag{Name: "region", Usage: "Restrict scholars to regions"},
					&cli.IntFlag{Name: "year-min", Usage: "Inclusive lower year bound"},
					&cli.IntFlag{Name: "year-max", Usage: "Inclusive upper year bound"},
					&cli.IntFlag{Name: "limit", Usage: "Maximum results", Value: 20},
					&cli.IntFlag{Name: "offset", Usage: "Results to skip"},
				),
				Action: searchCommand,
			},
			{
				Name:      "suggest",
				Usage:     "Print autocomplete suggestions for a partial term",
				ArgsUsage: "partial",
				Flags:     corpusFlags(),
				Action:    suggestCommand,
			},
			{
				Name:      "recommend",
				Usage:     "Print recommendations for a seed entity",
				ArgsUsage: "[seed-id]",
				Flags: append(corpusFlags(),
					&cli.StringFlag{
						Name:  "seed",
						Usage: "Seed kind: work, scholar, biography, general",
						Value: "general",
					},
					&cli.IntFlag{Name: "max", Usage: "Maximum recommendations", Value: 6},
					&cli.StringSliceFlag{Name: "exclude", Usage: "Entity ids to exclude"},
				),
				Action: recommendCommand,
			},
			{
				Name:   "filters",
				Usage:  "Print the available filter dimensions of a corpus",
				Flags:  corpusFlags(),
				Action: filtersCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "corpus",
			Aliases: []string{"c"},
			Usage:   "Path to the corpus directory",
			Value:   "config/corpus",
		},
	}
}

func openEngine(c *cli.Context) (*archive.Engine, error) {
	return archive.Open(c.String("corpus"), archive.Config{})
}

func searchCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}

	var yearRange []int
	if c.IsSet("year-min") || c.IsSet("year-max") {
		yearRange = []int{c.Int("year-min"), c.Int("year-max")}
	}
	results, err := engine.Search(archive.SearchParams{
		Term:         c.Args().First(),
		ContentTypes: c.StringSlice("type"),
		Categories:   c.StringSlice("category"),
		Regions:      c.StringSlice("region"),
		YearRange:    yearRange,
		SortBy:       c.String("sort"),
		Limit:        c.Int("limit"),
		Offset:       c.Int("offset"),
	})
	if err != nil {
		return err
	}
	return printJSON(results)
}

func suggestCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	return printJSON(engine.Suggestions(c.Args().First()))
}

func recommendCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}

	params := archive.RecommendationParams{
		MaxResults: c.Int("max"),
		ExcludeIDs: c.StringSlice("exclude"),
	}
	seedID := c.Args().First()

	var items []archive.RecommendationItem
	switch seed := c.String("seed"); seed {
	case "work":
		items, err = engine.WorkRecommendations(seedID, params)
	case "scholar":
		items, err = engine.ScholarRecommendations(seedID, params)
	case "biography":
		items, err = engine.BiographyRecommendations(seedID, params)
	case "general":
		items, err = engine.GeneralRecommendations(params)
	default:
		return fmt.Errorf("unknown seed kind %q", seed)
	}
	if err != nil {
		return err
	}
	return printJSON(items)
}

func filtersCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	return printJSON(engine.AvailableFilters())
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
