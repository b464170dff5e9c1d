// Package main provides daisyquery, a CLI for inspecting the embedded
// daisyUI documentation corpus without starting the server.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/daisydays/daisy-docs-server/internal/config"
	"github.com/daisydays/daisy-docs-server/internal/docs"
	"github.com/daisydays/daisy-docs-server/internal/layout"
)

var rootCmd = &cobra.Command{
	Use:   "daisyquery",
	Short: "Query the embedded daisyUI documentation corpus",
	Long: `CLI for the daisy-docs-server corpus: list components, fetch a
document, run a scored search, or generate a page scaffold.

Scoring weights honor the same DOCS_SEARCH_* environment variables as the
server.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documented component names",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		for _, name := range engine.List() {
			fmt.Println(name)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print the documentation for one component",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		entry, err := engine.Get(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(entry.Body)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a scored search against the corpus",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		results := engine.Search(strings.Join(args, " "))
		if len(results) == 0 {
			fmt.Println("no results")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%4d  %s\n", r.Score, r.Name)
		}
		return nil
	},
}

var layoutTitle string

var layoutCmd = &cobra.Command{
	Use:   "layout <name>",
	Short: "Generate an HTML page scaffold",
	Long:  "Generate an HTML page scaffold. Known layouts: " + strings.Join(layout.Names, ", ") + ".",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !layout.Known(args[0]) {
			return fmt.Errorf("unknown layout %q (known: %s)", args[0], strings.Join(layout.Names, ", "))
		}
		fmt.Println(layout.Generate(args[0], layoutTitle))
		return nil
	},
}

func init() {
	layoutCmd.Flags().StringVar(&layoutTitle, "title", "My App", "page title")
	rootCmd.AddCommand(listCmd, getCmd, searchCmd, layoutCmd)
}

func newEngine() *docs.Engine {
	cfg := config.Load()
	store := docs.Load(docs.ParseOptions{
		Duplicates:     cfg.DuplicatePolicy,
		MinTokenLength: cfg.Search.MinTokenLength,
	})
	return docs.NewEngine(store, cfg.Search)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
