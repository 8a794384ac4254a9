package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aescanero/dago-node-spintax/internal/content"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func pageCmd(root *rootOptions) *cobra.Command {
	var (
		output     string
		celEnabled bool
	)

	cmd := &cobra.Command{
		Use:   "page <file.yaml>",
		Short: "Render every field of a page description",
		Long: `Render a page described in YAML: domain, page, vars, fields and an
optional Handlebars layout. Each field is seeded with the domain plus its
seed_suffix.`,
		Example: `  spintax page roof-repair.yaml
  spintax page roof-repair.yaml --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("--output must be text or json")
			}

			req, err := loadPage(args[0])
			if err != nil {
				return err
			}

			logger, err := root.logger()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			renderer := content.NewRenderer(content.Options{CELEnabled: celEnabled}, logger)
			result, err := renderer.Render(cmd.Context(), req)
			if err != nil {
				return err
			}

			if output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return writeText(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")
	cmd.Flags().BoolVar(&celEnabled, "cel", true, "Evaluate field when conditions")

	return cmd
}

// loadPage reads a render request from a YAML file
func loadPage(path string) (*content.RenderRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page file: %w", err)
	}

	var req content.RenderRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse page file %s: %w", path, err)
	}
	return &req, nil
}

func writeText(w io.Writer, result *content.RenderResult) error {
	if result.Document != "" {
		_, err := fmt.Fprintln(w, result.Document)
		return err
	}

	for _, name := range result.Order {
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, result.Fields[name]); err != nil {
			return err
		}
	}
	for _, name := range result.Skipped {
		if _, err := fmt.Fprintf(w, "%s: (skipped)\n", name); err != nil {
			return err
		}
	}
	return nil
}
