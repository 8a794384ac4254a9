package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aescanero/dago-node-spintax/internal/spintax"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func renderCmd(root *rootOptions) *cobra.Command {
	var (
		seed     string
		varsFile string
		sets     []string
	)

	cmd := &cobra.Command{
		Use:   "render [template]",
		Short: "Render one template",
		Long: `Render a single template. The template is read from the argument or,
when omitted, from stdin. Variables come from a YAML file of key: value
pairs and from --set flags, which take precedence.`,
		Example: `  spintax render --seed example.com --set city=Austin "{{city}} {roof|roofing} experts"
  echo "{Hi|Hello} {{name}}" | spintax render --seed a.com --vars vars.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := readTemplate(cmd, args)
			if err != nil {
				return err
			}

			vars, err := loadVars(varsFile, sets)
			if err != nil {
				return err
			}

			logger, err := root.logger()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			out := spintax.NewEngine(logger).Process(template, seed, vars)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&seed, "seed", "s", "", "Seed that drives every choice, usually the site domain")
	cmd.Flags().StringVar(&varsFile, "vars", "", "YAML file with template variables")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a variable (key=value), repeatable")

	return cmd
}

// readTemplate returns the template argument or stdin without its final newline
func readTemplate(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read template from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// loadVars merges the variables file with --set pairs
func loadVars(path string, sets []string) (spintax.Vars, error) {
	vars := spintax.Vars{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read vars file: %w", err)
		}
		if err := yaml.Unmarshal(data, &vars); err != nil {
			return nil, fmt.Errorf("failed to parse vars file %s: %w", path, err)
		}
	}

	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", s)
		}
		vars[key] = value
	}

	return vars, nil
}
