package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/laptop-advisor/internal/config"
	"github.com/muurk/laptop-advisor/internal/form"
	"github.com/muurk/laptop-advisor/internal/logging"
	"github.com/muurk/laptop-advisor/internal/purpose"
	"github.com/muurk/laptop-advisor/internal/service"
	"github.com/muurk/laptop-advisor/internal/tui"
	"github.com/muurk/laptop-advisor/internal/ui"
)

// Output formats
const (
	formatDetailed = "detailed"
	formatCompact  = "compact"
	formatJSON     = "json"
)

// Global flags
var (
	serviceURL     string
	timeoutSeconds int
	locale         string
	logLevel       string
	outputFormat   string
)

// Recommend flags
var (
	manufacturer string
	modelName    string
	purposeValue string
	showDetails  bool
)

// Resolved by setup before any command runs
var (
	settings *config.Settings
	client   *service.Client
	prices   *service.PriceFormatter
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serviceURL, "url", "", "Recommendation service base URL (default from config or "+service.DefaultBaseURL+")")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "HTTP request timeout in seconds (default from config)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Locale for price formatting, e.g. en-US or de (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to stderr")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatDetailed, "Output format (detailed, compact, json)")

	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(purposesCmd)
	rootCmd.AddCommand(configCmd)
}

// setup initializes logging, loads settings and applies flag overrides.
// Precedence: flags > LAPTOP_ADVISOR_URL > config file > defaults.
func setup(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}

	switch outputFormat {
	case formatDetailed, formatCompact, formatJSON:
	default:
		return fmt.Errorf("invalid --format %q (use detailed, compact or json)", outputFormat)
	}

	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings = loaded

	if serviceURL != "" {
		settings.Service.BaseURL = serviceURL
	}
	if timeoutSeconds > 0 {
		settings.Service.TimeoutSeconds = timeoutSeconds
	}
	if locale != "" {
		settings.Display.Locale = locale
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	client = service.NewClient(settings.Service.BaseURL)
	client.SetTimeout(settings.Timeout())
	client.SetRateLimit(settings.Service.RateLimit, settings.Service.RateBurst)

	prices = service.NewPriceFormatter(settings.Display.Locale)
	prices.Currency = settings.Display.Currency

	logging.Debug("Configuration resolved",
		zap.String("base_url", client.BaseURL),
		zap.Duration("timeout", settings.Timeout()),
		zap.Float64("rate_limit", settings.Service.RateLimit),
		zap.String("locale", settings.Display.Locale),
	)
	return nil
}

// runForm launches the interactive form
func runForm(cmd *cobra.Command, args []string) error {
	if err := tui.Run(cmd.Context(), client, prices, client.BaseURL); err != nil {
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}

// optionsCmd prints the selectable option set
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List manufacturers and models offered by the service",
	Long: `Fetch the option set the form offers: manufacturers, the models of each
manufacturer, and the categories the service knows about.`,
	Example: `  # Styled listing
  laptop-advisor options

  # Against a remote service, as JSON
  laptop-advisor options --url http://advisor.example:8000 --format json`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func runOptions(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store := form.NewOptionStore()
	if err := store.Load(cmd.Context(), client); err != nil {
		if outputFormat == formatDetailed {
			ui.NewPrinter(out).PrintServiceError("Could not load options", err)
		}
		return err
	}
	options := store.Snapshot()

	switch outputFormat {
	case formatJSON:
		return printJSON(out, options)
	case formatCompact:
		_, err := fmt.Fprint(out, service.FormatOptions(options))
		return err
	default:
		p := ui.NewPrinter(out)
		p.PrintHeader("Options", "laptop-advisor options", []ui.Field{
			{Key: "Service", Value: client.BaseURL},
		})
		p.PrintOptions(options)
		return nil
	}
}

// recommendCmd performs a single submission
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get recommended configurations for a selection",
	Long: `Submit a manufacturer, model and purpose to the recommendation service and
print the recommended configurations.

The purpose is translated into the service's category vocabulary (see
'laptop-advisor purposes'). Empty or unknown values are sent as-is; the
service decides what they mean.`,
	Example: `  # Summaries
  laptop-advisor recommend --manufacturer Dell --model XPS13 --purpose Gaming

  # Every detail panel expanded
  laptop-advisor recommend --manufacturer HP --model Spectre --purpose "light productivity" --details

  # JSON for scripting
  laptop-advisor recommend --manufacturer Dell --model XPS13 --purpose Design --format json`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&manufacturer, "manufacturer", "", "Manufacturer, as listed by 'options'")
	recommendCmd.Flags().StringVar(&modelName, "model", "", "Model name, as listed by 'options'")
	recommendCmd.Flags().StringVar(&purposeValue, "purpose", "", "Intended use, as listed by 'purposes'")
	recommendCmd.Flags().BoolVar(&showDetails, "details", false, "Expand every recommendation's detail panel")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var sel form.Selection
	sel.SetManufacturer(manufacturer)
	sel.SetModelName(modelName)
	sel.SetPurpose(purposeValue)

	if purposeValue != "" && !purpose.IsKnown(purposeValue) {
		logging.Warn("Unknown purpose, sending without category", zap.String("purpose", purposeValue))
	}

	orchestrator := form.NewOrchestrator(client)
	if err := orchestrator.Submit(cmd.Context(), sel); err != nil {
		if outputFormat == formatDetailed {
			ui.NewPrinter(out).PrintServiceError("Recommendation failed", err)
		}
		return fmt.Errorf("recommendation failed: %w", err)
	}
	recs := orchestrator.Recommendations()

	switch outputFormat {
	case formatJSON:
		return printJSON(out, recs)
	case formatCompact:
		text := service.FormatCompact(recs, prices)
		if showDetails {
			text = service.FormatDetailed(recs, prices)
		}
		_, err := fmt.Fprint(out, text)
		return err
	default:
		p := ui.NewPrinter(out)
		req := sel.Request()
		p.PrintHeader("Recommendations", "laptop-advisor recommend", []ui.Field{
			{Key: "Manufacturer", Value: orNone(req.Manufacturer)},
			{Key: "Model", Value: orNone(req.ModelName)},
			{Key: "Purpose", Value: orNone(purpose.Label(purposeValue))},
			{Key: "Category", Value: orNone(req.Category)},
		})
		p.PrintRecommendations(recs, prices, showDetails)
		return nil
	}
}

// purposesCmd prints the purpose to category table
var purposesCmd = &cobra.Command{
	Use:   "purposes",
	Short: "List the purposes and the category each one maps to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		switch outputFormat {
		case formatJSON:
			type row struct {
				Purpose  string `json:"purpose"`
				Label    string `json:"label"`
				Category string `json:"category"`
			}
			var rows []row
			for _, p := range purpose.Purposes() {
				rows = append(rows, row{p.Value, p.Label, purpose.MapPurposeToCategory(p.Value)})
			}
			return printJSON(out, rows)
		case formatCompact:
			for _, p := range purpose.Purposes() {
				fmt.Fprintf(out, "%s\t%s\n", p.Value, purpose.MapPurposeToCategory(p.Value))
			}
			return nil
		default:
			ui.NewPrinter(out).PrintPurposes()
			return nil
		}
	},
}

// configCmd manages the settings file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the settings file",
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig()
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Settings file created", []ui.Field{
			{Key: "Path", Value: path},
		})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings (file, environment and flags combined)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// orNone renders an empty value as "(none)"
func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
