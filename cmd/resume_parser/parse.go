package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var parseCommand = &cobra.Command{
	Use:   "parse",
	Short: "Parse one resume into a structured profile",
	Long: `Ingests a resume from a text file or URL, runs section identification and
entity extraction, and writes the structured profile as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runParseCmd,
}

var (
	parseConfigPath  string
	parseResume      string
	parseResumeURL   string
	parseOutput      string
	parseOutDir      string
	parseUserID      string
	parseAPIKey      string
	parseUseBrowser  bool
	parseUseLLMHint  bool
	parseSave        bool
	parseVerbose     bool
	parseDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	parseCommand.Flags().StringVarP(&parseResume, "resume", "r", "", "Path to resume text file (mutually exclusive with --resume-url)")
	parseCommand.Flags().StringVar(&parseResumeURL, "resume-url", "", "URL to fetch a hosted resume page from (mutually exclusive with --resume)")
	parseCommand.Flags().StringVarP(&parseOutput, "out", "o", "", "Path to write the profile JSON to (default: stdout)")
	parseCommand.Flags().StringVar(&parseOutDir, "out-dir", "", "Directory to write the cleaned text and ingestion metadata to (optional)")
	parseCommand.Flags().BoolVar(&parseUseBrowser, "use-browser", false, "Use headless browser for SPA resume pages (requires Chrome)")
	parseCommand.Flags().BoolVar(&parseUseLLMHint, "use-llm-hint", false, "Prefer the LLM structured extraction when it finds experience")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print the parsed profile and debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	parseCommand.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Persistence flags
	parseCommand.Flags().BoolVar(&parseSave, "save", false, "Persist the profile to the database")
	parseCommand.Flags().StringVar(&parseUserID, "user-id", "", "User UUID to save the profile under (required with --save)")
	parseCommand.Flags().StringVar(&parseDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if parseConfigPath != "" {
		loadedCfg, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if parseVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", parseConfigPath)
		}
	}

	// Step 2: Apply CLI flags (they override config values)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = parseResume
	}
	if cmd.Flags().Changed("resume-url") {
		cfg.ResumeURL = parseResumeURL
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = parseOutput
	}
	if cmd.Flags().Changed("user-id") {
		cfg.UserID = parseUserID
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = parseAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = parseUseBrowser
	}
	if cmd.Flags().Changed("use-llm-hint") {
		cfg.UseLLMHint = parseUseLLMHint
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = parseVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = parseDatabaseURL
	}

	// Step 3: Validate required fields
	if cfg.Resume == "" && cfg.ResumeURL == "" {
		return fmt.Errorf("either --resume or --resume-url must be provided (via flag or config)")
	}
	if cfg.Resume != "" && cfg.ResumeURL != "" {
		return fmt.Errorf("--resume and --resume-url are mutually exclusive; provide only one")
	}
	if parseSave && cfg.UserID == "" {
		return fmt.Errorf("--user-id is required with --save")
	}

	// Step 4: API key handling (only needed for the LLM hint)
	if cfg.UseLLMHint {
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required with --use-llm-hint")
		}
	}

	// Step 5: Ingest
	var (
		cleaned string
		meta    *ingestion.Metadata
		source  string
		err     error
	)
	if cfg.ResumeURL != "" {
		cleaned, meta, err = ingestion.IngestFromURL(ctx, cfg.ResumeURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to ingest resume from URL: %w", err)
		}
		source = cfg.ResumeURL
	} else {
		cleaned, meta, err = ingestion.IngestFromFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to ingest resume file: %w", err)
		}
		source = cfg.Resume
	}

	if parseOutDir != "" {
		if err := ingestion.WriteOutput(parseOutDir, cleaned, meta); err != nil {
			return fmt.Errorf("failed to write ingestion output: %w", err)
		}
		if cfg.Verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Wrote cleaned text and metadata to: %s\n", parseOutDir)
		}
	}

	// Step 6: Optional LLM hint
	var hint *types.StructuredProfile
	if cfg.UseLLMHint {
		client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()

		hint, err = llm.BuildProfileHint(ctx, client, cleaned)
		if err != nil {
			// Hint failures degrade to heuristic parsing.
			_, _ = fmt.Fprintf(os.Stderr, "Warning: LLM hint failed, falling back to heuristics: %v\n", err)
			hint = nil
		}
	}

	// Step 7: Parse
	profile, err := parser.New().ParseOrHint(cleaned, hint)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if err := schemas.ValidateProfile(profile); err != nil {
		return fmt.Errorf("parsed profile failed schema validation: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintProfile(profile)
	}

	// Step 8: Optional persistence
	if parseSave {
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required with --save")
		}

		uid, err := uuid.Parse(cfg.UserID)
		if err != nil {
			return fmt.Errorf("invalid user_id format: %w", err)
		}

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		profileID, err := database.SaveProfile(ctx, &db.ProfileCreateInput{
			UserID:  uid,
			Source:  source,
			RawText: cleaned,
			Profile: profile,
		})
		if err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Saved profile: %s\n", profileID)
	}

	// Step 9: Write the profile JSON
	return writeProfile(cfg.Output, profile)
}

// writeProfile writes the profile as indented JSON to path, or stdout when
// path is empty.
func writeProfile(path string, profile *types.StructuredProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile to %s: %w", path, err)
	}
	return nil
}
