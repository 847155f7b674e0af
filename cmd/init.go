package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/hireline/screener-backend/internal/application"
	"github.com/hireline/screener-backend/internal/application/commands"
	"github.com/hireline/screener-backend/internal/application/consts"
	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/hireline/screener-backend/internal/application/interfaces"
	"github.com/hireline/screener-backend/internal/application/query"
	"github.com/hireline/screener-backend/internal/infra/client"
	"github.com/hireline/screener-backend/internal/infra/config"
	"github.com/hireline/screener-backend/internal/infra/db"
	"github.com/hireline/screener-backend/internal/infra/pdftext"
	"github.com/hireline/screener-backend/internal/infra/scan"
	"github.com/hireline/screener-backend/internal/infra/storage"
	"github.com/hireline/screener-backend/internal/infra/store"
	"github.com/hireline/screener-backend/internal/presentation/rest"
	"github.com/hireline/screener-backend/pkg/env"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	providerFlag string
	modelFlag    string
	apiKeyFlag   string
	outputFlag   string
	dirFlag      string
	sampleFlag   int
	workersFlag  int

	portFlag       int
	resumeDirsFlag []string

	prefixFlag string
	destFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "AI-powered resume extraction and recruiting dashboard",
	Long: `screener turns a directory of resume PDFs into structured candidate
records via an LLM provider and serves a dashboard for filtering, ranking
and inspecting the results.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured candidate records from resumes",
	Example: `  screener extract
  screener extract --sample 5
  screener extract --provider openai --model gpt-4o
  screener extract --provider anthropic --model claude-3-5-haiku-20241022 --workers 8
  screener extract --directory /path/to/resumes --output results.csv`,
	RunE: runExtract,
}

var serveCmd = &cobra.Command{
	Use:   "serve [csv-file]",
	Short: "Serve the recruiting dashboard",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServe,
}

var verifyCmd = &cobra.Command{
	Use:   "verify [csv-file]",
	Short: "Check a candidate CSV for completeness and data quality",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVerify,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download resume objects from the configured bucket",
	RunE:  runSync,
}

func init() {
	extractCmd.Flags().StringVar(&providerFlag, "provider", string(consts.DefaultProvider), "model provider: groq, openai, anthropic, gemini")
	extractCmd.Flags().StringVar(&modelFlag, "model", consts.DefaultModel, "model name for the chosen provider")
	extractCmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "API key (or set the provider's environment variable)")
	extractCmd.Flags().StringVar(&outputFlag, "output", "candidates.csv", "output CSV filename")
	extractCmd.Flags().StringVar(&dirFlag, "directory", ".", "directory to search for resumes")
	extractCmd.Flags().IntVar(&sampleFlag, "sample", 0, "process only N resumes for testing")
	extractCmd.Flags().IntVar(&workersFlag, "workers", 4, "number of parallel workers")

	serveCmd.Flags().IntVar(&portFlag, "port", 8003, "port to serve on")
	serveCmd.Flags().StringSliceVar(&resumeDirsFlag, "resume-dirs", nil, "directories to search for resume files (default: all subdirectories)")

	syncCmd.Flags().StringVar(&prefixFlag, "prefix", "", "object key prefix to download")
	syncCmd.Flags().StringVar(&destFlag, "dest", "resumes", "local directory to download into")

	rootCmd.AddCommand(extractCmd, serveCmd, verifyCmd, syncCmd)
}

// Init runs the CLI.
func Init() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := consts.Provider(providerFlag)
	apiKey, err := config.ProviderAPIKey(provider, apiKeyFlag)
	if err != nil {
		return err
	}
	model, err := client.NewChatModel(ctx, provider, modelFlag, apiKey)
	if err != nil {
		return err
	}
	fmt.Printf("Starting resume extraction with %s\n", model.Name())

	var sink interfaces.CandidateSink
	dbConfig := db.NewConfig()
	if dbConfig.Enabled() {
		repo, err := db.NewCandidateRepo(ctx, dbConfig)
		if err != nil {
			return err
		}
		defer repo.Close()
		sink = repo
		fmt.Println("Postgres sink enabled")
	}

	gate := commands.NewRateGate(500 * time.Millisecond)
	parser := commands.NewParseResume(model, gate)
	batch := commands.NewExtractBatch(parser, pdftext.New(), sink)

	summary, err := batch.Execute(ctx, dto.ExtractBatchRequest{
		Directory:  dirFlag,
		OutputFile: outputFlag,
		Sample:     sampleFlag,
		Workers:    workersFlag,
	})
	if err != nil {
		return err
	}

	fmt.Println("\nProcessing complete")
	fmt.Printf("  attempted: %d\n", summary.Attempted)
	fmt.Printf("  succeeded: %d\n", summary.Succeeded)
	fmt.Printf("  failed:    %d\n", summary.Failed)
	if summary.Attempted > 0 {
		fmt.Printf("  success rate: %.1f%%\n", summary.SuccessRate)
	}
	fmt.Printf("  results: %s\n", summary.OutputFile)
	if summary.ErrorsFile != "" {
		fmt.Printf("  errors:  %s\n", summary.ErrorsFile)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	csvFile := "candidates.csv"
	if len(args) > 0 {
		csvFile = args[0]
	}

	source, cleanup, err := candidateSource(csvFile)
	if err != nil {
		return err
	}
	defer cleanup()

	const pathsFile = "resume_paths.json"
	paths, err := scan.BuildResumePaths(".", resumeDirsFlag)
	if err != nil {
		log.Printf("warning: could not generate resume paths: %v", err)
	} else if err := scan.WriteResumePaths(pathsFile, paths); err != nil {
		log.Printf("warning: could not write %s: %v", pathsFile, err)
	} else {
		fmt.Printf("Found %d resume files\n", len(paths))
	}

	queries := application.NewQueries(
		query.NewListCandidates(source),
		query.NewTopCandidates(source),
		query.NewVerifyDataset(source),
	)
	handler := rest.NewServer(queries, csvFile, ".", pathsFile)

	app := fiber.New(fiber.Config{
		IdleTimeout: 5 * time.Second,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	rest.RegisterHandlers(app, handler)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", portFlag)); err != nil {
			log.Panic(err)
		}
	}()
	fmt.Printf("Dashboard available at: http://localhost:%d/\n", portFlag)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	fmt.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	fmt.Println("Server was successfully shutdown.")
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	csvFile := "candidates.csv"
	if len(args) > 0 {
		csvFile = args[0]
	}
	source, cleanup, err := candidateSource(csvFile)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := query.NewVerifyDataset(source).Query(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Parsed %d candidate records\n", report.Records)
	fmt.Printf("  valid scores: %d/%d\n", report.ValidScores, report.Records)
	fmt.Printf("  valid emails: %d/%d\n", report.ValidEmails, report.Records)
	fmt.Printf("  valid names:  %d/%d\n", report.ValidNames, report.Records)
	if len(report.Top) > 0 {
		fmt.Println("\nTop candidates by score:")
		for i, r := range report.Top {
			university := r.BachelorsUniversity
			if university == "" {
				university = r.GraduateUniversity
			}
			fmt.Printf("  %d. %s - Score: %.1f - %s\n", i+1, r.CandidateName, r.OverallScore, university)
		}
	}
	return nil
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(env.GetEnv("AWS_DEFAULT_REGION", "auto")),
	}
	if accessKey, secretKey := os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"); accessKey != "" && secretKey != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}
	cfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("can't load aws config: %w", err)
	}

	sync := commands.NewSyncBucket(storage.NewStorage(cfg))
	count, err := sync.Execute(ctx, dto.SyncBucketRequest{
		Prefix:  prefixFlag,
		DestDir: destFlag,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Downloaded %d resumes to %s\n", count, destFlag)
	return nil
}

// candidateSource prefers Postgres when configured, else the CSV on disk.
func candidateSource(csvFile string) (interfaces.CandidateSource, func(), error) {
	dbConfig := db.NewConfig()
	if dbConfig.Enabled() {
		repo, err := db.NewCandidateRepo(context.Background(), dbConfig)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	}
	if _, err := os.Stat(csvFile); err != nil {
		return nil, nil, fmt.Errorf("%s not found, generate it with: screener extract", csvFile)
	}
	return store.NewFileSource(csvFile), func() {}, nil
}
