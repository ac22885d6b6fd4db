package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	filecfg "github.com/alvictal/imgcap-go/config"
	"github.com/alvictal/imgcap-go/constants"
	"github.com/alvictal/imgcap-go/imgcap"
	"github.com/alvictal/imgcap-go/imgcap/definitions"
	"github.com/alvictal/imgcap-go/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/valyala/fasttemplate"
)

// Config holds all the configuration values from command line arguments
type Config struct {
	Device      string `json:"device"`
	Size        string `json:"size"`
	Filename    string `json:"filename"`
	OutputDir   string `json:"output_dir"`
	ShowResults bool   `json:"show_results"`
	SkipProbe   bool   `json:"skip_probe"`
	ConfigPath  string `json:"config_path"`
	Quiet       bool   `json:"quiet"`
	Debug       bool   `json:"debug"`
}

var config = &Config{}

var rootCmd = &cobra.Command{
	Use:   "imgcap <device>",
	Short: "Capture a still frame from a video device",
	Long: `imgcap captures a single still frame from a V4L2 video device by
driving v4l2-ctl and ImageMagick convert, and can optionally show the
result on the attached display.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Device = args[0]
		return run(cmd.Context())
	},
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as bool with default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.Size, "size",
		getEnv("IMGCAP_SIZE", ""),
		"Image size preset (small/medium/large)")

	rootCmd.PersistentFlags().StringVar(&config.Filename, "filename",
		getEnv("IMGCAP_FILENAME", constants.DefaultFilename),
		"Output filename (.png appended if missing)")

	rootCmd.PersistentFlags().StringVar(&config.OutputDir, "output_dir",
		getEnv("IMGCAP_OUTPUT_DIR", constants.DefaultOutputDir),
		"Output directory (created if absent)")

	rootCmd.PersistentFlags().BoolVar(&config.ShowResults, "show_results",
		getEnvBool("IMGCAP_SHOW_RESULTS", false),
		"Show the result on the attached display")

	rootCmd.PersistentFlags().BoolVar(&config.SkipProbe, "skip-probe", false,
		"Skip the device usability probe")

	rootCmd.PersistentFlags().StringVar(&config.ConfigPath, "config",
		getEnv("IMGCAP_CONFIG", ""),
		"Optional YAML config file (tool paths, aux control, extra presets)")

	rootCmd.PersistentFlags().BoolVarP(&config.Quiet, "quiet", "q", false,
		"Suppress the configuration dump")

	rootCmd.PersistentFlags().BoolVar(&config.Debug, "debug", false,
		"Enable debug logging")

	rootCmd.Long += "\n\n" + expandEpilog()
	rootCmd.PersistentPreRunE = validateArgs
}

// expandEpilog renders the help epilog template with the built-in
// preset table.
func expandEpilog() string {
	var b strings.Builder
	for _, name := range definitions.PresetNames(definitions.BuiltinSizes) {
		fmt.Fprintf(&b, "  %-8s- %s\n", name, definitions.BuiltinSizes[name])
	}

	t := fasttemplate.New(constants.HelpEpilog, "{{ ", " }}")
	return t.ExecuteString(map[string]any{
		"sizes": strings.TrimRight(b.String(), "\n"),
	})
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if config.Size == "" {
		return fmt.Errorf("--size is required: use one of %s",
			strings.Join(definitions.PresetNames(definitions.BuiltinSizes), ", "))
	}
	return nil
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Msg(err.Error())
		fmt.Println("Capture failed!")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	fileCfg := filecfg.Default()
	if config.ConfigPath != "" {
		var err error
		fileCfg, err = filecfg.Load(config.ConfigPath)
		if err != nil {
			return err
		}
	}

	size, err := definitions.ResolveSize(fileCfg.Sizes(), config.Size)
	if err != nil {
		return err
	}

	if passed := checkSystemRequirements(fileCfg, config.ShowResults); !passed {
		return fmt.Errorf("system requirements check failed")
	}

	if !config.Quiet {
		fmt.Printf("Configuration: %s\n", utils.JsonIndent(config))
	}

	filename := definitions.NormalizeFilename(config.Filename)
	fmt.Printf("Capturing from device: %s\n", config.Device)
	fmt.Printf("Size: %s\n", size)
	fmt.Printf("Output: %s\n", filepath.Join(config.OutputDir, filename))
	fmt.Println(strings.Repeat("-", 50))

	req := &definitions.CaptureRequest{
		Device:      config.Device,
		Width:       size.Width,
		Height:      size.Height,
		OutputDir:   config.OutputDir,
		Filename:    filename,
		ShowResults: config.ShowResults,
	}

	orchestrator := imgcap.New(fileCfg, imgcap.CreateRunner(), config.SkipProbe)
	finalPath, err := orchestrator.Capture(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully saved image to: %s\n", finalPath)
	fmt.Println("Capture completed successfully!")
	return nil
}

func checkSystemRequirements(cfg *filecfg.Config, needViewer bool) bool {
	log.Info().Msg("Checking system requirements...")

	required := []struct {
		name   string
		binary string
		hint   string
	}{
		{"frame grabber", cfg.Tools.Grabber, "sudo apt install v4l-utils"},
		{"raster converter", cfg.Tools.Converter, "sudo apt install imagemagick"},
	}

	for i, tool := range required {
		log.Info().Msgf("%d. Checking %s (%s)...", i+1, tool.name, tool.binary)
		if _, err := exec.LookPath(tool.binary); err != nil {
			log.Error().Msgf("%s (%s) is not installed or not in PATH", tool.name, tool.binary)
			log.Info().Msgf("   Solution: %s", tool.hint)
			return false
		}
	}

	// The viewer is a convenience; a missing binary downgrades the run,
	// it does not fail it.
	if needViewer {
		if _, err := exec.LookPath(cfg.Tools.Viewer); err != nil {
			log.Warn().Msgf("viewer (%s) is not installed, the result will not be shown", cfg.Tools.Viewer)
		}
	}

	return true
}
