package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/facilityinv/catalogue-api/config"
	"github.com/facilityinv/catalogue-api/pkg/logger"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "config/config.yaml"

var RootCmdName = "catalogue-api"

var configFile string
var rootCmd = &cobra.Command{
	Use: func() string {
		return RootCmdName
	}(),
	Short: "Facility inventory catalogue API",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Usage()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default is %s)", defaultConfigFile))
}

// SetupAll loads configuration and initializes the process-wide logger.
// Database connection setup is left to the subcommands that need it
// (serve and migrate-indexes), each of which connects with its own context.
func SetupAll() {
	setUpConfig()
	setUpLogger()
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("rootCmd.Execute() Error: %v", err)
		os.Exit(1)
	}
}

func setUpConfig() {
	if configFile == "" {
		configFile = defaultConfigFile
	}
	log.Default().Printf("Using config file: %s", configFile)
	config.SetConfig(configFile)
}

func setUpLogger() {
	log.Default().Printf("Using log level: %s", config.GetConfig().Log.Level)
	logger.InitLogger("zap")
}
