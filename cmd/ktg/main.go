package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oneflow1982/ktg/pkg/client"
	"github.com/oneflow1982/ktg/pkg/version"
)

var (
	logLevel      = "info"
	daemonAddress = "127.0.0.1:9377"
	configPath    = defaultConfigPath()
)

var (
	gBasic        = "Basic:"
	gAdvanced     = "Advanced:"
	commandGroups = []string{
		gBasic,
		gAdvanced,
	}
)

var apiClient *client.Client

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ktg.json"
	}
	return filepath.Join(dir, "ktg", "config.json")
}

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: ktg daemon is not running")
		fmt.Fprintln(os.Stderr, "Start it with 'ktg daemon', or drop --remote to compute locally.")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ktg",
		Short: "ktg computes the technical readiness coefficient for mining-site equipment",
		Long: `ktg computes the technical readiness coefficient (KTG) of mining-site
equipment after a hydraulic-hose maintenance system is introduced, sweeps it
over a range of historical repair times, and renders charts, tables, and
reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := setupLogger(); err != nil {
				return err
			}
			apiClient = client.NewClient(daemonAddress)
			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")
	globalFlags.StringVar(&daemonAddress, "daemon-address", daemonAddress, "ktg daemon listen address")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewComputeCommand(),
		NewSweepCommand(),
		NewAnalyzeCommand(),
		NewExportCommand(),
		NewPresetCommand(),
		NewConfigCommand(),
		NewDashboardCommand(),
		NewDaemonCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and daemon version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("client: %s %s\n", version.Version, version.GitCommit)

			daemonVersion, err := apiClient.GetVersion()
			if err != nil {
				logrus.WithError(err).Debug("failed to get daemon version")
				return
			}
			cmd.Printf("daemon: %s\n", daemonVersion)
		},
	}
}
