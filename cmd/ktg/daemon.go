package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oneflow1982/ktg/pkg/daemon"
	"github.com/oneflow1982/ktg/pkg/version"
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:     "daemon",
		Short:   "Run the ktg daemon in the foreground",
		GroupID: gAdvanced,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// --daemon-address is the shared default; --listen overrides it.
			if !cmd.Flags().Changed("listen") {
				listenAddr = daemonAddress
			}
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("ktg daemon starting")
			return daemon.Run(configPath, listenAddr)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", daemonAddress, "TCP address to listen on (defaults to --daemon-address)")

	return cmd
}
