package main

import (
	"context"
	"os"
	"time"

	"github.com/grpc-boot/carcare/grace"
	"github.com/grpc-boot/carcare/orderid"
	"github.com/grpc-boot/carcare/shell"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const exitInterrupted = 130

var (
	configPath string
	output     string
	noColor    bool
	debug      bool
	logDir     string
	machineId  uint8

	idEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "carcare",
	Short:         "Car maintenance service data structure demos.",
	Long:          `Interactive demos of a priority task tree, a bounded order deque, order linked lists and the service catalog.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output mode: text, table, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored messages")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug messages")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "write JSON logs to this directory instead of stderr")
	rootCmd.PersistentFlags().Uint8Var(&machineId, "machine-id", 0, "machine id embedded in generated order ids")
}

// loadConfig merges the config file with the flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*shell.Config, error) {
	conf, err := shell.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		conf.Output = output
	}
	if flags.Changed("no-color") {
		conf.NoColor = noColor
	}
	if flags.Changed("debug") {
		conf.Debug = debug
	}
	if flags.Changed("log-dir") {
		conf.LogDir = logDir
	}
	if flags.Changed("capacity") {
		conf.Capacity = capacity
	}

	return conf, conf.Validate()
}

// runDemo wires one demo to stdin/stdout and blocks until the session ends.
func runDemo(cmd *cobra.Command, name string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := shell.NewLogger(conf.Debug, conf.LogDir)
	if err != nil {
		return err
	}
	defer logger.Sync() // nolint: errcheck

	demo, err := shell.NewDemo(name, conf)
	if err != nil {
		return err
	}

	ids, err := orderid.New(machineId, idEpoch)
	if err != nil {
		return errors.Wrap(err, "order id generator")
	}

	session := shell.NewSession(demo, shell.Options{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Logger: logger,
		Config: conf,
		Ids:    ids,
	})

	hold := grace.NewHold(func(ctx context.Context) error {
		session.Close()
		logger.Info("interrupted", zap.String("demo", name))
		_ = logger.Sync()
		os.Exit(exitInterrupted)
		return nil
	})
	go hold.Start() // nolint: errcheck
	defer hold.Stop()

	return session.Run(cmd.Context())
}
