package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nsf/vis"
	"github.com/nsf/vis/internal/logging"
)

var (
	cfgFile     string
	logJSON     bool
	metricsAddr string

	rootCmd = &cobra.Command{
		Use:   "vis",
		Short: "piece-table text buffer, scripted from the command line",
		Long:  `vis loads a file into a piece-table document buffer, applies edits, and saves the result — a scriptable harness over the vis core package.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				return err
			}
			if metricsAddr != "" {
				startMetricsServer(metricsAddr)
			}
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to configuration file (YAML/TOML/JSON)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit JSON logs instead of human-friendly console output")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090) for the lifetime of the command")
	rootCmd.PersistentFlags().Int("buffer-min", vis.DefaultBufferMin, "minimum size in bytes of a heap-allocated append buffer")
	rootCmd.PersistentFlags().String("save-mode", "0600", "octal file mode used for the temp file written by save")

	_ = viper.BindPFlag("buffer.min", rootCmd.PersistentFlags().Lookup("buffer-min"))
	_ = viper.BindPFlag("save.mode", rootCmd.PersistentFlags().Lookup("save-mode"))

	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newInsertCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newReplaceCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newRedoCmd())
	rootCmd.AddCommand(newScriptCmd())
	rootCmd.AddCommand(newDumpCmd())
}

// Execute is called by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vis"))
		}
		viper.SetConfigName("config")
	}
	viper.SetEnvPrefix("VIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // absence of a config file is not an error
}

func initLogger() error {
	cfg := zap.NewDevelopmentConfig()
	if logJSON {
		cfg = zap.NewProductionConfig()
	}
	cfg.EncoderConfig.EncodeTime = zap.TimeEncoder(func(t time.Time, enc zap.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(time.RFC3339))
	})
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	logging.Set(logger)
	return nil
}

func startMetricsServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Get().Sugar().Errorw("metrics server stopped", "err", err)
		}
	}()
}
