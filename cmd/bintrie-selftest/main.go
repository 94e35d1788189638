// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command bintrie-selftest runs a scenario of add, del and check
// operations against a bintrie and compares every result with the
// expected one. Without a config file the classic example scenario
// is used.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/gaissmai/bintrie"
)

var (
	cfgFile   string
	cfgErr    error
	logLevel  string
	envPrefix = "BINTRIE_SELFTEST"
	opts      options
	v         = viper.New()
)

// options, the command line flags.
type options struct {
	Output   string
	MaxNodes int
}

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:           "bintrie-selftest",
	Short:         "Run an add/del/check scenario against an IPv4 prefix trie",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfgErr != nil {
			return errors.Wrapf(cfgErr, "reading config %s", cfgFile)
		}
		scenario, err := loadScenario(v)
		if err != nil {
			return err
		}
		return run(scenario, &opts, cmd.OutOrStdout())
	},
}

// initConfig use config file and ENV variables if set.
// A config read error is kept in cfgErr and fails the run.
func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	// Read environment variables that match prefix
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfgErr = nil
	if cfgFile != "" {
		cfgErr = v.ReadInConfig()
	}

	bindFlags(rootCmd, v)

	// initialize logger
	initLogger()
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.InfoLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

// bindFlags applies the viper config value to the flag when the flag
// is not set and viper has a value.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))

		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scenario config file (default: built-in scenario)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warning, error")
	rootCmd.PersistentFlags().StringVar(&opts.Output, "output", "tree", "Final trie dump: tree, json, yaml or none")
	rootCmd.PersistentFlags().IntVar(&opts.MaxNodes, "max-nodes", 0, "Node budget of the trie (default: unlimited)")
}

func main() {
	// Initialize flags (command line parameters)
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadScenario returns the scenario from the config, if any,
// else the built-in one.
func loadScenario(v *viper.Viper) (Scenario, error) {
	if !v.IsSet("steps") {
		return defaultScenario(), nil
	}

	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return s, errors.Wrap(err, "decoding scenario")
	}
	if s.Name == "" {
		s.Name = "config"
	}
	return s, nil
}

// run executes the scenario on a fresh trie and dumps the trie to w.
func run(s Scenario, o *options, w io.Writer) error {
	trie := bintrie.New(bintrie.WithMaxNodes(o.MaxNodes))
	defer trie.Destroy()

	failed, err := s.Run(trie)
	if err != nil {
		return errors.Wrapf(err, "scenario %s", s.Name)
	}

	log.WithFields(log.Fields{
		"scenario": s.Name,
		"steps":    len(s.Steps),
		"failed":   failed,
		"prefixes": trie.Size(),
		"nodes":    trie.Nodes(),
	}).Info("scenario done")

	if err := dump(trie, o.Output, w); err != nil {
		return err
	}

	if failed > 0 {
		return errors.Errorf("scenario %s: %d of %d steps failed", s.Name, failed, len(s.Steps))
	}
	return nil
}

// dump writes the trie in the requested format to w.
func dump(trie *bintrie.Trie, format string, w io.Writer) error {
	var (
		buf []byte
		err error
	)

	switch format {
	case "none":
		return nil
	case "tree":
		return trie.Fprint(w)
	case "json":
		// Trie.MarshalJSON is compact, indent the dump list instead
		result := struct {
			Ipv4 []bintrie.DumpListNode `json:"ipv4,omitempty"`
		}{
			Ipv4: trie.DumpList(),
		}
		buf, err = jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(result, "", "  ")
		buf = append(buf, '\n')
	case "yaml":
		buf, err = yaml.Marshal(trie)
	default:
		return errors.Errorf("unknown output format %q", format)
	}

	if err != nil {
		return errors.Wrapf(err, "dumping trie as %s", format)
	}

	_, err = w.Write(buf)
	return err
}
