package main

import (
	"context"
	"os"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/config"
	"github.com/pbanos/arbor/tree"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
	configInput string
	loaded      *config.Config
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "arbor is a tool to encode and store decision trees",
		Long:  `A tool to convert annotated decision trees between JSON, binary and base64 forms, inspect them and keep them in a store`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&(config.logger)), "verbose", "v", false, "")
	rootCmd.PersistentFlags().StringVarP(&(config.configInput), "config", "c", "", "path to a YML file with the codec and store configuration (defaults are used if not set)")
	rootCmd.AddCommand(versionCmd(), convertCmd(config), showCmd(config), putCmd(config), getCmd(config), deleteCmd(config))
	return rootCmd
}

func (rcc *rootCmdConfig) Config() (*config.Config, error) {
	if rcc.loaded != nil {
		return rcc.loaded, nil
	}
	if rcc.configInput == "" {
		rcc.Logf("No config file given, using defaults")
		rcc.loaded = config.Default()
		return rcc.loaded, nil
	}
	rcc.Logf("Reading config from %s...", rcc.configInput)
	c, err := config.ReadFromFile(rcc.configInput)
	if err != nil {
		return nil, err
	}
	rcc.Logf("Config read")
	rcc.loaded = c
	return c, nil
}

func (rcc *rootCmdConfig) Codecs() (*arbor.Codecs, error) {
	c, err := rcc.Config()
	if err != nil {
		return nil, err
	}
	return arbor.NewCodecs(c)
}

func (rcc *rootCmdConfig) Store(ctx context.Context) (tree.Store, error) {
	c, err := rcc.Config()
	if err != nil {
		return nil, err
	}
	rcc.Logf("Opening %s store...", c.Store.Kind)
	s, err := arbor.OpenStore(ctx, c.Store)
	if err != nil {
		return nil, err
	}
	rcc.Logf("Store opened")
	return s, nil
}
