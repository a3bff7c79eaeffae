package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/arbor"
	"github.com/spf13/cobra"
)

type storeCmdConfig struct {
	*rootCmdConfig
	file string
	form string
}

func putCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &storeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "put NAME",
		Short: "Save a tree into the store",
		Long:  `Read a tree and save it into the configured store under the given name, encoded with the configured binary format`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := validForm("from", config.form)
			if err != nil {
				fail(1, err)
			}
			ctx := context.Background()
			archive, closeStore := config.archive(ctx)
			defer closeStore()
			in, err := openInput(config.file)
			if err != nil {
				fail(3, err)
			}
			defer in.Close()
			t, err := readTree(in, config.form, archive.codecs)
			if err != nil {
				fail(4, err)
			}
			config.Logf("Saving tree %s...", args[0])
			err = archive.Save(ctx, args[0], t)
			if err != nil {
				fail(5, err)
			}
			config.Logf("Tree saved")
		},
	}
	cmd.Flags().StringVarP(&(config.file), "input", "i", "", "path to the file the tree is read from (stdin if not set)")
	cmd.Flags().StringVarP(&(config.form), "from", "f", arbor.JSONForm, "form of the input tree: json, binary or base64")
	return cmd
}

func getCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &storeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Load a tree from the store",
		Long:  `Load the tree saved into the configured store under the given name and write it`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := validForm("to", config.form)
			if err != nil {
				fail(1, err)
			}
			ctx := context.Background()
			archive, closeStore := config.archive(ctx)
			defer closeStore()
			config.Logf("Loading tree %s...", args[0])
			t, err := archive.Load(ctx, args[0])
			if err != nil {
				fail(5, err)
			}
			out, err := createOutput(config.file)
			if err != nil {
				fail(3, err)
			}
			defer out.Close()
			err = writeTree(out, t, config.form, archive.codecs)
			if err != nil {
				fail(4, err)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.file), "output", "o", "", "path to the file the tree is written to (stdout if not set)")
	cmd.Flags().StringVarP(&(config.form), "to", "t", arbor.JSONForm, "form of the output tree: json, binary or base64")
	return cmd
}

func deleteCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &storeCmdConfig{rootCmdConfig: rootConfig}
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a tree from the store",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			archive, closeStore := config.archive(ctx)
			defer closeStore()
			config.Logf("Deleting tree %s...", args[0])
			err := archive.Delete(ctx, args[0])
			if err != nil {
				fail(5, err)
			}
		},
	}
}

type codecArchive struct {
	*arbor.Archive
	codecs *arbor.Codecs
}

// archive opens the configured store, exiting on failure, and returns
// an archive on it along with a function closing the store
func (scc *storeCmdConfig) archive(ctx context.Context) (*codecArchive, func()) {
	codecs, err := scc.Codecs()
	if err != nil {
		fail(2, err)
	}
	s, err := scc.Store(ctx)
	if err != nil {
		fail(2, err)
	}
	closeStore := func() {
		err := s.Close(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "closing store: %v\n", err)
		}
	}
	return &codecArchive{arbor.NewArchive(s, codecs), codecs}, closeStore
}
