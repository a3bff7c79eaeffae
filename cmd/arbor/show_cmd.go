package main

import (
	"fmt"
	"io"

	"github.com/pbanos/arbor"
	"github.com/spf13/cobra"
)

type showCmdConfig struct {
	*rootCmdConfig
	input string
	from  string
}

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &showCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a tree",
		Long:  `Read a tree and print its structure along with its depth and number of leaves`,
		Run: func(cmd *cobra.Command, args []string) {
			err := validForm("from", config.from)
			if err != nil {
				fail(1, err)
			}
			codecs, err := config.Codecs()
			if err != nil {
				fail(2, err)
			}
			in, err := openInput(config.input)
			if err != nil {
				fail(3, err)
			}
			defer in.Close()
			t, err := readTree(in, config.from, codecs)
			if err != nil {
				fail(4, err)
			}
			show(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().StringVarP(&(config.input), "input", "i", "", "path to the file the tree is read from (stdin if not set)")
	cmd.Flags().StringVarP(&(config.from), "from", "f", arbor.JSONForm, "form of the input tree: json, binary or base64")
	return cmd
}

func show(w io.Writer, t *arbor.Tree) {
	fmt.Fprint(w, t)
	fmt.Fprintf(w, "depth: %d, leaves: %d\n", t.Depth(), len(t.Leaves()))
}
