package main

import (
	"io"

	"github.com/pbanos/arbor"
	"github.com/spf13/cobra"
)

type convertCmdConfig struct {
	*rootCmdConfig
	input  string
	output string
	from   string
	to     string
}

func convertCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &convertCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a tree from one form to another",
		Long:  `Read a tree in one form (json, binary or base64) and write it in another one`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
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
			out, err := createOutput(config.output)
			if err != nil {
				fail(3, err)
			}
			defer out.Close()
			config.Logf("Converting %s tree into %s...", config.from, config.to)
			err = convert(in, out, config.from, config.to, codecs)
			if err != nil {
				fail(4, err)
			}
			config.Logf("Tree converted")
		},
	}
	cmd.Flags().StringVarP(&(config.input), "input", "i", "", "path to the file the tree is read from (stdin if not set)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to the file the tree is written to (stdout if not set)")
	cmd.Flags().StringVarP(&(config.from), "from", "f", arbor.JSONForm, "form of the input tree: json, binary or base64")
	cmd.Flags().StringVarP(&(config.to), "to", "t", arbor.Base64Form, "form of the output tree: json, binary or base64")
	return cmd
}

func (ccc *convertCmdConfig) Validate() error {
	err := validForm("from", ccc.from)
	if err != nil {
		return err
	}
	return validForm("to", ccc.to)
}

func convert(r io.Reader, w io.Writer, from, to string, codecs *arbor.Codecs) error {
	t, err := readTree(r, from, codecs)
	if err != nil {
		return err
	}
	return writeTree(w, t, to, codecs)
}
