package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/config"
	"github.com/stretchr/testify/require"
)

const jsonTree = `{
	"key": "outlook",
	"predicate": {"eq": {"nominal": "sunny"}},
	"left": {"leaf": 0, "distribution": {"play": 2, "stay": 3}},
	"right": {"leaf": 1, "distribution": {"play": 7}}
}`

func testCodecs(t *testing.T) *arbor.Codecs {
	codecs, err := arbor.NewCodecs(config.Default())
	require.NoError(t, err)
	return codecs
}

func TestConvertThroughEveryForm(t *testing.T) {
	codecs := testCodecs(t)
	forms := []string{arbor.BinaryForm, arbor.Base64Form, arbor.JSONForm}
	current := []byte(jsonTree)
	from := arbor.JSONForm
	for _, to := range forms {
		out := &bytes.Buffer{}
		require.NoError(t, convert(bytes.NewReader(current), out, from, to, codecs), "%s to %s", from, to)
		current, from = out.Bytes(), to
	}
	require.JSONEq(t, jsonTree, string(current))
	require.True(t, strings.HasSuffix(string(current), "\n"))
}

func TestConvertFailures(t *testing.T) {
	codecs := testCodecs(t)
	err := convert(strings.NewReader(`{"key": "outlook"}`), &bytes.Buffer{}, arbor.JSONForm, arbor.Base64Form, codecs)
	require.ErrorContains(t, err, "predicate != null")

	err = convert(strings.NewReader("%%%"), &bytes.Buffer{}, arbor.Base64Form, arbor.JSONForm, codecs)
	require.Error(t, err)
}

func TestShow(t *testing.T) {
	codecs := testCodecs(t)
	tr, err := readTree(strings.NewReader("\n"+jsonTree+"\n\n"), arbor.JSONForm, codecs)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	show(out, tr)
	require.Contains(t, out.String(), "outlook")
	require.True(t, strings.HasSuffix(out.String(), "depth: 1, leaves: 2\n"))
}

func TestValidForm(t *testing.T) {
	for _, f := range []string{arbor.JSONForm, arbor.BinaryForm, arbor.Base64Form} {
		require.NoError(t, validForm("from", f))
	}
	require.Error(t, validForm("to", "xml"))
	require.Error(t, (&convertCmdConfig{from: "json", to: ""}).Validate())
}

func TestCLIParser(t *testing.T) {
	root := cliParser()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.Subset(t, names, []string{"version", "convert", "show", "put", "get", "delete"})

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	require.Equal(t, "arbor v0.1.0\n", out.String())
}
