package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/arbor"
)

// openInput returns stdin for an empty path or "-"
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v", path, err)
	}
	return f, nil
}

// createOutput returns stdout for an empty path or "-"
func createOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %v", path, err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

/*
readTree takes an io.Reader, the name of a form and the codecs
and decodes the tree read from the io.Reader in that form.
Surrounding whitespace is ignored for the text forms.
*/
func readTree(r io.Reader, form string, codecs *arbor.Codecs) (*arbor.Tree, error) {
	inj, err := codecs.Form(form)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s tree: %v", form, err)
	}
	if form != arbor.BinaryForm {
		data = bytes.TrimSpace(data)
	}
	t, err := inj.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s tree: %w", form, err)
	}
	return t, nil
}

/*
writeTree takes an io.Writer, a tree, the name of a form and the codecs
and writes the tree onto the io.Writer in that form. The text forms are
followed by a newline.
*/
func writeTree(w io.Writer, t *arbor.Tree, form string, codecs *arbor.Codecs) error {
	inj, err := codecs.Form(form)
	if err != nil {
		return err
	}
	data, err := inj.Encode(t)
	if err != nil {
		return fmt.Errorf("encoding %s tree: %w", form, err)
	}
	if form != arbor.BinaryForm {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing %s tree: %v", form, err)
	}
	return nil
}

func validForm(flag, form string) error {
	switch form {
	case arbor.JSONForm, arbor.BinaryForm, arbor.Base64Form:
		return nil
	}
	return fmt.Errorf("invalid %s flag %q: expected %q, %q or %q", flag, form, arbor.JSONForm, arbor.BinaryForm, arbor.Base64Form)
}
