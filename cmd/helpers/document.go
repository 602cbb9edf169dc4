package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// readDocument decodes a YAML (or JSON) file. "-" reads r instead.
func readDocument(name string, r io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return doc, nil
}

func writeDocument(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func saveDocument(name string, v any) error {
	var buf bytes.Buffer
	if err := writeDocument(&buf, v); err != nil {
		return err
	}
	return os.WriteFile(name, buf.Bytes(), 0o644)
}

// parseScalar reads a command-line value as a YAML scalar, so "5" is an int
// and "true" a bool. Anything that does not decode stays a string.
func parseScalar(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil || (v == nil && s != "null" && s != "~") {
		return s
	}
	return v
}

func withFile(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, fileKey{}, name)
}
