package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	errEmptyText     = errors.New("no verb text given")
	errUnknownOutput = errors.New("unknown output format")
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("%w %q: want text, json or yaml", errUnknownOutput, format)
}

// render writes doc in format. Text output is produced by text.
func render(w io.Writer, format string, doc any, text func(io.Writer) error) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case outputYAML:
		return writeYAML(w, doc)
	case outputText:
		return text(w)
	}
	return validOutput(format)
}

func writeYAML(w io.Writer, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	return enc.Close()
}
