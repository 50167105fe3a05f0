package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/notekeeper/pkg/core"
)

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func printSuccess(w io.Writer, msg string) {
	successColor.Fprintln(w, msg)
}

func printInfo(w io.Writer, msg string) {
	infoColor.Fprintln(w, msg)
}

func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "Error: %v\n", err)
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", core.ErrInvalidArgument, format)
}

// render writes v as JSON or YAML. Text rendering is up to the caller.
func render(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	}
	return validateOutput(format)
}
