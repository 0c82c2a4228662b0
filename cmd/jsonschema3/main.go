// Package main provides the CLI entry point for jsonschema3, a validator for
// JSON documents against JSON Schema Draft 3 schemas.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	jsonschema "github.com/jarib/json-schema"
)

const (
	exitConforms = 0
	exitViolates = 1
	exitBroken   = 2
)

func main() {
	var (
		list    bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "jsonschema3 <schema> <instance>",
		Short: "Validate a JSON document against a Draft 3 schema",
		Long: `jsonschema3 validates a JSON instance document against a JSON Schema Draft 3
schema. The schema argument is a file path or URI, and the schema document
may also be YAML; the instance argument is the path of a local JSON file. On
violation, the first failure is reported with a pointer into the instance.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := run(args[0], args[1], list, verbose); err != nil {
				return err
			}
			fmt.Println("valid")
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&list, "list", false, "validate the instance as an array of conforming elements")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log schema loading at debug level")

	if err := rootCmd.Execute(); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", validationErr)
			os.Exit(exitViolates)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitBroken)
	}
	os.Exit(exitConforms)
}

func run(schemaPath, instancePath string, list, verbose bool) error {
	validator := jsonschema.New()
	if verbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		validator.SetLogger(logger)
	}

	instance, err := os.ReadFile(instancePath)
	if err != nil {
		return err
	}

	return validator.ValidateStrict(schemaPath, instance, jsonschema.WithList(list))
}
