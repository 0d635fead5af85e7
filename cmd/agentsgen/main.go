package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-agentsgen/internal/prompt"
	"github.com/goliatone/go-agentsgen/pkg/detect"
	"github.com/goliatone/go-agentsgen/pkg/orchestrator"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if cfg.Interactive {
		answers, err := prompt.Run(context.Background(), prompt.NewSurveyDriver(os.Stderr), prompt.Settings{
			Profile: cfg.Profile,
			Output:  defaultOutput(cfg.Output),
		})
		if errors.Is(err, prompt.ErrAborted) {
			log.Printf("Aborted")
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Profile = answers.Profile
		cfg.Output = answers.Output
	}

	ok, err := run(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to generate AGENTS.md: %v", err)
	}
	if !ok {
		os.Exit(1)
	}
}

// run renders the document described by cfg. It reports false when the
// output failed validation; the document is still written so it can be
// inspected.
func run(cfg config, stdout io.Writer) (bool, error) {
	detection, err := detect.LoadFile(cfg.Detection)
	if err != nil {
		return false, err
	}

	result, err := orchestrator.New().Generate(orchestrator.Request{
		Detection: detection,
		Profile:   cfg.Profile,
	})
	if err != nil {
		return false, err
	}

	for _, warning := range result.Validation.Warnings {
		log.Printf("warning: %s", warning)
	}
	for _, problem := range result.Validation.Errors {
		log.Printf("error: %s", problem)
	}

	if cfg.toStdout() {
		if _, err := io.WriteString(stdout, result.Content); err != nil {
			return false, err
		}
	} else {
		if err := os.WriteFile(cfg.Output, []byte(result.Content), 0o644); err != nil {
			return false, fmt.Errorf("write output: %w", err)
		}
		log.Printf("AGENTS.md written to %s (%d lines, ~%d tokens)", cfg.Output, result.Validation.LineCount, result.Validation.EstimatedTokens)
	}

	return result.Validation.Valid, nil
}

func defaultOutput(output string) string {
	if output == "" {
		return "AGENTS.md"
	}
	return output
}
