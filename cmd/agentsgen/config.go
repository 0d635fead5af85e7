package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/goliatone/go-agentsgen/pkg/profile"
)

const (
	envProfile = "AGENTSGEN_PROFILE"
	envOutput  = "AGENTSGEN_OUTPUT"
)

type config struct {
	Detection   string
	Profile     profile.Profile
	Output      string
	Interactive bool
	EnvFile     string
}

// loadConfig parses args, loads the optional .env file, then fills any flag
// left unset from the environment. Explicit flags win over the environment.
func loadConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("agentsgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	detection := fs.String("detection", "", "detection document (JSON or YAML)")
	rawProfile := fs.String("profile", "", "profile to render: compact, standard or full")
	output := fs.String("output", "", "output file (stdout if empty or \"-\")")
	interactive := fs.Bool("interactive", false, "ask for the profile and output path")
	envFile := fs.String("env-file", "", "dotenv file to load before reading the environment")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return config{}, fmt.Errorf("load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["profile"] {
		*rawProfile = os.Getenv(envProfile)
	}
	if !set["output"] {
		if v := os.Getenv(envOutput); v != "" {
			*output = v
		}
	}

	p, err := profile.Parse(*rawProfile)
	if err != nil {
		return config{}, err
	}

	cfg := config{
		Detection:   strings.TrimSpace(*detection),
		Profile:     p,
		Output:      strings.TrimSpace(*output),
		Interactive: *interactive,
		EnvFile:     *envFile,
	}
	if cfg.Detection == "" && fs.NArg() > 0 {
		cfg.Detection = fs.Arg(0)
	}
	if cfg.Detection == "" {
		return config{}, errors.New("a detection document is required (-detection)")
	}
	return cfg, nil
}

func (c config) toStdout() bool {
	return c.Output == "" || c.Output == "-"
}
