package model

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-agentsgen/pkg/detect"
	"github.com/goliatone/go-agentsgen/pkg/profile"
)

// Builder converts detection results into template contexts.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	for p, caps := range options.Caps {
		opts.Caps[p] = caps
	}
	return &Builder{opts: opts}
}

// Build exposes the facts of detection allowed at profile p. Facts shown at a
// lower profile are always shown, unchanged, at a higher one.
func (b *Builder) Build(detection detect.Result, p profile.Profile) (Context, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("model builder: %w: %q", profile.ErrUnknownProfile, string(p))
	}

	name := projectName(detection)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidDetection)
	}

	standard := p.Includes(profile.Standard)
	full := p.Includes(profile.Full)
	caps := b.opts.Caps[p]

	ctx := Context{
		KeyProfile:      string(p),
		KeyShowStandard: standard,
		KeyShowFull:     full,
		KeyProjectName:  name,
	}

	description := cleanText(detection.Project.Description)
	ctx[KeyProjectDescription] = description
	ctx[KeyHasDescription] = description != ""

	ctx[KeyOverview] = overviewRows(detection, name, standard, full)

	frameworks := namedFrameworks(detection.Stack.Frameworks)
	stack := stackRows(detection.Stack, frameworks, standard)
	ctx[KeyStack] = stack
	ctx[KeyHasStack] = len(stack) > 0

	commands := commandRows(detection.Commands, standard)
	ctx[KeyCommands] = commands
	ctx[KeyHasCommands] = len(commands) > 0

	var scripts []Row
	if full {
		scripts = b.scriptRows(detection.Scripts)
	}
	ctx[KeyScripts] = scripts
	ctx[KeyHasScripts] = len(scripts) > 0

	directories := capList(directoryRows(detection.Structure.Directories), caps.Directories)
	ctx[KeyDirectories] = directories
	ctx[KeyHasDirectories] = len(directories) > 0

	var entryPoints []string
	if standard {
		entryPoints = cleanValues(detection.Structure.EntryPoints)
	}
	ctx[KeyEntryPoints] = entryPoints
	ctx[KeyHasEntryPoints] = len(entryPoints) > 0

	testing := testingRows(detection.Testing, standard, full)
	ctx[KeyTesting] = testing
	ctx[KeyHasTesting] = len(testing) > 0

	var conventions []Row
	var notes []string
	if standard {
		conventions = conventionRows(detection.Conventions)
		notes = capList(cleanTexts(detection.Conventions.Notes), caps.Notes)
	}
	ctx[KeyConventions] = conventions
	ctx[KeyConventionNotes] = notes
	ctx[KeyHasConventions] = len(conventions) > 0 || len(notes) > 0

	var ciRows []Row
	var workflows []string
	if standard {
		ciRows = appendRow(ciRows, "Provider", cleanText(detection.CI.Provider))
		workflows = cleanValues(detection.CI.Workflows)
	}
	ctx[KeyCI] = ciRows
	ctx[KeyCIWorkflows] = workflows
	ctx[KeyHasCIWorkflows] = len(workflows) > 0
	ctx[KeyHasCI] = len(ciRows) > 0 || len(workflows) > 0

	var envVars []string
	if standard {
		envVars = capList(cleanValues(detection.Env.Variables), caps.EnvVars)
	}
	ctx[KeyEnvVars] = envVars
	ctx[KeyHasEnv] = len(envVars) > 0

	var workspaces []Row
	if standard {
		workspaces = workspaceRows(detection.Workspaces)
	}
	ctx[KeyWorkspaces] = workspaces
	ctx[KeyHasWorkspaces] = len(workspaces) > 0

	var git []Row
	if full {
		git = appendRow(git, "Default branch", cleanValue(detection.Git.DefaultBranch))
		git = appendRow(git, "Commit convention", cleanText(detection.Git.CommitConvention))
	}
	ctx[KeyGit] = git
	ctx[KeyHasGit] = len(git) > 0

	var apiTitle string
	var operations []Operation
	if full && detection.API != nil {
		apiTitle, operations = apiSurface(detection.API.Document)
	}
	ctx[KeyAPITitle] = apiTitle
	ctx[KeyAPIOperations] = operations
	ctx[KeyHasAPI] = len(operations) > 0

	ctx[KeyCapabilities] = capabilities(detection, frameworks)
	return ctx, nil
}

func projectName(detection detect.Result) string {
	if name := cleanText(detection.Project.Name); name != "" {
		return name
	}
	root := strings.TrimRight(cleanValue(detection.RootPath), "/")
	if root == "" {
		return ""
	}
	return cleanValue(path.Base(root))
}

func appendRow(rows []Row, label, value string) []Row {
	if value == "" {
		return rows
	}
	return append(rows, row(label, value))
}

func appendCommand(rows []Row, label, run string) []Row {
	if run = cleanValue(run); run == "" {
		return rows
	}
	return append(rows, command(label, run))
}

func overviewRows(detection detect.Result, name string, standard, full bool) []Row {
	rows := []Row{row("Name", name)}
	rows = appendRow(rows, "Type", cleanText(detection.Project.Type))
	rows = appendRow(rows, "Languages", strings.Join(cleanTexts(detection.Languages), ", "))
	if standard {
		rows = appendRow(rows, "Version", cleanValue(detection.Project.Version))
		rows = appendRow(rows, "License", cleanValue(detection.Project.License))
	}
	if full {
		rows = appendRow(rows, "Repository", cleanValue(detection.Project.Repository))
	}
	return rows
}

type framework struct {
	name     string
	category string
}

func namedFrameworks(frameworks []detect.Framework) []framework {
	var out []framework
	for _, fw := range frameworks {
		name := cleanText(fw.Name)
		if name == "" {
			continue
		}
		out = append(out, framework{name: name, category: strings.ToLower(cleanValue(fw.Category))})
	}
	return out
}

func stackRows(stack detect.Stack, frameworks []framework, standard bool) []Row {
	names := make([]string, 0, len(frameworks))
	for _, fw := range frameworks {
		names = append(names, fw.name)
	}

	var rows []Row
	rows = appendRow(rows, "Frameworks", strings.Join(names, ", "))
	rows = appendRow(rows, "Package manager", cleanValue(stack.PackageManager))
	if standard {
		runtime := cleanText(stack.Runtime)
		if version := cleanValue(stack.RuntimeVersion); runtime != "" && version != "" {
			runtime += " " + version
		}
		rows = appendRow(rows, "Runtime", runtime)
		rows = appendRow(rows, "Build tool", cleanText(stack.BuildTool))
	}
	return rows
}

func commandRows(commands detect.Commands, standard bool) []Row {
	var rows []Row
	rows = appendCommand(rows, "Install", commands.Install)
	rows = appendCommand(rows, "Dev", commands.Dev)
	rows = appendCommand(rows, "Build", commands.Build)
	rows = appendCommand(rows, "Test", commands.Test)
	if standard {
		rows = appendCommand(rows, "Start", commands.Start)
		rows = appendCommand(rows, "Lint", commands.Lint)
		rows = appendCommand(rows, "Typecheck", commands.Typecheck)
		rows = appendCommand(rows, "Format", commands.Format)
	}
	return rows
}

func (b *Builder) scriptRows(scripts map[string]string) []Row {
	keys := make([]string, 0, len(scripts))
	for key := range scripts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows []Row
	for _, key := range keys {
		label := b.opts.Labeler(cleanValue(key))
		if label == "" {
			continue
		}
		rows = appendCommand(rows, label, scripts[key])
	}
	return rows
}

func directoryRows(directories []detect.Directory) []Row {
	var rows []Row
	for _, dir := range directories {
		p := strings.Trim(cleanValue(dir.Path), "/")
		if p == "" {
			continue
		}
		rows = append(rows, Row{"path": p, "purpose": cleanText(dir.Purpose)})
	}
	return rows
}

func testingRows(testing detect.Testing, standard, full bool) []Row {
	var rows []Row
	rows = appendRow(rows, "Framework", cleanText(testing.Framework))
	if standard {
		rows = appendRow(rows, "Directory", cleanValue(testing.Directory))
		rows = appendRow(rows, "File pattern", cleanValue(testing.Pattern))
	}
	if full {
		if coverage := cleanValue(testing.Coverage); coverage != "" {
			rows = append(rows, row("Coverage", "`"+coverage+"`"))
		}
	}
	return rows
}

func conventionRows(conventions detect.Conventions) []Row {
	var rows []Row
	rows = appendRow(rows, "Formatter", cleanText(conventions.Formatter))
	rows = appendRow(rows, "Linter", cleanText(conventions.Linter))
	rows = appendRow(rows, "Naming", cleanText(conventions.Naming))
	return rows
}

func workspaceRows(workspaces []detect.Workspace) []Row {
	var rows []Row
	for _, ws := range workspaces {
		p := cleanValue(ws.Path)
		if p == "" {
			continue
		}
		name := cleanText(ws.Name)
		if name == "" {
			name = p
		}
		rows = append(rows, Row{"name": name, "path": p, "description": cleanText(ws.Description)})
	}
	return rows
}

func capabilities(detection detect.Result, frameworks []framework) map[string]bool {
	caps := map[string]bool{
		CapabilityMonorepo: len(workspaceRows(detection.Workspaces)) > 0,
		CapabilityFrontend: false,
		CapabilityBackend:  false,
		CapabilityLibrary:  strings.EqualFold(cleanValue(detection.Project.Type), detect.ProjectTypeLibrary),
	}
	for _, fw := range frameworks {
		switch fw.category {
		case detect.CategoryFrontend:
			caps[CapabilityFrontend] = true
		case detect.CategoryBackend:
			caps[CapabilityBackend] = true
		}
	}
	if api := detection.API; api != nil && (strings.TrimSpace(api.Document) != "" || cleanValue(api.Path) != "") {
		caps[CapabilityBackend] = true
	}
	return caps
}
