package model

import "errors"

// ErrInvalidDetection reports a detection result that lacks the identity
// facts needed for a minimal context.
var ErrInvalidDetection = errors.New("model builder: invalid detection input")

// Context is the template context handed to the renderer. Values are strings,
// booleans, lists of Row/Command/Directory/Workspace/Operation maps, string
// lists, and the nested capability map.
type Context map[string]any

// Context keys shared by the builder, the selector and the templates.
const (
	KeyProfile            = "profile"
	KeyShowStandard       = "show_standard"
	KeyShowFull           = "show_full"
	KeyProjectName        = "project_name"
	KeyProjectDescription = "project_description"
	KeyHasDescription     = "has_description"
	KeyOverview           = "overview"
	KeyStack              = "stack"
	KeyHasStack           = "has_stack"
	KeyCommands           = "commands"
	KeyHasCommands        = "has_commands"
	KeyScripts            = "scripts"
	KeyHasScripts         = "has_scripts"
	KeyDirectories        = "directories"
	KeyHasDirectories     = "has_directories"
	KeyEntryPoints        = "entry_points"
	KeyHasEntryPoints     = "has_entry_points"
	KeyTesting            = "testing"
	KeyHasTesting         = "has_testing"
	KeyConventions        = "conventions"
	KeyConventionNotes    = "convention_notes"
	KeyHasConventions     = "has_conventions"
	KeyCI                 = "ci"
	KeyCIWorkflows        = "ci_workflows"
	KeyHasCI              = "has_ci"
	KeyHasCIWorkflows     = "has_ci_workflows"
	KeyEnvVars            = "env_vars"
	KeyHasEnv             = "has_env"
	KeyWorkspaces         = "workspaces"
	KeyHasWorkspaces      = "has_workspaces"
	KeyGit                = "git"
	KeyHasGit             = "has_git"
	KeyAPITitle           = "api_title"
	KeyAPIOperations      = "api_operations"
	KeyHasAPI             = "has_api"
	KeyCapabilities       = "capabilities"
)

// Capability names stored under KeyCapabilities.
const (
	CapabilityMonorepo = "monorepo"
	CapabilityFrontend = "frontend"
	CapabilityBackend  = "backend"
	CapabilityLibrary  = "library"
)

// Row is a labelled fact rendered as "- Label: value".
type Row = map[string]string

// Bool returns the boolean stored under key, false when absent.
func (c Context) Bool(key string) bool {
	v, _ := c[key].(bool)
	return v
}

// String returns the string stored under key, "" when absent.
func (c Context) String(key string) string {
	v, _ := c[key].(string)
	return v
}

// Capability reports a flag from the nested capability map.
func (c Context) Capability(name string) bool {
	caps, _ := c[KeyCapabilities].(map[string]bool)
	return caps[name]
}

func row(label, value string) Row {
	return Row{"label": label, "value": value}
}

func command(label, run string) Row {
	return Row{"label": label, "run": run}
}
