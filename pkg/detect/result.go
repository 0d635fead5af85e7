// Package detect holds the project detection summary consumed by the render
// pipeline. Detection itself (walking a repository, reading manifests) happens
// elsewhere; this package only defines the value object and decodes it from
// JSON or YAML documents produced by a detector.
package detect

// Result is the detector output. The render pipeline reads it and never
// mutates it.
type Result struct {
	RootPath    string            `json:"rootPath,omitempty" yaml:"rootPath,omitempty"`
	Project     Project           `json:"project" yaml:"project"`
	Languages   []string          `json:"languages,omitempty" yaml:"languages,omitempty"`
	Stack       Stack             `json:"stack" yaml:"stack"`
	Commands    Commands          `json:"commands" yaml:"commands"`
	Scripts     map[string]string `json:"scripts,omitempty" yaml:"scripts,omitempty"`
	Structure   Structure         `json:"structure" yaml:"structure"`
	Testing     Testing           `json:"testing" yaml:"testing"`
	Conventions Conventions       `json:"conventions" yaml:"conventions"`
	CI          CI                `json:"ci" yaml:"ci"`
	Env         Env               `json:"env" yaml:"env"`
	Git         Git               `json:"git" yaml:"git"`
	Workspaces  []Workspace       `json:"workspaces,omitempty" yaml:"workspaces,omitempty"`
	API         *API              `json:"api,omitempty" yaml:"api,omitempty"`
}

// ProjectTypeLibrary marks packages meant to be imported by other code.
const ProjectTypeLibrary = "library"

// Project carries identity facts. Type is a free-form kind such as
// "application", "library" or "cli".
type Project struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	License     string `json:"license,omitempty" yaml:"license,omitempty"`
	Repository  string `json:"repository,omitempty" yaml:"repository,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Framework categories recognised when selecting a template.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
)

// Framework is a detected framework or major library.
type Framework struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

type Stack struct {
	Runtime        string      `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	RuntimeVersion string      `json:"runtimeVersion,omitempty" yaml:"runtimeVersion,omitempty"`
	PackageManager string      `json:"packageManager,omitempty" yaml:"packageManager,omitempty"`
	BuildTool      string      `json:"buildTool,omitempty" yaml:"buildTool,omitempty"`
	Frameworks     []Framework `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
}

// Commands lists the well-known project commands. Empty fields were not
// detected.
type Commands struct {
	Install   string `json:"install,omitempty" yaml:"install,omitempty"`
	Dev       string `json:"dev,omitempty" yaml:"dev,omitempty"`
	Build     string `json:"build,omitempty" yaml:"build,omitempty"`
	Start     string `json:"start,omitempty" yaml:"start,omitempty"`
	Test      string `json:"test,omitempty" yaml:"test,omitempty"`
	Lint      string `json:"lint,omitempty" yaml:"lint,omitempty"`
	Typecheck string `json:"typecheck,omitempty" yaml:"typecheck,omitempty"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`
}

type Directory struct {
	Path    string `json:"path" yaml:"path"`
	Purpose string `json:"purpose,omitempty" yaml:"purpose,omitempty"`
}

type Structure struct {
	Directories []Directory `json:"directories,omitempty" yaml:"directories,omitempty"`
	EntryPoints []string    `json:"entryPoints,omitempty" yaml:"entryPoints,omitempty"`
}

type Testing struct {
	Framework string `json:"framework,omitempty" yaml:"framework,omitempty"`
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Coverage  string `json:"coverage,omitempty" yaml:"coverage,omitempty"`
}

type Conventions struct {
	Formatter string   `json:"formatter,omitempty" yaml:"formatter,omitempty"`
	Linter    string   `json:"linter,omitempty" yaml:"linter,omitempty"`
	Naming    string   `json:"naming,omitempty" yaml:"naming,omitempty"`
	Notes     []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type CI struct {
	Provider  string   `json:"provider,omitempty" yaml:"provider,omitempty"`
	Workflows []string `json:"workflows,omitempty" yaml:"workflows,omitempty"`
}

// Env lists environment variable names. Values are never captured.
type Env struct {
	Variables []string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

type Git struct {
	DefaultBranch    string `json:"defaultBranch,omitempty" yaml:"defaultBranch,omitempty"`
	CommitConvention string `json:"commitConvention,omitempty" yaml:"commitConvention,omitempty"`
}

// Workspace is one package of a monorepo.
type Workspace struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// API points at an HTTP API description. Document holds the raw OpenAPI text
// captured by the detector so the pipeline never reads files itself.
type API struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Document string `json:"document,omitempty" yaml:"document,omitempty"`
}
