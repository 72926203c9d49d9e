package config

// Manifest is the structure of replica.yaml.
type Manifest struct {
	Version   string            `yaml:"version" validate:"omitempty,oneof=1"`
	Solution  string            `yaml:"solution" validate:"required,identifier"`
	Options   map[string]string `yaml:"options"`
	Analyzers []string          `yaml:"analyzers" validate:"dive,required"`
	Projects  []ProjectDTO      `yaml:"projects" validate:"required,min=1,unique=ID,dive"`
}

// ProjectDTO is one project entry of the manifest.
type ProjectDTO struct {
	ID        string `yaml:"id" validate:"required,identifier"`
	Name      string `yaml:"name"`
	Language  string `yaml:"language" validate:"omitempty,oneof=C# VB F#"`
	Directory string `yaml:"directory" validate:"required"`
	Assembly  string `yaml:"assembly"`

	// Include globs select the documents of the project, relative to Directory.
	// Globs without a slash match file names at any depth.
	Include    []string `yaml:"include" validate:"dive,required"`
	Additional []string `yaml:"additional" validate:"dive,required"`
	Config     []string `yaml:"config" validate:"dive,required"`

	Compilation CompilationDTO `yaml:"compilation"`
	Parse       ParseDTO       `yaml:"parse"`

	References []string `yaml:"references" validate:"dive,required"`
	Metadata   []string `yaml:"metadata" validate:"dive,required"`
	Analyzers  []string `yaml:"analyzers" validate:"dive,required"`
}

// CompilationDTO holds the compilation options of a project.
type CompilationDTO struct {
	OutputKind  string `yaml:"output_kind" validate:"omitempty,oneof=library exe winexe module"`
	Platform    string `yaml:"platform"`
	Optimize    bool   `yaml:"optimize"`
	AllowUnsafe bool   `yaml:"allow_unsafe"`
	Nullable    string `yaml:"nullable" validate:"omitempty,oneof=enable disable warnings annotations"`
}

// ParseDTO holds the parse options of a project.
type ParseDTO struct {
	LanguageVersion   string   `yaml:"language_version"`
	DocumentationMode string   `yaml:"documentation_mode" validate:"omitempty,oneof=none parse diagnose"`
	Symbols           []string `yaml:"symbols" validate:"dive,identifier"`
}
