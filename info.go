package templates

// TemplatePaths holds the path of every category directory.
type TemplatePaths struct {
	Core   string `json:"core" yaml:"core"`
	AI     string `json:"ai" yaml:"ai"`
	Stacks string `json:"stacks" yaml:"stacks"`
	Libs   string `json:"libs" yaml:"libs"`
	GitHub string `json:"github" yaml:"github"`
}

// Get returns the path stored for c, or "" for an unknown category.
func (p TemplatePaths) Get(c Category) string {
	switch c {
	case Core:
		return p.Core
	case AI:
		return p.AI
	case Stacks:
		return p.Stacks
	case Libs:
		return p.Libs
	case GitHub:
		return p.GitHub
	}
	return ""
}

// Info describes the template bundle.
type Info struct {
	Version     string        `json:"version" yaml:"version"`
	Path        string        `json:"path" yaml:"path"`
	Templates   TemplatePaths `json:"templates" yaml:"templates"`
	Description string        `json:"description" yaml:"description"`
}

// Paths returns the category paths without reading the manifest.
func (r *Registry) Paths() TemplatePaths {
	return TemplatePaths{
		Core:   r.CoreTemplates(),
		AI:     r.AITemplates(),
		Stacks: r.StacksTemplates(),
		Libs:   r.LibsTemplates(),
		GitHub: r.GitHubTemplates(),
	}
}

// Info reads the manifest and returns the bundle description.
// It fails with a *ManifestReadError when the manifest is missing or malformed;
// no placeholder version is ever substituted.
func (r *Registry) Info() (Info, error) {
	m, err := ReadManifest(r.ManifestPath())
	if err != nil {
		return Info{}, err
	}
	return Info{
		Version:     m.Version,
		Path:        r.TemplatesPath(),
		Templates:   r.Paths(),
		Description: Description,
	}, nil
}
