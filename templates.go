package templates

import (
	"fmt"
	"os"
	"strings"
)

// Category is one of the fixed template groupings shipped in the bundle.
// Its value doubles as the subdirectory name under the templates root.
type Category string

const (
	Core   Category = "core"
	AI     Category = "ai"
	Stacks Category = "stacks"
	Libs   Category = "libs"
	GitHub Category = "github"
)

// DefaultManifestName is the manifest file looked up under the templates root.
const DefaultManifestName = "package.json"

// Description identifies the bundle in Info.
const Description = "Official PAPER-CODE documentation templates"

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Core, AI, Stacks, Libs, GitHub}
}

// ParseCategory maps a user-supplied name to a Category.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	switch c {
	case Core, AI, Stacks, Libs, GitHub:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Registry resolves template directories relative to a fixed root.
// The zero value is rooted at "" and yields relative paths.
type Registry struct {
	root         string
	manifestName string
}

// Option configures a Registry.
type Option func(*Registry)

// WithManifestName overrides the manifest file name (default package.json).
func WithManifestName(name string) Option {
	return func(r *Registry) {
		if name != "" {
			r.manifestName = name
		}
	}
}

// New returns a Registry rooted at root. The root is used verbatim.
func New(root string, opts ...Option) *Registry {
	r := &Registry{
		root:         root,
		manifestName: DefaultManifestName,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TemplatesPath returns the templates root.
func (r *Registry) TemplatesPath() string { return r.root }

// CoreTemplates returns the path of the core templates.
func (r *Registry) CoreTemplates() string { return r.CategoryPath(Core) }

// AITemplates returns the path of the AI assistant templates.
func (r *Registry) AITemplates() string { return r.CategoryPath(AI) }

// StacksTemplates returns the path of the tech stack templates.
func (r *Registry) StacksTemplates() string { return r.CategoryPath(Stacks) }

// LibsTemplates returns the path of the library templates.
func (r *Registry) LibsTemplates() string { return r.CategoryPath(Libs) }

// GitHubTemplates returns the path of the GitHub templates.
func (r *Registry) GitHubTemplates() string { return r.CategoryPath(GitHub) }

// CategoryPath returns root joined with the category's directory name.
func (r *Registry) CategoryPath(c Category) string { return join(r.root, string(c)) }

// ManifestPath returns the location of the package manifest.
func (r *Registry) ManifestPath() string {
	name := r.manifestName
	if name == "" {
		name = DefaultManifestName
	}
	return join(r.root, name)
}

// join concatenates without cleaning so the root keeps its exact spelling.
func join(root, name string) string {
	if root == "" {
		return name
	}
	if os.IsPathSeparator(root[len(root)-1]) {
		return root + name
	}
	return root + string(os.PathSeparator) + name
}
