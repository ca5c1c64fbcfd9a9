// Package templates locates the bundled PAPER-CODE documentation templates.
//
// A Registry is rooted at the installation directory of the template bundle.
// It hands out the path of each template category (core, ai, stacks, libs,
// github) and reports the bundle's identity from the package manifest kept
// next to those directories:
//
//	reg := templates.New("/usr/share/paper-code/templates")
//	core := reg.CoreTemplates() // /usr/share/paper-code/templates/core
//	info, err := reg.Info()      // reads package.json for the version
//
// Path accessors never touch the filesystem and never fail. Callers that need
// to know whether a directory is actually there use Inspect.
package templates
