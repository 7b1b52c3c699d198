package personalize

import (
	"path/filepath"
	"strings"

	"github.com/arcframework/arc/internal/plugin/model"
	"github.com/arcframework/arc/internal/plugin/naming"
)

// Target path tokens, expanded against the request.
const (
	tokenSlug  = "{slug}"
	tokenEntry = "{entry}"
)

// Values feeds replacement producers.
type Values struct {
	// Request holds the collected answers.
	Request model.Request
	// PluginDir is the absolute path of the generated plugin directory.
	PluginDir string
}

// Rule is one literal substitution applied to one file.
type Rule struct {
	// Target is the file path relative to the working directory. It may contain
	// {slug} and {entry} tokens and always uses forward slashes.
	Target string
	// Placeholder is the literal boilerplate text to replace.
	Placeholder string
	// Replacement produces the text substituted for Placeholder.
	Replacement func(Values) string
}

// Substitution is a Rule resolved for a concrete request.
type Substitution struct {
	Placeholder string
	Replacement string
	Path        string
}

const (
	entryTarget     = tokenSlug + "/" + tokenEntry
	classTarget     = tokenSlug + "/" + model.PluginClassFile
	manifestTarget  = tokenSlug + "/" + model.ManifestFile
	envTarget       = tokenSlug + "/" + model.EnvFile
	bootstrapTarget = tokenSlug + "/" + model.TestBootstrapFile
	testCaseTarget  = tokenSlug + "/" + model.TestCaseFile
	cliTarget       = tokenSlug + "/" + model.CLIEntryFile
)

func name(v Values) string      { return v.Request.Name }
func namespace(v Values) string { return v.Request.Namespace }
func slug(v Values) string      { return v.Request.Slug }
func entry(v Values) string     { return v.Request.EntryFilename() }
func pluginDir(v Values) string { return v.PluginDir }

func prefixed(prefix string, field func(model.Request) string) func(Values) string {
	return func(v Values) string { return prefix + field(v.Request) }
}

func escapedNamespace(v Values) string { return naming.EscapeNamespace(v.Request.Namespace) }

func composerDescription(v Values) string {
	return `"description": "` + v.Request.Description + `",`
}

func composerAuthor(v Values) string {
	return `"name": "` + v.Request.Author + `",`
}

// DefaultRules is the ordered rule set applied to a freshly unpacked boilerplate.
var DefaultRules = []Rule{
	{Target: entryTarget, Placeholder: model.BoilerplateName, Replacement: name},
	{Target: entryTarget, Placeholder: model.BoilerplateURI, Replacement: prefixed("Plugin URI: ", func(r model.Request) string { return r.URI })},
	{Target: entryTarget, Placeholder: model.BoilerplateDescription, Replacement: prefixed("Description: ", func(r model.Request) string { return r.Description })},
	{Target: entryTarget, Placeholder: model.BoilerplateAuthor, Replacement: prefixed("Author: ", func(r model.Request) string { return r.Author })},
	{Target: entryTarget, Placeholder: model.BoilerplateAuthorURI, Replacement: prefixed("Author URI: ", func(r model.Request) string { return r.AuthorURI })},
	{Target: entryTarget, Placeholder: model.BoilerplateNamespace, Replacement: namespace},

	{Target: classTarget, Placeholder: model.BoilerplateNamespace, Replacement: namespace},

	{Target: manifestTarget, Placeholder: model.BoilerplateSlug, Replacement: slug},
	{Target: manifestTarget, Placeholder: model.BoilerplateComposerDescription, Replacement: composerDescription},
	{Target: manifestTarget, Placeholder: model.BoilerplateComposerAuthor, Replacement: composerAuthor},
	{Target: manifestTarget, Placeholder: naming.EscapeNamespace(model.BoilerplateNamespace), Replacement: escapedNamespace},

	{Target: envTarget, Placeholder: model.BoilerplateDirectory, Replacement: pluginDir},
	{Target: envTarget, Placeholder: model.BoilerplateFilename, Replacement: entry},

	{Target: bootstrapTarget, Placeholder: model.BoilerplateFilename, Replacement: entry},

	{Target: testCaseTarget, Placeholder: model.BoilerplateNamespace, Replacement: namespace},

	{Target: cliTarget, Placeholder: model.BoilerplateNamespace, Replacement: namespace},
	{Target: cliTarget, Placeholder: model.BoilerplateFilename, Replacement: entry},
}

// Plan resolves rules against v, keeping their order. It performs no I/O.
func Plan(rules []Rule, v Values) []Substitution {
	paths := strings.NewReplacer(tokenSlug, v.Request.Slug, tokenEntry, v.Request.EntryFilename())

	subs := make([]Substitution, 0, len(rules))
	for _, r := range rules {
		subs = append(subs, Substitution{
			Placeholder: r.Placeholder,
			Replacement: r.Replacement(v),
			Path:        filepath.FromSlash(paths.Replace(r.Target)),
		})
	}
	return subs
}
