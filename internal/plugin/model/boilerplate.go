package model

// Placeholder values shipped in the boilerplate plugin. Personalization
// replaces them verbatim.
const (
	// BoilerplateRepo is the boilerplate repository name; archives extract to "<repo>-<branch>".
	BoilerplateRepo = "plugin"
	// BoilerplateDirectory is the plugin path written into the boilerplate .env file.
	BoilerplateDirectory = "~/Code/plugins/vendor/plugin-name"
	// BoilerplateFilename is the entry file name in the boilerplate.
	BoilerplateFilename = "plugin-name.php"
	// BoilerplateName is the plugin name in the boilerplate entry file.
	BoilerplateName = "My Plugin Name"
	// BoilerplateNamespace is the root namespace used across the boilerplate.
	BoilerplateNamespace = `Vendor\PluginName`
	// BoilerplateSlug is the composer package name suffix.
	BoilerplateSlug = "plugin-name"
	// BoilerplateDescription is the description header of the entry file.
	BoilerplateDescription = "Description: A description of this plugin"
	// BoilerplateComposerDescription is the description line of composer.json.
	BoilerplateComposerDescription = `"description": "A description of this plugin",`
	// BoilerplateURI is the plugin URI header of the entry file.
	BoilerplateURI = "Plugin URI: http://plugin.com.au"
	// BoilerplateAuthor is the author header of the entry file.
	BoilerplateAuthor = "Author: My Name"
	// BoilerplateComposerAuthor is the author name line of composer.json.
	BoilerplateComposerAuthor = `"name": "My Name",`
	// BoilerplateAuthorURI is the author URI header of the entry file.
	BoilerplateAuthorURI = "Author URI: http://myname.com.au"
)

// Files inside a generated plugin, relative to the plugin directory.
const (
	// EntryExtension is the extension of the plugin entry file.
	EntryExtension = ".php"
	// PluginClassFile is the main plugin class.
	PluginClassFile = "app/Plugin.php"
	// ManifestFile is the composer manifest.
	ManifestFile = "composer.json"
	// EnvFile is the environment file.
	EnvFile = ".env"
	// TestBootstrapFile is the test suite bootstrap.
	TestBootstrapFile = "tests/bootstrap.php"
	// TestCaseFile is the base test case class.
	TestCaseFile = "tests/TestCase.php"
	// CLIEntryFile is the framework command line entry point.
	CLIEntryFile = "arc"
)
