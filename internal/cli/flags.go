package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig  = "config"
	FlagForce   = "force"
	FlagNoANSI  = "no-ansi"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"
	FlagDev     = "dev"

	// Flag descriptions
	DescConfig = "Path to config file (default ~/.config/arc/config.yaml)"
	DescForce  = "Overwrite an existing config file"
	DescNoANSI = "Disable ANSI output"
	DescQuiet  = "Suppress non-error output"
	DescDebug  = "Enable debug logging"
	DescDev    = "Install the latest development release"
)

// Answer flags for the new command, one per prompt.
const (
	FlagName        = "name"
	FlagSlug        = "slug"
	FlagNamespace   = "namespace"
	FlagURI         = "uri"
	FlagDescription = "description"
	FlagAuthor      = "author"
	FlagAuthorURI   = "author-uri"
)
