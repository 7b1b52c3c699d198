package model

import (
	"fmt"
	"strings"
)

// Channel selects which boilerplate release archive is fetched.
type Channel string

const (
	// ChannelStable is the released boilerplate (master branch archive).
	ChannelStable Channel = "stable"
	// ChannelDev is the latest development boilerplate (develop branch archive).
	ChannelDev Channel = "dev"
)

// ParseChannel converts a channel name to a Channel.
// Empty input resolves to ChannelStable.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ChannelStable):
		return ChannelStable, nil
	case string(ChannelDev):
		return ChannelDev, nil
	default:
		return "", fmt.Errorf("unknown release channel %q (expected %q or %q)", s, ChannelStable, ChannelDev)
	}
}

// branch returns the boilerplate branch backing the channel.
func (c Channel) branch() string {
	if c == ChannelDev {
		return "develop"
	}
	return "master"
}

// ArchiveName returns the remote archive file name for the channel.
func (c Channel) ArchiveName() string {
	return c.branch() + ".zip"
}

// ArchiveDirectory returns the top-level directory the archive extracts to.
func (c Channel) ArchiveDirectory() string {
	return BoilerplateRepo + "-" + c.branch()
}

// String returns the channel name.
func (c Channel) String() string {
	if c == "" {
		return string(ChannelStable)
	}
	return string(c)
}

// Request holds the answers collected for a new plugin.
// It is built once by the prompt stage and passed by value to every later stage.
type Request struct {
	// Name is the human readable plugin name.
	Name string
	// Slug is the directory and package name of the plugin.
	Slug string
	// Namespace is the root code namespace, segments separated by a backslash.
	Namespace string
	// URI is the plugin homepage (optional).
	URI string
	// Description is a one line description (optional).
	Description string
	// Author is the author name (optional).
	Author string
	// AuthorURI is the author homepage (optional).
	AuthorURI string
}

// EntryFilename returns the file name the boilerplate entry file is renamed to.
func (r Request) EntryFilename() string {
	return r.Slug + EntryExtension
}

// Archive is a downloaded boilerplate archive waiting to be extracted.
type Archive struct {
	// Path is the local temporary file holding the archive.
	Path string
	// Name is the remote archive name (e.g. "master.zip").
	Name string
	// Channel is the channel the archive was resolved from.
	Channel Channel
}

// Directory returns the top-level directory the archive extracts to.
func (a Archive) Directory() string {
	return a.Channel.ArchiveDirectory()
}
