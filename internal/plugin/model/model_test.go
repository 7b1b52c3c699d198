package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		input   string
		want    Channel
		wantErr bool
	}{
		{input: "", want: ChannelStable},
		{input: "stable", want: ChannelStable},
		{input: "dev", want: ChannelDev},
		{input: " DEV ", want: ChannelDev},
		{input: "nightly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChannel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChannel_Archive(t *testing.T) {
	assert.Equal(t, "master.zip", ChannelStable.ArchiveName())
	assert.Equal(t, "plugin-master", ChannelStable.ArchiveDirectory())
	assert.Equal(t, "develop.zip", ChannelDev.ArchiveName())
	assert.Equal(t, "plugin-develop", ChannelDev.ArchiveDirectory())

	var zero Channel
	assert.Equal(t, "master.zip", zero.ArchiveName())
	assert.Equal(t, "stable", zero.String())
}

func TestRequest_EntryFilename(t *testing.T) {
	r := Request{Slug: "test-plugin"}
	assert.Equal(t, "test-plugin.php", r.EntryFilename())
}

func TestArchive_Directory(t *testing.T) {
	a := Archive{Name: "develop.zip", Channel: ChannelDev}
	assert.Equal(t, "plugin-develop", a.Directory())
}
