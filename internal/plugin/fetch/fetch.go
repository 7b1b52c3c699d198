// Package fetch downloads boilerplate release archives.
package fetch

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arcframework/arc/internal/debug"
	"github.com/arcframework/arc/internal/plugin/model"
)

// DefaultBaseURL is the archive location of the boilerplate repository.
const DefaultBaseURL = "https://github.com/ArcFramework/plugin/archive"

// TempArchivePrefix prefixes temporary archive file names.
const TempArchivePrefix = "arc_"

// Fetcher downloads boilerplate archives over HTTP.
type Fetcher struct {
	// HTTPClient is the client used for the download.
	HTTPClient *http.Client
	// BaseURL is the archive location; the archive name is appended to it.
	BaseURL string
}

// NewFetcher creates a Fetcher. A zero timeout disables the client timeout.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    baseURL,
	}
}

// URL returns the archive URL for a channel.
func (f *Fetcher) URL(ch model.Channel) string {
	return strings.TrimRight(f.BaseURL, "/") + "/" + ch.ArchiveName()
}

// Fetch downloads the channel's archive into a new temporary file in dir.
// The request is attempted once.
func (f *Fetcher) Fetch(ctx context.Context, ch model.Channel, dir string) (*model.Archive, error) {
	url := f.URL(ch)
	debug.DebugFields("[fetch] downloading archive", zap.String("url", url), zap.String("dir", dir))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewFetchError(url, err)
	}

	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewFetchError(url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Continue to download
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewNotFoundError(url, resp.StatusCode)
	default:
		return nil, NewStatusError(url, resp.StatusCode)
	}

	path := filepath.Join(dir, TempArchiveName())
	out, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, NewWriteError(url, err)
	}

	n, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, NewWriteError(url, err)
	}

	debug.DebugFields("[fetch] archive saved", zap.String("path", path), zap.Int64("bytes", n))

	return &model.Archive{
		Path:    path,
		Name:    ch.ArchiveName(),
		Channel: ch,
	}, nil
}

// TempArchiveName returns a collision resistant archive file name:
// the md5 of the current time and a random UUID.
func TempArchiveName() string {
	seed := strconv.FormatInt(time.Now().UnixNano(), 10) + uuid.NewString()
	sum := md5.Sum([]byte(seed))
	return TempArchivePrefix + hex.EncodeToString(sum[:]) + ".zip"
}
