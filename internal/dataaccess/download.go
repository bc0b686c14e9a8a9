package dataaccess

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrUnexpectedStatus = errors.New("unexpected response status")

// Download writes the body of a GET on rawURL to w.
func (c *Client) Download(ctx context.Context, rawURL string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrapf(err, "invalid url %s", rawURL)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to fetch %s", rawURL)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrUnexpectedStatus, "%s: %s", rawURL, res.Status)
	}
	n, err := io.Copy(w, res.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", rawURL)
	}
	log.Debug().Str("url", rawURL).Int64("bytes", n).Msg("downloaded")
	return nil
}

// DownloadTemp saves rawURL to a uniquely named file in dir, or the system
// temp folder when dir is empty. The caller removes the file.
func (c *Client) DownloadTemp(ctx context.Context, rawURL, dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	name := "nescli-" + uuid.NewString() + extension(rawURL)

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}
	if err := c.Download(ctx, rawURL, f); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close %s", f.Name())
	}
	return f.Name(), nil
}

func extension(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return path.Ext(u.Path)
}
