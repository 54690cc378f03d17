// Package testroms fetches the public christopherpow/nes-test-roms
// corpus on demand, for golden-log tests that want real test ROMs
// rather than hand-built fixtures. Tests call RomsPath and skip (not
// fail) when network access or the corpus is unavailable.
package testroms

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

const archiveURL = "https://github.com/christopherpow/nes-test-roms/archive/refs/heads/master.zip"

func decompress(zipFile, dest string) error {
	r, err := zip.OpenReader(zipFile)
	if err != nil {
		return err
	}
	defer r.Close()

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, f := range r.File {
		f := f
		g.Go(func() error { return extractOne(f, dest) })
	}
	return g.Wait()
}

func extractOne(f *zip.File, dest string) error {
	name := strings.Replace(f.Name, "nes-test-roms-master", "nes-test-roms", 1)
	path := filepath.Join(dest, name)
	if !strings.HasPrefix(path, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("%s: illegal file path in archive", path)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(path, os.ModePerm)
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

func download(dest string) error {
	resp, err := http.Get(archiveURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tmp, err := os.CreateTemp("", "nes-test-roms-*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return err
	}
	tmp.Close()

	return decompress(tmp.Name(), dest)
}

// RomsPath returns the local directory holding the nes-test-roms corpus,
// downloading it once (cached across the test binary's run via
// sync.OnceValues) if not already present. On any failure it calls
// tb.Skip rather than tb.Fatal: the corpus is an optional golden-test
// fixture, not a build requirement.
func RomsPath(tb testing.TB) (string, bool) {
	path, err := fetchOnce()
	if err != nil {
		tb.Skipf("nes-test-roms unavailable: %s", err)
		return "", false
	}
	return path, true
}

var fetchOnce = sync.OnceValues(func() (string, error) {
	_, b, _, _ := runtime.Caller(0)
	dir := filepath.Dir(b)
	romsDir := filepath.Join(dir, "nes-test-roms")

	if _, err := os.Stat(romsDir); errors.Is(err, fs.ErrNotExist) {
		if err := download(dir); err != nil {
			return "", err
		}
	}
	return romsDir, nil
})
