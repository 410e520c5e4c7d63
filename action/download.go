package action

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/cartolab/mapstrap/log"
	"github.com/cartolab/mapstrap/netrc"
	"github.com/cartolab/mapstrap/util"
)

// MetadataSuffix is appended to a downloaded file's path to name the file
// recording its origin.
const MetadataSuffix = ".metadata"

// Metadata records where a downloaded file came from and its checksum.
type Metadata struct {
	URL    string
	Sha256 string
}

// Download fetches a file over HTTP and stores it at Path. The origin of the
// file (URL and sha256) is recorded next to it in a metadata file.
type Download struct {
	URL  string
	Path string
}

// Describe returns a short human-readable summary of the action.
func (a *Download) Describe() string {
	return fmt.Sprintf("download '%s'", a.URL)
}

// Run downloads the file.
func (a *Download) Run() error {
	log.Log("Downloading '%s'.\n", a.URL)
	log.Spinner.Start()
	defer log.Spinner.Stop()

	request, err := http.NewRequest(http.MethodGet, a.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to download archive: %s", err)
	}
	if auth := netrc.GetAuthForURL(a.URL); auth != nil {
		log.Debug("Using credentials from netrc for '%s'.\n", a.URL)
		request.SetBasicAuth(auth.User, auth.Password)
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to download archive: %s", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download archive: server returned status '%s'", response.Status)
	}

	util.MkdirAll(path.Dir(a.Path))
	file, err := os.Create(a.Path)
	if err != nil {
		return fmt.Errorf("failed to create file: %s", err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(io.MultiWriter(file, hasher), response.Body); err != nil {
		return fmt.Errorf("failed to write file: %s", err)
	}

	util.WriteYaml(a.Path+MetadataSuffix, Metadata{a.URL, hex.EncodeToString(hasher.Sum(nil))})
	return nil
}
