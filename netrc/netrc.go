// Package netrc resolves basic-auth credentials for download URLs from the
// user's ~/.netrc file.
package netrc

import (
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/cartolab/mapstrap/log"

	homedir "github.com/mitchellh/go-homedir"
)

// BasicAuth holds the credentials of a single netrc machine entry.
type BasicAuth struct {
	User     string
	Password string
}

var machines map[string]BasicAuth

func init() {
	machines = parseUserNetrc()
}

func parseUserNetrc() map[string]BasicAuth {
	home, err := homedir.Dir()
	if err != nil {
		log.Warning("Unable to find the home directory. netrc not parsed.\n")
		return nil
	}

	netrcPath := path.Join(home, ".netrc")
	contents, err := os.ReadFile(netrcPath)
	if err != nil {
		return nil
	}
	return parse(string(contents))
}

func parse(contents string) map[string]BasicAuth {
	result := map[string]BasicAuth{}
	currentMachine := ""

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)

		if value, ok := cutKeyword(line, "machine"); ok {
			currentMachine = value
		} else if value, ok := cutKeyword(line, "login"); ok && currentMachine != "" {
			auth := result[currentMachine]
			auth.User = value
			result[currentMachine] = auth
		} else if value, ok := cutKeyword(line, "password"); ok && currentMachine != "" {
			auth := result[currentMachine]
			auth.Password = value
			result[currentMachine] = auth
		}
	}
	return result
}

func cutKeyword(line, keyword string) (string, bool) {
	if !strings.HasPrefix(line, keyword) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, keyword)), true
}

// GetAuthForURL returns the credentials for the host of `urlString`, or nil
// if the netrc file has no entry for it.
func GetAuthForURL(urlString string) *BasicAuth {
	parsed, err := url.Parse(urlString)
	if err != nil {
		log.Warning("Invalid URL %q.\n", urlString)
		return nil
	}

	if auth, ok := machines[parsed.Hostname()]; ok {
		return &auth
	}
	return nil
}
