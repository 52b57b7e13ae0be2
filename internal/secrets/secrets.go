// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text
// files. Each file holds one secret: the filename is the key name and
// the file contents (trimmed) are the value.
//
// Supported key files: ncbi-api-key, contact-email.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key file names recognized under the secrets directory.
const (
	KeyAPIKey = "ncbi-api-key"
	KeyEmail  = "contact-email"
)

var knownKeys = []string{KeyAPIKey, KeyEmail}

// Load reads the known key files in dir and returns a map of key name to
// trimmed contents. Missing files and a missing directory are not
// errors; absent or empty keys simply stay out of the map. An unreadable
// file produces a warning on stderr and is skipped.
func Load(dir string) map[string]string {
	secrets := make(map[string]string)
	for _, name := range knownKeys {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			}
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets
}
