package control

import (
	"os"
	"strings"

	"github.com/matzehuels/dpkgview/pkg/errors"
)

// DefaultStatusPath is the location of the dpkg status database.
const DefaultStatusPath = "/var/lib/dpkg/status"

// Load reads the control file at path and returns its contents as text.
// Invalid UTF-8 sequences are replaced with U+FFFD.
//
// A missing or unreadable file is reported as an [errors.ErrCodeFileAccess]
// error wrapping the OS error. There is no partial-file fallback.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileAccess, err, "read control file %s", path)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}
