package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// NCBI requires a contact email on every E-utilities request. It lives in a
// separate INI file so the same file can be shared between tools.
var (
	ErrContactConfigMissing = errors.New("contact configuration file not found")
	ErrContactEmailMissing  = errors.New("contact email not found in configuration")
)

const contactRemediation = "please create a '%s' file with the following content:\n" +
	"[NCBI]\n" +
	"email = your_email@example.com"

// ReadContactEmail loads the contact email from the [NCBI] section of the
// INI file at path.
func ReadContactEmail(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf(
			"%w: %s; "+contactRemediation,
			ErrContactConfigMissing, path, path,
		)
	}

	file, err := ini.Load(path)
	if err != nil {
		return "", fmt.Errorf("parsing contact configuration %s: %w", path, err)
	}

	section := file.Section("NCBI")
	if !section.HasKey("email") || section.Key("email").String() == "" {
		return "", fmt.Errorf(
			"%w: the 'email' key is missing from the 'NCBI' section of %s; "+
				contactRemediation,
			ErrContactEmailMissing, path, path,
		)
	}

	return section.Key("email").String(), nil
}
