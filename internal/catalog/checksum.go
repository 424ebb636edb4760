package catalog

import (
	"crypto/sha256"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Checksum calculates the SHA-256 digest of the catalog source at path.
func Checksum(path string) ([32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, errors.Wrapf(ErrResourceUnavailable, "failed to open file \"%s\": %v", path, err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return [32]byte{}, errors.Wrapf(ErrResourceUnavailable, "failed to read file \"%s\": %v", path, err)
	}

	var sum [32]byte
	copy(sum[:], hash.Sum(nil))
	return sum, nil
}
