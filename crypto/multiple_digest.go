package crypto

import (
	"strings"

	cromerr "github.com/sjfleming/cromwell/errors"
)

// MultipleDigest holds digests of distinct kinds for the same content,
// for providers that report more than one checksum per object.
type MultipleDigest struct {
	digests []Digest
}

func NewMultipleDigest(digests ...Digest) MultipleDigest {
	return MultipleDigest{digests: digests}
}

func (m MultipleDigest) Digests() []Digest {
	return m.digests
}

// Verify checks actual against the held digest of the same kind.
func (m MultipleDigest) Verify(actual Digest) error {
	for _, candidate := range m.digests {
		if candidate.Kind() == actual.Kind() {
			return candidate.Verify(actual)
		}
	}

	return cromerr.Errorf("No digest found that matches %s", actual.Kind())
}

// ParseMultipleDigestString parses a semicolon-joined list of digest
// strings, e.g. "crc32c:c99465aa;md5:5eb63bbbe01eeed093cb22bb8f5acdc3".
func ParseMultipleDigestString(digests string) (MultipleDigest, error) {
	pieces := strings.Split(digests, ";")

	parsed := make([]Digest, 0, len(pieces))
	for _, piece := range pieces {
		digest, err := ParseDigestString(piece)
		if err != nil {
			return MultipleDigest{}, cromerr.WrapErrorf(err, "Parsing digest list '%s'", digests)
		}
		parsed = append(parsed, digest)
	}

	return NewMultipleDigest(parsed...), nil
}
