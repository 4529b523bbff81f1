package crypto

import (
	"fmt"
	"strings"

	cromerr "github.com/sjfleming/cromwell/errors"
)

// Digest pairs a hash kind with its textual value, e.g. "md5:5eb6...".
type Digest struct {
	kind  HashKind
	value string
}

func NewDigest(kind HashKind, value string) Digest {
	return Digest{
		kind:  kind,
		value: value,
	}
}

func (d Digest) Kind() HashKind {
	return d.kind
}

func (d Digest) Value() string {
	return d.value
}

func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.kind, d.value)
}

func (d Digest) IsZero() bool {
	return d.value == ""
}

func (d Digest) Verify(actual Digest) error {
	if d.kind != actual.kind {
		return cromerr.Errorf("Expected %s digest but received %s", d.kind, actual.kind)
	} else if d.value != actual.value {
		return cromerr.Errorf(`Expected %s digest "%s" but received "%s"`, d.kind, d.value, actual.value)
	}

	return nil
}

func ParseDigestString(digest string) (Digest, error) {
	pieces := strings.SplitN(digest, ":", 2)

	if len(pieces) == 1 {
		// providers that report a bare value report an MD5 digest.
		// continue to support that behavior.
		pieces = []string{"md5", pieces[0]}
	}

	kind, err := ParseHashKind(pieces[0])
	if err != nil {
		return Digest{}, err
	}

	return NewDigest(kind, pieces[1]), nil
}
