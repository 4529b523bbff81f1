package crypto

import (
	cromerr "github.com/sjfleming/cromwell/errors"
)

// HashKind selects the digest convention of a specific storage provider.
// The set is closed: callers match whatever convention the remote side
// reports, and nothing else is supported.
type HashKind int

const (
	HashKindCRC32C HashKind = iota
	HashKindGCSCRC32C
	HashKindETag
	HashKindMD5
	HashKindSHA256
)

var HashKinds = []HashKind{
	HashKindCRC32C,
	HashKindGCSCRC32C,
	HashKindETag,
	HashKindMD5,
	HashKindSHA256,
}

func (k HashKind) String() string {
	switch k {
	case HashKindCRC32C:
		return "crc32c"
	case HashKindGCSCRC32C:
		return "gcs_crc32c"
	case HashKindETag:
		return "etag"
	case HashKindMD5:
		return "md5"
	case HashKindSHA256:
		return "sha256"
	default:
		return "unknown"
	}
}

func ParseHashKind(name string) (HashKind, error) {
	switch name {
	case "crc32c":
		return HashKindCRC32C, nil
	case "gcs_crc32c":
		return HashKindGCSCRC32C, nil
	case "etag":
		return HashKindETag, nil
	case "md5":
		return HashKindMD5, nil
	case "sha256":
		return HashKindSHA256, nil
	default:
		return 0, cromerr.Errorf("Unrecognized hash kind: %s", name)
	}
}
