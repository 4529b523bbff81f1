package crypto

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"
)

// etagChunkSize is the fixed part size used by multipart uploads whose
// composite ETag this package reproduces.
const etagChunkSize = 8 * 1024 * 1024

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// Compute returns the textual digest of content in the convention named
// by kind. It is pure and total: every (kind, content) pair, including
// empty content, yields a digest.
func Compute(kind HashKind, content []byte) string {
	switch kind {
	case HashKindCRC32C:
		// Rendered without zero padding; downstream comparisons are
		// textual, so the width must match what the provider reports.
		return strconv.FormatUint(uint64(crc32.Checksum(content, castagnoliTable)), 16)
	case HashKindGCSCRC32C:
		var frame [4]byte
		binary.BigEndian.PutUint32(frame[:], crc32.Checksum(content, castagnoliTable))
		return base64.StdEncoding.EncodeToString(frame[:])
	case HashKindETag:
		return computeETag(content)
	case HashKindMD5:
		return fmt.Sprintf("%x", md5.Sum(content))
	case HashKindSHA256:
		return fmt.Sprintf("%x", sha256.Sum256(content))
	default:
		panic(fmt.Sprintf("Unknown hash kind: %d", kind))
	}
}

// computeETag emulates the composite ETag an object store derives from a
// multipart upload: the MD5 of the concatenated per-part MD5 hex digests,
// suffixed with the part count. Content that fits in one part, including
// empty content, hashes as a single-part upload with no suffix.
func computeETag(content []byte) string {
	numChunks := (len(content) + etagChunkSize - 1) / etagChunkSize
	if numChunks <= 1 {
		return fmt.Sprintf("%x", md5.Sum(content))
	}

	var chunkDigests strings.Builder
	for start := 0; start < len(content); start += etagChunkSize {
		end := start + etagChunkSize
		if end > len(content) {
			end = len(content)
		}
		fmt.Fprintf(&chunkDigests, "%x", md5.Sum(content[start:end]))
	}

	return fmt.Sprintf("%x-%d", md5.Sum([]byte(chunkDigests.String())), numChunks)
}
