package crypto_test

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/sjfleming/cromwell/crypto"
)

var _ = Describe("Compute", func() {
	content := []byte("hello world")

	Describe("md5", func() {
		It("returns the 32-char lowercase hex digest", func() {
			Expect(Compute(HashKindMD5, content)).To(Equal("5eb63bbbe01eeed093cb22bb8f5acdc3"))
		})

		It("hashes empty content", func() {
			Expect(Compute(HashKindMD5, nil)).To(Equal("d41d8cd98f00b204e9800998ecf8427e"))
		})
	})

	Describe("sha256", func() {
		It("returns the 64-char lowercase hex digest", func() {
			Expect(Compute(HashKindSHA256, content)).To(Equal("b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"))
		})

		It("hashes empty content", func() {
			Expect(Compute(HashKindSHA256, nil)).To(Equal("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"))
		})
	})

	Describe("crc32c", func() {
		It("returns the checksum as unpadded lowercase hex", func() {
			Expect(Compute(HashKindCRC32C, []byte("123456789"))).To(Equal("e3069283"))
			Expect(Compute(HashKindCRC32C, content)).To(Equal("c99465aa"))
		})

		It("drops leading zeros", func() {
			// crc32c("as") is 0x00976d5a
			Expect(Compute(HashKindCRC32C, []byte("as"))).To(Equal("976d5a"))
		})

		It("renders a zero checksum as a single character", func() {
			Expect(Compute(HashKindCRC32C, nil)).To(Equal("0"))
		})
	})

	Describe("gcs_crc32c", func() {
		It("base64-encodes the big-endian 4-byte checksum", func() {
			Expect(Compute(HashKindGCSCRC32C, content)).To(Equal("yZRlqg=="))
			Expect(Compute(HashKindGCSCRC32C, []byte("123456789"))).To(Equal("4waSgw=="))
		})

		It("keeps the full 4-byte frame for small checksums", func() {
			Expect(Compute(HashKindGCSCRC32C, []byte("as"))).To(Equal("AJdtWg=="))
			Expect(Compute(HashKindGCSCRC32C, nil)).To(Equal("AAAAAA=="))
		})

		It("encodes the same checksum value as the crc32c kind", func() {
			for _, c := range [][]byte{nil, []byte("as"), content, bytes.Repeat([]byte("q"), 4096)} {
				frame, err := base64.StdEncoding.DecodeString(Compute(HashKindGCSCRC32C, c))
				Expect(err).ToNot(HaveOccurred())
				Expect(frame).To(HaveLen(4))

				hexValue, err := strconv.ParseUint(Compute(HashKindCRC32C, c), 16, 32)
				Expect(err).ToNot(HaveOccurred())
				Expect(uint32(hexValue)).To(Equal(binary.BigEndian.Uint32(frame)))
			}
		})
	})

	Describe("etag", func() {
		const chunkSize = 8 * 1024 * 1024

		It("equals the plain md5 digest for single-part content", func() {
			small := bytes.Repeat([]byte("a"), 100)
			Expect(Compute(HashKindETag, small)).To(Equal("36a92cc94a9e0fa21f625f8bfb007adf"))
			Expect(Compute(HashKindETag, small)).To(Equal(Compute(HashKindMD5, small)))
		})

		It("treats empty content as a single part", func() {
			Expect(Compute(HashKindETag, nil)).To(Equal(Compute(HashKindMD5, nil)))
		})

		It("treats content of exactly one chunk as a single part", func() {
			exact := bytes.Repeat([]byte("a"), chunkSize)
			Expect(Compute(HashKindETag, exact)).To(Equal(Compute(HashKindMD5, exact)))
		})

		It("suffixes the part count once content spills into a second chunk", func() {
			spilled := bytes.Repeat([]byte{0xab}, chunkSize+1)
			Expect(Compute(HashKindETag, spilled)).To(Equal("fd371422a3c435bf8fbb1ab377840f90-2"))
		})

		It("hashes the concatenated per-part hex digests", func() {
			// 9 MiB of "a": parts are 8 MiB + 1 MiB
			spilled := bytes.Repeat([]byte("a"), 9*1024*1024)
			Expect(Compute(HashKindETag, spilled)).To(Equal("b9bd9d5333d4ea00f9ec7bac98a68fc7-2"))
		})

		It("counts all parts for longer content", func() {
			long := bytes.Repeat([]byte("x"), 20*1024*1024)
			result := Compute(HashKindETag, long)
			Expect(result).To(Equal("b22a83889c5db1c86e8e520cd9bb6ebc-3"))
			Expect(strings.HasSuffix(result, "-3")).To(BeTrue())
		})
	})

	Describe("determinism", func() {
		It("returns identical digests for identical inputs", func() {
			for _, kind := range HashKinds {
				first := Compute(kind, content)
				second := Compute(kind, append([]byte(nil), content...))
				Expect(second).To(Equal(first), "kind %s", kind)
			}
		})

		It("changes the digest when a byte changes", func() {
			mutated := append([]byte(nil), content...)
			mutated[3] ^= 0x01

			for _, kind := range HashKinds {
				Expect(Compute(kind, mutated)).ToNot(Equal(Compute(kind, content)), "kind %s", kind)
			}
		})
	})
})
