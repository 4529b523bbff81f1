package crypto_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/sjfleming/cromwell/crypto"
)

var _ = Describe("Digest", func() {
	Describe("Verify", func() {
		It("accepts a matching kind and value", func() {
			expected := NewDigest(HashKindMD5, "5eb63bbbe01eeed093cb22bb8f5acdc3")
			actual := NewDigest(HashKindMD5, "5eb63bbbe01eeed093cb22bb8f5acdc3")

			Expect(expected.Verify(actual)).To(Succeed())
		})

		Context("mismatching kind, matching value", func() {
			It("errors", func() {
				expected := NewDigest(HashKindMD5, "5eb63bbbe01eeed093cb22bb8f5acdc3")
				actual := NewDigest(HashKindETag, "5eb63bbbe01eeed093cb22bb8f5acdc3")

				err := expected.Verify(actual)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal("Expected md5 digest but received etag"))
			})
		})

		Context("matching kind, mismatching value", func() {
			It("errors", func() {
				expected := NewDigest(HashKindCRC32C, "c99465aa")
				actual := NewDigest(HashKindCRC32C, "e3069283")

				err := expected.Verify(actual)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal(`Expected crc32c digest "c99465aa" but received "e3069283"`))
			})
		})
	})

	Describe("String", func() {
		It("renders kind-prefixed digests", func() {
			digest := NewDigest(HashKindGCSCRC32C, "yZRlqg==")
			Expect(digest.String()).To(Equal("gcs_crc32c:yZRlqg=="))
		})
	})

	Describe("ParseDigestString", func() {
		It("parses a kind-prefixed digest", func() {
			digest, err := ParseDigestString("sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9")
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.Kind()).To(Equal(HashKindSHA256))
			Expect(digest.Value()).To(Equal("b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"))
		})

		It("defaults a bare value to md5", func() {
			digest, err := ParseDigestString("5eb63bbbe01eeed093cb22bb8f5acdc3")
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.Kind()).To(Equal(HashKindMD5))
			Expect(digest.String()).To(Equal("md5:5eb63bbbe01eeed093cb22bb8f5acdc3"))
		})

		It("keeps colons inside the value of a base64 digest intact", func() {
			digest, err := ParseDigestString("gcs_crc32c:yZRlqg==")
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.Value()).To(Equal("yZRlqg=="))
		})

		It("errors on an unrecognized kind", func() {
			_, err := ParseDigestString("sha512:abc")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("Unrecognized hash kind: sha512"))
		})
	})

	Describe("IsZero", func() {
		It("reports an unset digest", func() {
			Expect(Digest{}.IsZero()).To(BeTrue())
			Expect(NewDigest(HashKindMD5, "abc").IsZero()).To(BeFalse())
		})
	})
})
