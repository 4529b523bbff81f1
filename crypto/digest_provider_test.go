package crypto_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/sjfleming/cromwell/crypto"
	fakesys "github.com/sjfleming/cromwell/system/fakes"
)

var _ = Describe("DigestProvider", func() {
	var (
		fs       *fakesys.FakeFileSystem
		provider DigestProvider
	)

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		provider = NewDigestProvider(fs)
	})

	Describe("CreateFromFile", func() {
		const (
			filePath     = "/file.txt"
			fileContents = "hello world"
		)

		BeforeEach(func() {
			err := fs.WriteFileString(filePath, fileContents)
			Expect(err).ToNot(HaveOccurred())
		})

		It("computes an md5 digest of the file", func() {
			digest, err := provider.CreateFromFile(filePath, HashKindMD5)
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.String()).To(Equal("md5:5eb63bbbe01eeed093cb22bb8f5acdc3"))
		})

		It("computes a crc32c digest of the file", func() {
			digest, err := provider.CreateFromFile(filePath, HashKindCRC32C)
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.Value()).To(Equal("c99465aa"))
		})

		It("computes a gcs_crc32c digest of the file", func() {
			digest, err := provider.CreateFromFile(filePath, HashKindGCSCRC32C)
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.Value()).To(Equal("yZRlqg=="))
		})

		It("computes an etag digest equal to md5 for small files", func() {
			digest, err := provider.CreateFromFile(filePath, HashKindETag)
			Expect(err).ToNot(HaveOccurred())
			Expect(digest.Value()).To(Equal("5eb63bbbe01eeed093cb22bb8f5acdc3"))
		})

		It("wraps read errors with context", func() {
			fs.ReadFileError = errors.New("disk gone")

			_, err := provider.CreateFromFile(filePath, HashKindMD5)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("Reading file for digest calculation: disk gone"))
		})
	})
})
