package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/sjfleming/cromwell/logger"
)

var _ = Describe("Logger", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	Describe("NewWriterLogger", func() {
		It("writes tagged messages at or above its level", func() {
			log := NewWriterLogger(LevelInfo, out)
			log.Info("verifier", "Checked blob '%s'", "abc")

			Expect(out.String()).To(ContainSubstring("INFO - Checked blob 'abc'"))
			Expect(out.String()).To(ContainSubstring("[verifier]"))
		})

		It("drops messages below its level", func() {
			log := NewWriterLogger(LevelError, out)
			log.Debug("verifier", "noisy")
			log.Info("verifier", "still noisy")

			Expect(out.String()).To(BeEmpty())
		})

		It("logs everything when forced debug is toggled", func() {
			log := NewWriterLogger(LevelNone, out)
			log.ToggleForcedDebug()
			log.Debug("verifier", "now visible")

			Expect(out.String()).To(ContainSubstring("DEBUG - now visible"))
		})
	})

	Describe("NewAsyncWriterLogger", func() {
		It("writes messages after an explicit flush", func() {
			log := NewAsyncWriterLogger(LevelDebug, out)
			log.Error("verifier", "boom")

			Expect(log.Flush()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("ERROR - boom"))
		})
	})

	Describe("Levelify", func() {
		It("parses level names case-insensitively", func() {
			level, err := Levelify("warn")
			Expect(err).ToNot(HaveOccurred())
			Expect(level).To(Equal(LevelWarn))
		})

		It("errors on unknown names", func() {
			_, err := Levelify("loud")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Unknown LogLevel string 'loud'"))
		})
	})
})
