package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	cromcrypto "github.com/sjfleming/cromwell/crypto"
	cromerr "github.com/sjfleming/cromwell/errors"
	cromlog "github.com/sjfleming/cromwell/logger"
	cromsys "github.com/sjfleming/cromwell/system"
)

const mainLogTag = "main"

var version = "[DEV BUILD]"

type opts struct {
	Kind     string `short:"k" long:"kind" description:"Hash kind to compute (crc32c, gcs_crc32c, etag, md5, sha256)" default:"md5"`
	Expect   string `short:"e" long:"expect" description:"Expected digests as kind:value, semicolon-separated; a bare value is md5"`
	Manifest string `short:"m" long:"manifest" description:"YAML manifest mapping file globs to expected digests"`
	Version  bool   `short:"v" long:"version" description:"Show CLI version"`

	Args struct {
		Files []string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func main() {
	logger := cromlog.NewLogger(cromlog.LevelError)
	defer logger.HandlePanic(mainLogTag)

	parsedOpts := opts{}
	_, err := flags.Parse(&parsedOpts)
	if err != nil {
		os.Exit(1)
	}

	if parsedOpts.Version {
		fmt.Printf("version %s\n", version)
		os.Exit(0)
	}

	fs := cromsys.NewOsFileSystem()
	digestProvider := cromcrypto.NewDigestProvider(fs)

	err = run(fs, digestProvider, parsedOpts)
	if err != nil {
		logger.Error(mainLogTag, "%s", err.Error())
		os.Exit(1)
	}
}

func run(fs cromsys.FileSystem, digestProvider cromcrypto.DigestProvider, parsedOpts opts) error {
	switch {
	case parsedOpts.Manifest != "":
		return verifyManifest(fs, digestProvider, parsedOpts.Manifest)

	case parsedOpts.Expect != "":
		if len(parsedOpts.Args.Files) == 0 {
			return cromerr.Error("Expected at least one file to verify")
		}

		for _, filePath := range parsedOpts.Args.Files {
			err := verifyFile(digestProvider, filePath, parsedOpts.Expect)
			if err != nil {
				return err
			}
		}

		return nil

	default:
		if len(parsedOpts.Args.Files) == 0 {
			return cromerr.Error("Expected at least one file to hash")
		}

		kind, err := cromcrypto.ParseHashKind(parsedOpts.Kind)
		if err != nil {
			return err
		}

		for _, filePath := range parsedOpts.Args.Files {
			digest, err := digestProvider.CreateFromFile(filePath, kind)
			if err != nil {
				return err
			}

			fmt.Printf("%s\t%s\n", filePath, digest.String())
		}

		return nil
	}
}

func verifyFile(digestProvider cromcrypto.DigestProvider, filePath, expectedList string) error {
	multi, err := cromcrypto.ParseMultipleDigestString(expectedList)
	if err != nil {
		return err
	}

	for _, expected := range multi.Digests() {
		actual, err := digestProvider.CreateFromFile(filePath, expected.Kind())
		if err != nil {
			return err
		}

		err = expected.Verify(actual)
		if err != nil {
			return cromerr.WrapErrorf(err, "Verifying file '%s'", filePath)
		}
	}

	return nil
}
