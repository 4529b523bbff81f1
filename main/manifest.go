package main

import (
	"gopkg.in/yaml.v2"

	cromcrypto "github.com/sjfleming/cromwell/crypto"
	cromerr "github.com/sjfleming/cromwell/errors"
	cromsys "github.com/sjfleming/cromwell/system"
)

// DigestManifest maps file glob patterns to the digests their matches
// are expected to have, e.g.
//
//	outputs/*.bam: "etag:9bb58f26192e4ba00f01e2e7b136bbd8-3"
//	outputs/*.txt: "crc32c:c99465aa;md5:5eb63bbbe01eeed093cb22bb8f5acdc3"
type DigestManifest map[string]string

func parseManifest(content []byte) (DigestManifest, error) {
	var manifest DigestManifest

	err := yaml.Unmarshal(content, &manifest)
	if err != nil {
		return nil, cromerr.WrapError(err, "Parsing digest manifest")
	}

	return manifest, nil
}

func verifyManifest(fs cromsys.FileSystem, digestProvider cromcrypto.DigestProvider, manifestPath string) error {
	content, err := fs.ReadFile(manifestPath)
	if err != nil {
		return cromerr.WrapError(err, "Reading digest manifest")
	}

	manifest, err := parseManifest(content)
	if err != nil {
		return err
	}

	var verifyErrs []error

	for pattern, expectedList := range manifest {
		matches, err := fs.Glob(pattern)
		if err != nil {
			return cromerr.WrapErrorf(err, "Globbing manifest pattern '%s'", pattern)
		}

		if len(matches) == 0 {
			verifyErrs = append(verifyErrs, cromerr.Errorf("No files match pattern '%s'", pattern))
			continue
		}

		for _, filePath := range matches {
			err := verifyFile(digestProvider, filePath, expectedList)
			if err != nil {
				verifyErrs = append(verifyErrs, err)
			}
		}
	}

	if len(verifyErrs) > 0 {
		return cromerr.NewMultiError(verifyErrs...)
	}

	return nil
}
