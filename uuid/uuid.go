package uuid

import (
	gouuid "github.com/nu7hatch/gouuid"

	cromerr "github.com/sjfleming/cromwell/errors"
)

type Generator interface {
	Generate() (string, error)
}

type generator struct{}

func NewGenerator() Generator {
	return generator{}
}

func (g generator) Generate() (string, error) {
	uuid, err := gouuid.NewV4()
	if err != nil {
		return "", cromerr.WrapError(err, "Generating UUID")
	}

	return uuid.String(), nil
}
