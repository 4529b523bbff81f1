package fakes

type FakeGenerator struct {
	GeneratedUUID string
	GenerateError error
}

func NewFakeGenerator() *FakeGenerator {
	return &FakeGenerator{GeneratedUUID: "fake-uuid"}
}

func (g *FakeGenerator) Generate() (string, error) {
	if g.GenerateError != nil {
		return "", g.GenerateError
	}

	return g.GeneratedUUID, nil
}
