package module

import (
	"github.com/mockbot/go-slackmock/pkg/mockgen"
	"github.com/mockbot/go-slackmock/pkg/slackmock"
	"github.com/mockbot/go-slackmock/pkg/stub"
)

// DeriveFunc is the auto-derivation primitive the substitute is built on.
// mockgen.Generate satisfies it and is the default.
type DeriveFunc func(source any, opts ...mockgen.Option) (*mockgen.Object, error)

// Substitute mirrors the slack package's export surface. Every export is a
// generically derived stand-in except the client constructor, which is bound
// to the constructible factory.
type Substitute struct {
	exports *mockgen.Object
	factory *slackmock.Factory
}

// NewSubstitute builds a module substitute with the given derivation
// primitive (nil selects mockgen.Generate). A derivation failure is not
// handled here and propagates to the caller.
func NewSubstitute(derive DeriveFunc) (*Substitute, error) {
	if derive == nil {
		derive = mockgen.Generate
	}
	exports, err := derive(slackExports{})
	if err != nil {
		return nil, err
	}
	return &Substitute{
		exports: exports,
		factory: slackmock.NewFactory(),
	}, nil
}

// New is the substituted client constructor. It is the factory from
// pkg/slackmock, so constructed clients carry the auth.test identity default.
func (s *Substitute) New(token string, opts ...slackmock.Option) *slackmock.Client {
	return s.factory.New(token, opts...)
}

// Factory returns the factory backing the New export.
func (s *Substitute) Factory() *slackmock.Factory {
	return s.factory
}

// Export returns the stand-in for a named export. "New" resolves to the
// factory's constructor recording rather than a generic stand-in.
func (s *Substitute) Export(name string) *stub.Stub {
	if name == "New" {
		return s.factory.Constructor()
	}
	return s.exports.Stub(name)
}

// Exports lists every mirrored export name, sorted.
func (s *Substitute) Exports() []string {
	return s.exports.Keys()
}
