package di

import (
	"github.com/mohitbakre/polyglot/auth"
	"github.com/mohitbakre/polyglot/translation"
)

// Container holds the external-service dependencies of the web app.
// It enables dependency injection for both production and test
// environments.
type Container struct {
	Authenticator auth.Authenticator
	Translator    translation.Translator
}

// ContainerOption configures a container during construction.
type ContainerOption func(*Container)

// WithAuthenticator sets the authenticator implementation.
func WithAuthenticator(a auth.Authenticator) ContainerOption {
	return func(c *Container) { c.Authenticator = a }
}

// WithTranslator sets the translator implementation.
func WithTranslator(t translation.Translator) ContainerOption {
	return func(c *Container) { c.Translator = t }
}

// NewTestContainer creates a container with stub implementations for
// testing without external dependencies.
func NewTestContainer() *Container {
	return &Container{
		Authenticator: auth.NewStubAuthenticator(),
		Translator:    translation.NewStubTranslator(nil),
	}
}

// NewContainer creates a container with the given options.
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
