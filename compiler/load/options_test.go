package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootsWithFallbacks(t *testing.T) {
	t.Run("empty roots get conventional layout", func(t *testing.T) {
		r := Roots{}.WithFallbacks()

		assert.Equal(t, DefaultDomainRoot, r.Domain)
		assert.Equal(t, DefaultApplicationRoot, r.Application)
		assert.Equal(t, DefaultPersistenceRoot, r.Persistence)
		assert.Equal(t, DefaultAPIRoot, r.API)
		assert.Equal(t, DefaultTestsRoot, r.Tests)
	})

	t.Run("configured roots are kept", func(t *testing.T) {
		r := Roots{Domain: "Core", Tests: "Spec"}.WithFallbacks()

		assert.Equal(t, "Core", r.Domain)
		assert.Equal(t, "Spec", r.Tests)
		assert.Equal(t, DefaultAPIRoot, r.API)
	})
}
