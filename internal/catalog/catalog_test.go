package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_KnownNames(t *testing.T) {
	code, ok := Code("Español")
	assert.True(t, ok)
	assert.Equal(t, "es", code)

	code, ok = Code("Chino (Mandarín)")
	assert.True(t, ok)
	assert.Equal(t, "zh", code)
}

func TestCode_UnknownName(t *testing.T) {
	_, ok := Code("Klingon")
	assert.False(t, ok)
}

func TestCode_IsCaseSensitive(t *testing.T) {
	_, ok := Code("español")
	assert.False(t, ok)
}

func TestCatalog_CodesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, l := range Languages() {
		prev, dup := seen[l.Code]
		assert.False(t, dup, "code %q shared by %q and %q", l.Code, prev, l.Name)
		seen[l.Code] = l.Name
	}
}

func TestNames_PreservesDisplayOrder(t *testing.T) {
	names := Names()
	assert.Len(t, names, 11)
	assert.Equal(t, "Inglés", names[0])
	assert.Equal(t, "Ruso", names[len(names)-1])
}
