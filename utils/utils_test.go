package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStorageName(t *testing.T) {
	name := GenerateStorageName("Band Photo.JPG")

	assert.True(t, strings.HasSuffix(name, ".jpg"), "Extension must be kept and lowercased")
	assert.NotContains(t, name, "-", "Storage names are dashless")
	assert.NotContains(t, name, " ")
	assert.Len(t, name, 32+len(".jpg"))
}

func TestGenerateStorageNameNoExtension(t *testing.T) {
	name := GenerateStorageName("README")
	assert.Len(t, name, 32)
	assert.NotContains(t, name, ".")
}

func TestGenerateStorageNameUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := GenerateStorageName("track.mp3")
		assert.False(t, seen[name], "Names must never repeat")
		seen[name] = true
	}
}
