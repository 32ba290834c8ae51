package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_HostFor(t *testing.T) {
	registry := &DefaultRegistry

	tests := []struct {
		name     string
		filePath string
		expected string
	}{
		{"go source", "/home/user/myproject/main.go", "go"},
		{"go test", "/home/user/myproject/main_test.go", "go"},
		{"babel tree", "/home/user/myproject/src/sum.js.ast.json", "estree"},
		{"jsx tree", "/home/user/myproject/src/App.jsx.ast.json", "estree"},
		{"plain json", "/home/user/myproject/package.json", ""},
		{"javascript source", "/home/user/myproject/src/sum.js", ""},
		{"markdown", "/home/user/myproject/README.md", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, ok := registry.HostFor(tt.filePath)
			if tt.expected == "" {
				assert.False(t, ok)
				return
			}
			if assert.True(t, ok) {
				assert.Equal(t, tt.expected, host.Name())
			}
		})
	}
}

func TestRegistry_IsDependencyPackage(t *testing.T) {
	registry := &DefaultRegistry

	tests := []struct {
		name     string
		filePath string
		expected bool
	}{
		// Dependencies - should return true
		{"vendor directory", "/home/user/myproject/vendor/some/package/file.go", true},
		{"pkg/mod directory", "/home/user/myproject/pkg/mod/some/package/file.go", true},
		{"go mod cache", "/home/user/go/pkg/mod/github.com/gin-gonic/gin@v1.9.1/gin.go", true},
		{"node modules", "/home/user/web/node_modules/lodash/lodash.js.ast.json", true},
		{"relative vendor", "vendor/dep/dep.go", true},

		// User code - should return false
		{"user main.go", "/home/user/myproject/main.go", false},
		{"user package", "/home/user/myproject/pkg/mypackage/file.go", false},
		{"user internal", "/home/user/myproject/internal/helper/file.go", false},
		{"user cmd", "/home/user/myproject/cmd/server/main.go", false},
		{"vendor-like name", "/home/user/myproject/vendors/file.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.IsDependencyPackage(tt.filePath))
		})
	}
}

func TestRegistry_ShouldInstrument(t *testing.T) {
	registry := &Registry{
		Hosts:            DefaultRegistry.Hosts,
		ExcludedPackages: []string{"/generated/"},
	}

	tests := []struct {
		name     string
		filePath string
		expected bool
	}{
		{"user code", "/home/user/myproject/main.go", true},
		{"estree tree", "/home/user/web/src/sum.js.ast.json", true},
		{"no host", "/home/user/myproject/README.md", false},
		{"dependency", "/home/user/myproject/vendor/dep/dep.go", false},
		{"excluded package", "/home/user/myproject/generated/api.go", false},
		{"git internals", "/home/user/myproject/.git/hooks/pre-commit.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.ShouldInstrument(tt.filePath))
		})
	}
}

func TestRegistry_SkipDir(t *testing.T) {
	registry := &Registry{
		Hosts:            DefaultRegistry.Hosts,
		ExcludedPackages: []string{"/generated/"},
	}

	tests := []struct {
		dir      string
		expected bool
	}{
		{"/home/user/myproject/vendor", true},
		{"/home/user/web/node_modules", true},
		{"/home/user/myproject/.git", true},
		{"/home/user/myproject/testdata", true},
		{"/home/user/myproject/generated", true},
		{"/home/user/myproject/pkg", false},
		{"/home/user/myproject/internal", false},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.skipDir(tt.dir))
		})
	}
}

func TestRegistry_HostNamed(t *testing.T) {
	registry := &DefaultRegistry

	for _, name := range []string{"go", "estree"} {
		host, ok := registry.HostNamed(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, name, host.Name())
		}
	}
	_, ok := registry.HostNamed("python")
	assert.False(t, ok)
}

func TestRegistry_WithExcludedDirs(t *testing.T) {
	registry := DefaultRegistry.WithExcludedDirs("gen", "/mocks/", "api/v1", "", ".")

	assert.Equal(t, []string{"/gen/", "/mocks/", "/api/v1/"}, registry.ExcludedPackages)
	assert.Empty(t, DefaultRegistry.ExcludedPackages, "default registry is not modified")

	tests := []struct {
		filePath string
		expected bool
	}{
		{"/home/user/myproject/gen/api.go", false},
		{"/home/user/myproject/internal/gen/api.go", false},
		{"/home/user/myproject/mocks/store.go", false},
		{"/home/user/myproject/api/v1/types.go", false},
		{"/home/user/myproject/api/v2/types.go", true},
		{"/home/user/myproject/general/util.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.filePath, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.ShouldInstrument(tt.filePath))
		})
	}
	assert.True(t, registry.skipDir("/home/user/myproject/internal/gen"))
}
