package preprocessor

import (
	"path/filepath"
	"slices"
	"strings"
)

const (
	VendorDirPattern      = "/vendor/"
	PkgModDirPattern      = "/pkg/mod/"
	NodeModulesDirPattern = "/node_modules/"
	GitDirPattern         = "/.git/"
)

var DependencyDirPatterns = []string{
	VendorDirPattern,
	PkgModDirPattern,
	NodeModulesDirPattern,
}

// Registry picks the host for a file by suffix and keeps the walker out of
// dependency trees.
type Registry struct {
	Hosts            map[string]Host
	ExcludedPackages []string
}

var DefaultRegistry = Registry{
	Hosts: map[string]Host{
		GoSuffix:  GoHost{},
		ASTSuffix: ESTreeHost{},
	},
	ExcludedPackages: []string{},
}

// HostFor returns the host registered for the longest suffix of filePath.
func (r *Registry) HostFor(filePath string) (Host, bool) {
	var (
		best    Host
		bestLen int
	)
	for suffix, host := range r.Hosts {
		if strings.HasSuffix(filePath, suffix) && len(suffix) > bestLen {
			best, bestLen = host, len(suffix)
		}
	}
	return best, best != nil
}

func (r *Registry) IsDependencyPackage(filePath string) bool {
	slashed := "/" + strings.TrimPrefix(filepath.ToSlash(filePath), "/")
	for _, pattern := range DependencyDirPatterns {
		if strings.Contains(slashed, pattern) {
			return true
		}
	}
	return false
}

func (r *Registry) IsExcludedPackage(filePath string) bool {
	slashed := filepath.ToSlash(filePath)
	for _, excluded := range r.ExcludedPackages {
		if strings.Contains(slashed, excluded) {
			return true
		}
	}
	return false
}

// ShouldInstrument reports whether a host handles filePath and it lives
// outside dependency trees and excluded packages. Host settings still decide
// per file.
func (r *Registry) ShouldInstrument(filePath string) bool {
	if _, ok := r.HostFor(filePath); !ok {
		return false
	}
	if r.IsDependencyPackage(filePath) || r.IsExcludedPackage(filePath) {
		return false
	}
	return !strings.Contains(filepath.ToSlash(filePath), GitDirPattern)
}

// skipDir reports whether the walker should not descend into dir.
func (r *Registry) skipDir(dir string) bool {
	switch filepath.Base(dir) {
	case ".git", "vendor", "node_modules", "testdata":
		return true
	}
	return r.IsExcludedPackage(dir + "/")
}

// HostNamed returns the registered host called name.
func (r *Registry) HostNamed(name string) (Host, bool) {
	for _, host := range r.Hosts {
		if host.Name() == name {
			return host, true
		}
	}
	return nil, false
}

// WithExcludedDirs returns a copy of r that also skips the given directories.
// A directory matches wherever it appears in a path, so "gen" skips both
// ./gen and ./api/gen.
func (r *Registry) WithExcludedDirs(dirs ...string) *Registry {
	out := &Registry{
		Hosts:            r.Hosts,
		ExcludedPackages: slices.Clone(r.ExcludedPackages),
	}
	for _, dir := range dirs {
		dir = strings.Trim(filepath.ToSlash(dir), "/")
		if dir == "" || dir == "." {
			continue
		}
		out.ExcludedPackages = append(out.ExcludedPackages, "/"+dir+"/")
	}
	return out
}
