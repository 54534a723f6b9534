package domain

import (
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ResourcePathPrefix is the scheme every logical resource path starts with.
const ResourcePathPrefix = "data://"

const maxResourceTypeIDLength = 4

// MapResourceTypeID is the type of map resources. Maps are the roots of packaging.
const MapResourceTypeID ResourceTypeID = "map"

// ResourceTypeID identifies a resource type by its file extension (FourCC style).
type ResourceTypeID string

// IsValid reports whether the type id has 1 to 4 lower-case alphanumeric characters.
func (t ResourceTypeID) IsValid() bool {
	if len(t) == 0 || len(t) > maxResourceTypeIDLength {
		return false
	}
	for _, r := range t {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func (t ResourceTypeID) String() string {
	return string(t)
}

// ResourcePath is a logical path of the form data://folder/file.ext.
type ResourcePath string

// NewResourcePath trims the given string into a ResourcePath.
// The result may be invalid; check IsValid.
func NewResourcePath(s string) ResourcePath {
	return ResourcePath(strings.TrimSpace(s))
}

// IsValid reports whether the path is well-formed.
func (p ResourcePath) IsValid() bool {
	s := string(p)
	if !strings.HasPrefix(s, ResourcePathPrefix) {
		return false
	}

	rel := strings.TrimPrefix(s, ResourcePathPrefix)
	if rel == "" || strings.HasSuffix(rel, "/") || strings.HasPrefix(rel, "/") {
		return false
	}
	if strings.ContainsRune(rel, '\\') {
		return false
	}

	for segment := range strings.SplitSeq(rel, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}
	return true
}

// Relative returns the path without the data:// prefix.
func (p ResourcePath) Relative() string {
	return strings.TrimPrefix(string(p), ResourcePathPrefix)
}

// Extension returns the text after the last dot of the file name, lower-cased.
func (p ResourcePath) Extension() string {
	rel := p.Relative()
	name := rel[strings.LastIndexByte(rel, '/')+1:]
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// FileName returns the last path segment.
func (p ResourcePath) FileName() string {
	rel := p.Relative()
	return rel[strings.LastIndexByte(rel, '/')+1:]
}

func (p ResourcePath) String() string {
	return string(p)
}

// ToFileSystemPath maps the logical path onto a file under root.
func (p ResourcePath) ToFileSystemPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(p.Relative()))
}

// ResourcePathFromFileSystemPath converts a file under root back into a logical path.
// The returned path is invalid when fsPath does not live under root.
func ResourcePathFromFileSystemPath(root, fsPath string) ResourcePath {
	rel, err := filepath.Rel(root, fsPath)
	if err != nil {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "../") || rel == ".." {
		return ""
	}
	return NewResourcePath(ResourcePathPrefix + rel)
}

// ResourceID is a resource path that carries a valid type extension.
type ResourceID struct {
	path ResourcePath
}

// NewResourceID builds an id from a raw string. The result may be invalid.
func NewResourceID(s string) ResourceID {
	return ResourceID{path: NewResourcePath(s)}
}

// ResourceIDFromPath builds an id from an existing resource path.
func ResourceIDFromPath(p ResourcePath) ResourceID {
	return ResourceID{path: p}
}

// IsValid reports whether the path is valid and its extension is a valid type id.
func (id ResourceID) IsValid() bool {
	return id.path.IsValid() && ResourceTypeID(id.path.Extension()).IsValid()
}

// Path returns the logical path of the resource.
func (id ResourceID) Path() ResourcePath {
	return id.path
}

// TypeID returns the resource type, derived from the extension.
func (id ResourceID) TypeID() ResourceTypeID {
	return ResourceTypeID(id.path.Extension())
}

// Hash returns the stable 64-bit key of the resource. Like the path it is case-sensitive.
func (id ResourceID) Hash() uint64 {
	return xxhash.Sum64String(string(id.path))
}

func (id ResourceID) String() string {
	return string(id.path)
}
