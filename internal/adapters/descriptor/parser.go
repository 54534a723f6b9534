// Package descriptor reads resource references out of JSON resource descriptors
// without deserializing the descriptors themselves.
package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// CompileDependenciesKey is the top-level descriptor field listing compile dependencies.
const CompileDependenciesKey = "compileDependencies"

// ParseCompileDependencies extracts the top-level compileDependencies array.
// Raw assets are not descriptors: content that is not a JSON object, or that
// ends before the field appears, has no dependencies. A malformed field is an error.
func ParseCompileDependencies(data []byte) ([]domain.ResourcePath, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, nil
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil //nolint:nilerr // not a descriptor
		}
		if key, _ := keyTok.(string); key == CompileDependenciesKey {
			return readPathArray(dec)
		}
		if skipValue(dec) != nil {
			return nil, nil
		}
	}
	return nil, nil
}

func readPathArray(dec *json.Decoder) ([]domain.ResourcePath, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, zerr.With(err, "field", CompileDependenciesKey)
	}

	var deps []domain.ResourcePath
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrDescriptorParse.Error())
		}
		s, ok := tok.(string)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidDependencyPath, "value", tok)
		}
		p := domain.NewResourcePath(s)
		if !p.IsValid() {
			return nil, zerr.With(domain.ErrInvalidDependencyPath, "path", s)
		}
		deps = append(deps, p)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return deps, nil
}

// ParseReferencedResources returns every string value in the document that names a
// valid resource, de-duplicated, in document order. Object keys are ignored.
func ParseReferencedResources(data []byte) ([]domain.ResourceID, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	type frame struct {
		object    bool
		expectKey bool
	}
	var stack []frame
	seen := make(map[uint64]struct{})
	var ids []domain.ResourceID

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrDescriptorParse.Error())
		}

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			continue
		}

		if n := len(stack); n > 0 && stack[n-1].object {
			if stack[n-1].expectKey {
				stack[n-1].expectKey = false
				continue
			}
			stack[n-1].expectKey = true
		}

		switch v := tok.(type) {
		case json.Delim:
			stack = append(stack, frame{object: v == '{', expectKey: v == '{'})
		case string:
			id := domain.NewResourceID(v)
			if !id.IsValid() {
				continue
			}
			if _, dup := seen[id.Hash()]; dup {
				continue
			}
			seen[id.Hash()] = struct{}{}
			ids = append(ids, id)
		}
	}

	if len(stack) > 0 {
		return nil, zerr.With(domain.ErrDescriptorParse, "reason", "unexpected end of document")
	}
	return ids, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return zerr.Wrap(err, domain.ErrDescriptorParse.Error())
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		err := zerr.With(domain.ErrDescriptorParse, "expected", want.String())
		return zerr.With(err, "got", tok)
	}
	return nil
}

// skipValue consumes the next complete value, including nested objects and arrays.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return zerr.Wrap(err, domain.ErrDescriptorParse.Error())
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			default:
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}
