package jsonschema

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"
)

// resolveAgainst resolves a reference string against a base URI. An absolute
// reference is used directly. A relative one replaces the base's path: an
// absolute path is cleaned in place, a relative path is appended to the
// cleaned dirname of the base path. The fragment always comes from the
// reference, empty when absent.
func resolveAgainst(base *url.URL, ref string) (*url.URL, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURI, ref)
	}
	if parsed.IsAbs() {
		return parsed, nil
	}
	if base == nil {
		return nil, fmt.Errorf("%w: relative reference %q without base", ErrInvalidBaseURI, ref)
	}

	resolved := *base
	switch {
	case parsed.Path == "":
		// Fragment-only or empty reference keeps the base path.
	case strings.HasPrefix(parsed.Path, "/"):
		resolved.Path = path.Clean(parsed.Path)
	default:
		resolved.Path = path.Clean(path.Dir(base.Path) + "/" + parsed.Path)
	}
	resolved.Fragment = parsed.Fragment
	resolved.RawQuery = parsed.RawQuery
	return &resolved, nil
}

// stripFragment renders a URI without its fragment component. The result is
// the registry key for the document the URI points into.
func stripFragment(u *url.URL) string {
	clone := *u
	clone.Fragment = ""
	return clone.String()
}

// navigateFragment walks a fragment path into a schema document. The path is
// split naively on "/" with empty tokens skipped; string tokens key Mappings
// and numeric tokens index Sequences. A token that names a non-existent node
// is a schema defect, not an instance violation, and yields a SchemaError.
func navigateFragment(root *Value, fragment string) (*Value, error) {
	current := root
	for _, token := range strings.Split(fragment, "/") {
		if token == "" {
			continue
		}
		switch current.Kind {
		case KindObject:
			next, ok := current.Obj.Get(token)
			if !ok {
				return nil, newSchemaErrorf("fragment segment %q not found", token)
			}
			current = next
		case KindArray:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(current.Arr) {
				return nil, newSchemaErrorf("fragment segment %q does not index a sequence of %d items", token, len(current.Arr))
			}
			current = current.Arr[index]
		default:
			return nil, newSchemaErrorf("fragment segment %q descends into a %s", token, current.TypeName())
		}
	}
	return current, nil
}

// LoaderFunc fetches the raw bytes of a schema document by absolute URI. It
// is synchronous and may fail; failures during graph build are swallowed and
// surface as reference errors only when the reference is exercised.
type LoaderFunc func(uri *url.URL) ([]byte, error)

// FileLoader reads schema documents from the local filesystem.
func FileLoader(uri *url.URL) ([]byte, error) {
	return os.ReadFile(uri.Path)
}

// NewHTTPLoader returns a loader that fetches schema documents over HTTP
// with the given timeout. Any status other than 200 is an error.
func NewHTTPLoader(timeout time.Duration) LoaderFunc {
	client := &http.Client{Timeout: timeout}
	return func(uri *url.URL) ([]byte, error) {
		resp, err := client.Get(uri.String())
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %d from %s", ErrInvalidStatusCode, resp.StatusCode, uri)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, ErrDataRead
		}
		return data, nil
	}
}

// defaultLoaders returns the loader set registered on every new Validator:
// file, http and https.
func defaultLoaders() map[string]LoaderFunc {
	httpLoader := NewHTTPLoader(30 * time.Second)
	return map[string]LoaderFunc{
		"file":  FileLoader,
		"http":  httpLoader,
		"https": httpLoader,
	}
}

// loadReference ensures the document portion of target is present in the
// registry, invoking the scheme loader and recursing the graph builder over
// the newly loaded root when it is not.
func (v *Validator) loadReference(target *url.URL) error {
	key := stripFragment(target)
	if _, ok := v.registry.Lookup(key); ok {
		return nil
	}

	loader, ok := v.loaders[target.Scheme]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoLoaderRegistered, target.Scheme)
	}

	v.logger.WithField("uri", key).Debug("loading external schema")
	data, err := loader(target)
	if err != nil {
		return err
	}

	value, err := decodeSchemaDocument(target, data)
	if err != nil {
		return err
	}
	if value.Kind != KindObject {
		return ErrSchemaNotObject
	}

	base, err := url.Parse(key)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURI, key)
	}
	schema := NewSchema(value.Obj, base)
	v.registry.Register(key, schema)
	v.registerSchemaGraph(schema)
	return nil
}

// decodeSchemaDocument decodes fetched schema bytes, dispatching on the
// document's extension: .yaml and .yml go through the YAML decoder, anything
// else is treated as JSON. Decode failures from schema documents propagate;
// they are never swallowed.
func decodeSchemaDocument(uri *url.URL, data []byte) (*Value, error) {
	switch strings.ToLower(path.Ext(uri.Path)) {
	case ".yaml", ".yml":
		return DecodeYAMLValue(data)
	default:
		return DecodeValue(data)
	}
}
