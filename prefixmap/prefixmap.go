// Package prefixmap qualifies full IRIs into prefix:local form against a
// set of registered namespaces.
package prefixmap

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

type binding struct {
	prefix    string
	namespace string
}

// PrefixMap maps namespace IRIs to short prefixes. Qualification picks
// the longest matching namespace so nested namespaces resolve to the
// most specific prefix.
type PrefixMap struct {
	bindings []binding
}

// New creates an empty prefix map.
func New() *PrefixMap {
	return &PrefixMap{}
}

// FromMap builds a prefix map from prefix->namespace pairs. Namespaces
// must be absolute IRIs.
func FromMap(m map[string]string) (*PrefixMap, error) {
	pm := New()

	// Sort keys so validation errors are deterministic.
	prefixes := make([]string, 0, len(m))
	for p := range m {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	for _, p := range prefixes {
		if err := pm.Add(p, m[p]); err != nil {
			return nil, err
		}
	}
	return pm, nil
}

// Add registers a prefix binding. Re-adding a prefix replaces its namespace.
func (pm *PrefixMap) Add(prefix, namespace string) error {
	if namespace == "" {
		return fmt.Errorf("namespace for prefix %q is empty", prefix)
	}
	u, err := url.Parse(namespace)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("namespace %q for prefix %q is not an absolute IRI", namespace, prefix)
	}

	for i, b := range pm.bindings {
		if b.prefix == prefix {
			pm.bindings[i].namespace = namespace
			return nil
		}
	}
	pm.bindings = append(pm.bindings, binding{prefix: prefix, namespace: namespace})
	return nil
}

// Split finds the longest registered namespace that prefixes the IRI and
// returns the bound prefix and the local part. ok is false when no
// namespace matches or the local part would be empty.
func (pm *PrefixMap) Split(iri string) (prefix, local string, ok bool) {
	bestLen := -1
	for _, b := range pm.bindings {
		if strings.HasPrefix(iri, b.namespace) && len(b.namespace) > bestLen {
			bestLen = len(b.namespace)
			prefix = b.prefix
			local = iri[len(b.namespace):]
		}
	}
	if bestLen < 0 || local == "" {
		return "", "", false
	}
	return prefix, local, true
}

// Qualify returns prefix:local for the IRI, or the IRI unchanged when no
// registered namespace matches.
func (pm *PrefixMap) Qualify(iri string) string {
	prefix, local, ok := pm.Split(iri)
	if !ok {
		return iri
	}
	return prefix + ":" + local
}

// Expand resolves a prefix:local form back to a full IRI. Inputs that do
// not use a registered prefix come back unchanged.
func (pm *PrefixMap) Expand(qname string) string {
	i := strings.Index(qname, ":")
	if i < 0 {
		return qname
	}
	prefix, local := qname[:i], qname[i+1:]
	for _, b := range pm.bindings {
		if b.prefix == prefix {
			return b.namespace + local
		}
	}
	return qname
}

// Prefixes returns a copy of the bindings as a map.
func (pm *PrefixMap) Prefixes() map[string]string {
	out := make(map[string]string, len(pm.bindings))
	for _, b := range pm.bindings {
		out[b.prefix] = b.namespace
	}
	return out
}
