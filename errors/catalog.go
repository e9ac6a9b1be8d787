package errors

import (
	"fmt"
	"sort"
)

// Catalog is a named set of kinds. It is built once at setup and read
// concurrently afterwards; no method mutates a catalog in place.
type Catalog struct {
	names    []string
	byName   map[string]*Kind
	byStatus map[int]*Kind
}

// Standard returns a new catalog holding every standard HTTP kind and
// ValidationError. Each call returns an independent value with identical
// contents.
func Standard() *Catalog {
	c := &Catalog{
		names:    make([]string, 0, len(httpKinds)+1),
		byName:   make(map[string]*Kind, len(httpKinds)+1),
		byStatus: make(map[int]*Kind, len(httpKinds)),
	}
	for _, e := range httpKinds {
		c.add(e.name, e.kind)
		c.byStatus[e.kind.statusCode] = e.kind
	}
	c.add(ValidationErrorName, ValidationError)
	return c
}

func (c *Catalog) add(name string, k *Kind) {
	if _, exists := c.byName[name]; !exists {
		c.names = append(c.names, name)
	}
	c.byName[name] = k
}

func (c *Catalog) remove(name string) {
	delete(c.byName, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i:i], c.names[i+1:]...)
			return
		}
	}
}

// Merge returns a new catalog with extra added. Extra entries replace
// entries of the same name and displace any entry declaring the same code.
// Extra names are applied in sorted order so the result is deterministic.
func (c *Catalog) Merge(extra map[string]*Kind) (*Catalog, error) {
	out := &Catalog{
		names:    append([]string(nil), c.names...),
		byName:   make(map[string]*Kind, len(c.byName)+len(extra)),
		byStatus: make(map[int]*Kind, len(c.byStatus)),
	}
	for name, k := range c.byName {
		out.byName[name] = k
	}
	for status, k := range c.byStatus {
		out.byStatus[status] = k
	}

	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]string, len(extra))
	for _, name := range names {
		k := extra[name]
		if k == nil {
			return nil, fmt.Errorf("errors: catalog entry %q has no kind", name)
		}
		if prev, dup := seen[k.code]; dup {
			return nil, fmt.Errorf("errors: catalog entries %q and %q share code %s", prev, name, k.code)
		}
		seen[k.code] = name

		for _, existing := range out.names {
			if existing != name && out.byName[existing].code == k.code {
				out.remove(existing)
				break
			}
		}
		out.add(name, k)
	}
	return out, nil
}

// Lookup returns the kind registered under name.
func (c *Catalog) Lookup(name string) (*Kind, bool) {
	k, ok := c.byName[name]
	return k, ok
}

// ByCode returns the kind declaring code.
func (c *Catalog) ByCode(code string) (*Kind, bool) {
	for _, name := range c.names {
		if k := c.byName[name]; k.code == code {
			return k, true
		}
	}
	return nil, false
}

// ByStatus returns the standard HTTP kind owning status. Custom kinds never
// own a status; they are served by the standard owner's code and message as
// the fallback for that status.
func (c *Catalog) ByStatus(status int) (*Kind, bool) {
	k, ok := c.byStatus[status]
	return k, ok
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of registered kinds.
func (c *Catalog) Len() int { return len(c.names) }
