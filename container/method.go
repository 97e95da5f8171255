// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"

	"github.com/quill-sh/quill/internal/inject"
)

// Method registers fn as a service method under name: a binding that is
// invoked through Call rather than resolved as a plain value. fn follows
// the handler convention (optional leading context.Context, optional
// parameter struct bound by name, optional result value, trailing error).
// Get of a method binding returns fn itself.
func (c *Container) Method(name string, fn any) error {
	if name == "" {
		return ErrEmptyName
	}
	f, err := inject.NewFunc(fn)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[name] = &binding{value: fn, method: f, built: true}
	return nil
}

// Call invokes the service method bound under name. args are the caller's
// named arguments; the method's parameter struct resolves each field from
// args first and the container second. The result is the method's value
// return, or nil when it has none.
func (c *Container) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	c.mu.Lock()
	b, ok := c.bindings[name]
	if !ok {
		err := &NotFoundError{Name: name, Known: c.namesLocked()}
		c.mu.Unlock()
		return nil, err
	}
	m := b.method
	c.mu.Unlock()
	if m == nil {
		return nil, &NotCallableError{Name: name}
	}
	return m.Call(ctx, args, c)
}
