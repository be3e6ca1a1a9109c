package resource

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
)

// Entity is a flat record with a server-assigned identifier. The client
// never generates ids.
type Entity interface {
	EntityID() int64
}

// ImageBearer is implemented by entities carrying a stored image reference.
type ImageBearer interface {
	ImageRef() string
}

// ErrNotConfirmed is returned by Delete when the confirmation step was not
// explicitly accepted. No request is sent in that case.
var ErrNotConfirmed = errors.New("resource: delete not confirmed")

// Controller drives the authenticated CRUD workflow for one resource:
// fetch -> list -> create/update -> delete, always refetching the
// authoritative list after a mutation instead of mutating locally. Its item
// slice is only a cache of the last successful fetch.
type Controller[E Entity] struct {
	api     *apiclient.Client
	schema  Schema
	resolve *storageurl.Resolver

	mu    sync.Mutex
	items []E
}

// NewController builds a controller for one resource schema.
func NewController[E Entity](api *apiclient.Client, resolve *storageurl.Resolver, schema Schema) *Controller[E] {
	return &Controller[E]{api: api, schema: schema, resolve: resolve}
}

// Schema returns the resource schema.
func (ct *Controller[E]) Schema() Schema { return ct.schema }

// List fetches the collection. On success the cache is replaced; on failure
// the previous cache is returned alongside the error so the page can stay
// stale-but-visible.
func (ct *Controller[E]) List(ctx context.Context, token string) ([]E, error) {
	var fetched []E
	var err error
	if ct.schema.Singleton {
		fetched, err = ct.fetchSingleton(ctx, token)
	} else {
		err = ct.api.Get(ctx, ct.schema.Path, token, nil, &fetched)
	}
	ct.mu.Lock()
	defer ct.mu.Unlock()
	if err != nil {
		return ct.snapshotLocked(), err
	}
	ct.items = fetched
	return ct.snapshotLocked(), nil
}

// Items returns the cached list without touching the network.
func (ct *Controller[E]) Items() []E {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.snapshotLocked()
}

// Find looks up a cached entity by id.
func (ct *Controller[E]) Find(id int64) (E, bool) {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	for _, e := range ct.items {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// BeginEdit copies the selected entity's fields into a draft and derives the
// image preview URL when the resource has one. Nothing else is prefetched.
func (ct *Controller[E]) BeginEdit(id int64) (Draft, string, bool) {
	e, ok := ct.Find(id)
	if !ok {
		return Draft{}, "", false
	}
	d, err := ct.schema.DraftFromEntity(e)
	if err != nil {
		return Draft{}, "", false
	}
	preview := ""
	if ib, ok := any(e).(ImageBearer); ok && ct.resolve != nil {
		preview = ct.resolve.Resolve(ib.ImageRef())
	}
	return d, preview, true
}

// Submit sends a create or update. editingID selects update mode; a staged
// file forces a multipart POST with the method override so the upload can
// ride along. On success the authoritative list is refetched. On failure the
// caller keeps the draft so the user can retry.
func (ct *Controller[E]) Submit(ctx context.Context, token string, d Draft, editingID *int64, file *apiclient.Upload) error {
	if ct.schema.PrepareSubmit != nil {
		if err := ct.schema.PrepareSubmit(&d); err != nil {
			return err
		}
	}

	var err error
	switch {
	case editingID != nil && (ct.schema.HasImage || file != nil):
		fields := cloneValues(d.Values)
		fields.Set(apiclient.MethodOverrideField, "PUT")
		err = ct.api.PostMultipart(ctx, ct.itemPath(*editingID), token, fields, file, nil)
	case editingID != nil:
		err = ct.api.PutJSON(ctx, ct.itemPath(*editingID), token, valuesToBody(d.Values), nil)
	case ct.schema.HasImage || file != nil:
		err = ct.api.PostMultipart(ctx, ct.schema.Path, token, d.Values, file, nil)
	default:
		err = ct.api.PostJSON(ctx, ct.schema.Path, token, valuesToBody(d.Values), nil)
	}
	if err != nil {
		return err
	}

	_, listErr := ct.List(ctx, token)
	return listErr
}

// Delete removes an entity after an explicit confirmation. Declining leaves
// the list and the server untouched. A confirmed success refetches the list.
func (ct *Controller[E]) Delete(ctx context.Context, token string, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := ct.api.Delete(ctx, ct.itemPath(id), token); err != nil {
		return err
	}
	_, listErr := ct.List(ctx, token)
	return listErr
}

func (ct *Controller[E]) fetchSingleton(ctx context.Context, token string) ([]E, error) {
	var single E
	if err := ct.api.Get(ctx, ct.schema.Path, token, nil, &single); err != nil {
		if apiclient.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if single.EntityID() == 0 {
		return nil, nil
	}
	return []E{single}, nil
}

func (ct *Controller[E]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", ct.schema.Path, id)
}

func (ct *Controller[E]) snapshotLocked() []E {
	out := make([]E, len(ct.items))
	copy(out, ct.items)
	return out
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for k, vals := range v {
		for _, val := range vals {
			out.Add(k, val)
		}
	}
	return out
}

func valuesToBody(v url.Values) map[string]string {
	body := make(map[string]string, len(v))
	for k := range v {
		body[k] = v.Get(k)
	}
	return body
}
