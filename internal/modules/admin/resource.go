package admin

import (
	"context"

	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
	"github.com/sewakita/rentweb/internal/resource"
)

// Row is one list-table entry, already flattened for the shared template.
type Row struct {
	ID       int64
	Cells    map[string]string // field name -> display value
	ImageURL string
}

// Resource erases the controller's entity type so one handler can serve
// every admin screen.
type Resource interface {
	Schema() resource.Schema
	List(ctx context.Context, token string) ([]Row, error)
	Rows() []Row
	BeginEdit(id int64) (resource.Draft, string, bool)
	Submit(ctx context.Context, token string, d resource.Draft, editingID *int64, file *apiclient.Upload) error
	Delete(ctx context.Context, token string, id int64, confirmed bool) error
}

type typedResource[E resource.Entity] struct {
	ct      *resource.Controller[E]
	resolve *storageurl.Resolver
}

// Adapt wraps a typed controller for the generic admin handler.
func Adapt[E resource.Entity](ct *resource.Controller[E], resolve *storageurl.Resolver) Resource {
	return &typedResource[E]{ct: ct, resolve: resolve}
}

func (r *typedResource[E]) Schema() resource.Schema { return r.ct.Schema() }

func (r *typedResource[E]) List(ctx context.Context, token string) ([]Row, error) {
	items, err := r.ct.List(ctx, token)
	return r.toRows(items), err
}

func (r *typedResource[E]) Rows() []Row {
	return r.toRows(r.ct.Items())
}

func (r *typedResource[E]) BeginEdit(id int64) (resource.Draft, string, bool) {
	return r.ct.BeginEdit(id)
}

func (r *typedResource[E]) Submit(ctx context.Context, token string, d resource.Draft, editingID *int64, file *apiclient.Upload) error {
	return r.ct.Submit(ctx, token, d, editingID, file)
}

func (r *typedResource[E]) Delete(ctx context.Context, token string, id int64, confirmed bool) error {
	return r.ct.Delete(ctx, token, id, confirmed)
}

func (r *typedResource[E]) toRows(items []E) []Row {
	schema := r.ct.Schema()
	rows := make([]Row, 0, len(items))
	for _, e := range items {
		row := Row{ID: e.EntityID(), Cells: map[string]string{}}
		if d, err := schema.DraftFromEntity(e); err == nil {
			for _, f := range schema.Fields {
				row.Cells[f.Name] = d.Values.Get(f.Name)
			}
		}
		if ib, ok := any(e).(resource.ImageBearer); ok && r.resolve != nil {
			row.ImageURL = r.resolve.Resolve(ib.ImageRef())
		}
		rows = append(rows, row)
	}
	return rows
}
