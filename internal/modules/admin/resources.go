package admin

import (
	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/models"
	"github.com/sewakita/rentweb/internal/pkg/richtext"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
	"github.com/sewakita/rentweb/internal/resource"
)

// Order fixes the sidebar ordering of the admin screens.
var Order = []string{"blogs", "cars", "galleries", "testimonials", "faqs", "metadata"}

// BuildResources instantiates one controller per entity type. All six
// screens share the same workflow; only the schemas differ.
func BuildResources(api *apiclient.Client, resolve *storageurl.Resolver) map[string]Resource {
	blogSchema := resource.Schema{
		Name:  "blogs",
		Label: "Blog",
		Path:  "/admin/blogs",
		Fields: []resource.Field{
			{Name: "title", Label: "Judul", Type: resource.FieldText, Required: true, Placeholder: "Judul artikel"},
			{Name: "content", Label: "Konten", Type: resource.FieldRichText, Required: true},
			{Name: "status", Label: "Status", Type: resource.FieldSelect, Required: true, Options: []string{"publish", "draft"}},
			{Name: "date_published", Label: "Tanggal Terbit", Type: resource.FieldDate},
			{Name: "slug", Label: "Slug", Type: resource.FieldText, Placeholder: "judul-artikel"},
		},
		HasImage: true,
		// Authored content may be pasted HTML or markdown; either way it is
		// sanitized before it leaves this process.
		PrepareSubmit: func(d *resource.Draft) error {
			editor := richtext.NewBufferEditor()
			if err := editor.LoadAuthored(d.Values.Get("content")); err != nil {
				return err
			}
			d.Values.Set("content", editor.Content())
			return nil
		},
	}

	carSchema := resource.Schema{
		Name:  "cars",
		Label: "Mobil",
		Path:  "/admin/mobils",
		Fields: []resource.Field{
			{Name: "name", Label: "Nama Mobil", Type: resource.FieldText, Required: true, Placeholder: "Contoh: Avanza"},
			{Name: "type", Label: "Tipe Mobil", Type: resource.FieldText, Required: true, Placeholder: "Contoh: MPV"},
			{Name: "merk", Label: "Merk Mobil", Type: resource.FieldText, Required: true, Placeholder: "Contoh: Toyota"},
			{Name: "description", Label: "Deskripsi", Type: resource.FieldTextarea, Required: true},
			{Name: "transmission", Label: "Transmisi", Type: resource.FieldText, Required: true, Placeholder: "Manual / Automatic"},
			{Name: "seat", Label: "Jumlah Kursi", Type: resource.FieldNumber, Required: true, Placeholder: "Contoh: 7"},
			{Name: "harga", Label: "Harga Sewa per Hari", Type: resource.FieldNumber, Required: true, Placeholder: "Contoh: 250000"},
		},
		HasImage: true,
	}

	gallerySchema := resource.Schema{
		Name:  "galleries",
		Label: "Galeri",
		Path:  "/admin/galleries",
		Fields: []resource.Field{
			{Name: "title", Label: "Judul", Type: resource.FieldText, Required: true},
		},
		HasImage: true,
	}

	metadataSchema := resource.Schema{
		Name:      "metadata",
		Label:     "Metadata",
		Path:      "/admin/metadata",
		Singleton: true,
		Fields: []resource.Field{
			{Name: "phone", Label: "Phone", Type: resource.FieldText, Required: true},
			{Name: "email", Label: "Email", Type: resource.FieldEmail, Required: true},
			{Name: "address", Label: "Address", Type: resource.FieldText, Required: true},
			{Name: "facebook", Label: "Facebook", Type: resource.FieldText},
			{Name: "instagram", Label: "Instagram", Type: resource.FieldText},
			{Name: "twitter", Label: "Twitter", Type: resource.FieldText},
			{Name: "linkedin", Label: "LinkedIn", Type: resource.FieldText},
			{Name: "website_name", Label: "Website Name", Type: resource.FieldText, Required: true},
		},
	}

	testimonialSchema := resource.Schema{
		Name:  "testimonials",
		Label: "Testimoni",
		Path:  "/admin/testimoni",
		Fields: []resource.Field{
			{Name: "name", Label: "Nama", Type: resource.FieldText, Required: true},
			{Name: "email", Label: "Email", Type: resource.FieldEmail, Required: true},
			{Name: "rate", Label: "Rating (1-5)", Type: resource.FieldSelect, Required: true, Options: []string{"1", "2", "3", "4", "5"}},
			{Name: "feedback", Label: "Feedback", Type: resource.FieldTextarea, Required: true},
		},
	}

	faqSchema := resource.Schema{
		Name:  "faqs",
		Label: "FAQ",
		Path:  "/admin/faqs",
		Fields: []resource.Field{
			{Name: "title", Label: "Pertanyaan", Type: resource.FieldText, Required: true},
			{Name: "description", Label: "Jawaban", Type: resource.FieldTextarea, Required: true},
		},
	}

	return map[string]Resource{
		"blogs":        Adapt(resource.NewController[models.Blog](api, resolve, blogSchema), resolve),
		"cars":         Adapt(resource.NewController[models.Car](api, resolve, carSchema), resolve),
		"galleries":    Adapt(resource.NewController[models.Gallery](api, resolve, gallerySchema), resolve),
		"metadata":     Adapt(resource.NewController[models.Metadata](api, resolve, metadataSchema), resolve),
		"testimonials": Adapt(resource.NewController[models.Testimonial](api, resolve, testimonialSchema), resolve),
		"faqs":         Adapt(resource.NewController[models.FAQ](api, resolve, faqSchema), resolve),
	}
}
