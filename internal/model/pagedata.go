package model

// Fallbacks used when a gallery source item lacks a field.
const (
	DefaultItemName    = "Untitled Item"
	DefaultAltText     = "Gallery Image"
	DefaultItemCaption = "No caption provided."
)

// GalleryItem is one image on the gallery page. Field order here is the
// order of keys in the inlined JSON.
type GalleryItem struct {
	Category  any `json:"category"`
	Name      any `json:"name"`
	AltText   any `json:"alt_text"`
	Thumb400  any `json:"thumb400"`
	Thumb800  any `json:"thumb800"`
	Thumb1200 any `json:"thumb1200"`
	Caption   any `json:"caption"`
}

// Fields exposes the item to templates under its JSON key names.
func (g GalleryItem) Fields() map[string]any {
	return map[string]any{
		"category":  g.Category,
		"name":      g.Name,
		"alt_text":  g.AltText,
		"thumb400":  g.Thumb400,
		"thumb800":  g.Thumb800,
		"thumb1200": g.Thumb1200,
		"caption":   g.Caption,
	}
}
