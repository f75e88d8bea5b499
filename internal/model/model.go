package model

import "strings"

// Page is a single page template discovered in the templates directory.
type Page struct {
	FileName   string // e.g. "about.hbs"
	Name       string // logical name, e.g. "about"
	SourcePath string
}

// LogicalName strips every occurrence of ext from a template file name, so
// "about.hbs" becomes "about".
func LogicalName(fileName, ext string) string {
	if ext == "" {
		return fileName
	}
	return strings.ReplaceAll(fileName, ext, "")
}

// NewPage builds a Page for a template file.
func NewPage(fileName, sourcePath, ext string) Page {
	return Page{
		FileName:   fileName,
		Name:       LogicalName(fileName, ext),
		SourcePath: sourcePath,
	}
}

// PageContext is the data bag a page template is rendered against.
type PageContext map[string]any

// Context keys that every page, or a specific page, receives.
const (
	KeyPage                 = "page"
	KeyYear                 = "year"
	KeyMeta                 = "meta"
	KeyGalleryItems         = "gallery_items"
	KeyGalleryItemsJSON     = "inlined_gallery_items_json"
	KeyFullMenuDataJSON     = "inlined_full_menu_data_json"
	KeyFullCateringDataJSON = "inlined_catering_data_json"
)

// NewPageContext copies env into a fresh context so pages never share state.
func NewPageContext(env map[string]string) PageContext {
	pc := make(PageContext, len(env)+2)
	for k, v := range env {
		pc[k] = v
	}
	return pc
}
