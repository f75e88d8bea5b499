package pagectx

import (
	"encoding/json"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/Viibezz/tigris-public/internal/data"
	"github.com/Viibezz/tigris-public/internal/model"
)

func augmentGallery(pc model.PageContext, src Sources, logger *slog.Logger) {
	if src.Menu.Empty() {
		return
	}
	items := GalleryItems(src.Menu, logger)

	fields := make([]map[string]any, 0, len(items))
	for _, item := range items {
		fields = append(fields, item.Fields())
	}
	pc[model.KeyGalleryItems] = fields

	inlined, err := json.Marshal(items)
	if err != nil {
		logger.Error("Error serializing gallery items", "error", err)
		return
	}
	pc[model.KeyGalleryItemsJSON] = string(inlined)
	logger.Info("Prepared gallery items from menu data for gallery page", "count", len(items))
}

func augmentMenu(pc model.PageContext, src Sources, logger *slog.Logger) {
	if src.Menu.Empty() {
		return
	}
	pc[model.KeyFullMenuDataJSON] = src.Menu.JSON()
	logger.Info("Prepared full menu data for menu page")
}

func augmentCatering(pc model.PageContext, src Sources, logger *slog.Logger) {
	if src.Catering.Empty() {
		return
	}
	pc[model.KeyFullCateringDataJSON] = src.Catering.JSON()
	logger.Info("Prepared full catering data for catering page")
}

// GalleryItems flattens the items of every menu section into gallery
// entries, in document order. Only items carrying both an "image" and a
// "thumb" key are included; all three thumbnail sizes are read from
// "thumb1200".
func GalleryItems(menu data.Document, logger *slog.Logger) []model.GalleryItem {
	items := []model.GalleryItem{}

	menu.Sections(func(section string, body gjson.Result) bool {
		if !body.IsObject() {
			return true
		}
		list := body.Get("items")
		if !list.IsArray() {
			return true
		}
		list.ForEach(func(_, item gjson.Result) bool {
			if !item.IsObject() || !item.Get("image").Exists() || !item.Get("thumb").Exists() {
				return true
			}
			items = append(items, galleryItem(section, item, logger))
			return true
		})
		return true
	})

	return items
}

func galleryItem(section string, item gjson.Result, logger *slog.Logger) model.GalleryItem {
	name := lookup(item, "name", model.DefaultItemName)

	var thumb any
	if t := item.Get("thumb1200"); t.Exists() {
		thumb = t.Value()
	} else {
		logger.Warn("Gallery item has no thumb1200, leaving thumbnails empty", "section", section, "name", name)
	}

	caption := lookup(item, "description", lookup(item, "name", model.DefaultItemCaption))

	return model.GalleryItem{
		Category:  lookup(item, "category", nil),
		Name:      name,
		AltText:   lookup(item, "name", model.DefaultAltText),
		Thumb400:  thumb,
		Thumb800:  thumb,
		Thumb1200: thumb,
		Caption:   caption,
	}
}

// lookup returns the value under key, or fallback when the key is absent.
// A present null stays null.
func lookup(item gjson.Result, key string, fallback any) any {
	if r := item.Get(key); r.Exists() {
		return r.Value()
	}
	return fallback
}
