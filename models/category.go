package models

import (
	"fmt"
	"strings"
)

// Category is the stable identifier for a trade specialization. The
// identifier is what gets stored and sent over the wire; the localized
// display label lives in categoryLabels and never doubles as a data value.
type Category string

const (
	CategoryPlumber         Category = "plumber"
	CategoryElectrician     Category = "electrician"
	CategoryCleaner         Category = "cleaner"
	CategoryMason           Category = "mason"
	CategoryJoiner          Category = "joiner"
	CategoryPainter         Category = "painter"
	CategoryGeneral         Category = "general"
	CategoryGardener        Category = "gardener"
	CategoryCarpenter       Category = "carpenter"
	CategoryPlasterer       Category = "plasterer"
	CategoryLocksmith       Category = "locksmith"
	CategoryPoolCleaner     Category = "pool_cleaner"
	CategoryRoofer          Category = "roofer"
	CategoryACInstaller     Category = "ac_installer"
	CategoryHeatingTech     Category = "heating_tech"
	CategoryApplianceTech   Category = "appliance_tech"
	CategoryGlazier         Category = "glazier"
	CategoryMover           Category = "mover"
	CategoryITTech          Category = "it_tech"
	CategoryFurnitureRepair Category = "furniture_repair"
)

var categoryLabels = map[Category]string{
	CategoryPlumber:         "Encanador",
	CategoryElectrician:     "Eletricista",
	CategoryCleaner:         "Limpeza",
	CategoryMason:           "Pedreiro",
	CategoryJoiner:          "Marceneiro",
	CategoryPainter:         "Pintor",
	CategoryGeneral:         "Faz-tudo",
	CategoryGardener:        "Jardineiro",
	CategoryCarpenter:       "Carpinteiro",
	CategoryPlasterer:       "Gesseiro",
	CategoryLocksmith:       "Serralheiro",
	CategoryPoolCleaner:     "Piscineiro",
	CategoryRoofer:          "Telhador",
	CategoryACInstaller:     "Ar Condicionado",
	CategoryHeatingTech:     "Aquecimento",
	CategoryApplianceTech:   "Eletrodomésticos",
	CategoryGlazier:         "Vidraceiro",
	CategoryMover:           "Mudanças",
	CategoryITTech:          "Informática",
	CategoryFurnitureRepair: "Reparo de Móveis",
}

// allCategories fixes the declaration order so label lists sent to the
// classifier are deterministic.
var allCategories = []Category{
	CategoryPlumber,
	CategoryElectrician,
	CategoryCleaner,
	CategoryMason,
	CategoryJoiner,
	CategoryPainter,
	CategoryGeneral,
	CategoryGardener,
	CategoryCarpenter,
	CategoryPlasterer,
	CategoryLocksmith,
	CategoryPoolCleaner,
	CategoryRoofer,
	CategoryACInstaller,
	CategoryHeatingTech,
	CategoryApplianceTech,
	CategoryGlazier,
	CategoryMover,
	CategoryITTech,
	CategoryFurnitureRepair,
}

// AllCategories returns every known category in declaration order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryLabels returns the localized display labels in declaration order.
func CategoryLabels() []string {
	labels := make([]string, 0, len(allCategories))
	for _, c := range allCategories {
		labels = append(labels, categoryLabels[c])
	}
	return labels
}

// Label returns the localized display text for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory resolves a stable identifier or a display label to a
// Category. The classifier answers with display labels, clients send
// identifiers; both resolve here.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if c := Category(strings.ToLower(s)); c.Valid() {
		return c, nil
	}
	for c, label := range categoryLabels {
		if strings.EqualFold(label, s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
