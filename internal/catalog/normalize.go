package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

// fold case-folds s. A Caser keeps state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// feed spellings, folded, mapped to the ordered grade
var rarityAliases = map[string]domain.Rarity{
	"white":     domain.RarityCommon,
	"green":     domain.RarityCommon,
	"common":    domain.RarityCommon,
	"uncommon":  domain.RarityCommon,
	"blue":      domain.RarityRare,
	"rare":      domain.RarityRare,
	"purple":    domain.RarityEpic,
	"epic":      domain.RarityEpic,
	"orange":    domain.RarityLegendary,
	"legendary": domain.RarityLegendary,
	"red":       domain.RarityMythic,
	"mythic":    domain.RarityMythic,
}

// NormalizeRarity maps any feed rarity spelling onto the ordered enum.
// Unknown or empty values are treated as common.
func NormalizeRarity(raw string) domain.Rarity {
	if r, ok := rarityAliases[fold(raw)]; ok {
		return r
	}
	return domain.RarityCommon
}

// ParseRarity is NormalizeRarity that also reports whether raw was recognized.
func ParseRarity(raw string) (domain.Rarity, bool) {
	r, ok := rarityAliases[fold(raw)]
	return r, ok
}

// ParseCategory accepts either a canonical category name or a raw feed item type.
func ParseCategory(raw string) (domain.Category, bool) {
	folded := fold(raw)
	for _, c := range []domain.Category{
		domain.CategoryWeaponSkin, domain.CategoryClothing, domain.CategoryVehicleSkin,
		domain.CategoryBundle, domain.CategoryAvatar, domain.CategoryBanner,
		domain.CategoryCharacter, domain.CategoryCurrencyGrant, domain.CategoryFragment,
		domain.CategoryOther,
	} {
		if folded == string(c) {
			return c, true
		}
	}
	c := deriveCategory(raw, "", "")
	return c, c != domain.CategoryOther
}

// deriveCategory classifies a raw record from its type fields. Vehicle
// detection also looks at the description because some vehicle skins
// ship without a collection type.
func deriveCategory(itemType, collectionType, description string) domain.Category {
	it := strings.ToUpper(strings.TrimSpace(itemType))
	ct := strings.ToUpper(strings.TrimSpace(collectionType))

	switch {
	case ct == rawCollectionWeaponSkin || it == rawTypeWeapon:
		return domain.CategoryWeaponSkin
	case strings.HasPrefix(it, rawTypeClothesPrefix):
		return domain.CategoryClothing
	case ct == rawCollectionVehicleSkin || it == rawTypeVehicle ||
		strings.Contains(fold(description), vehicleKeyword):
		return domain.CategoryVehicleSkin
	case it == rawTypeBundle:
		return domain.CategoryBundle
	case it == rawTypeAvatar:
		return domain.CategoryAvatar
	case it == rawTypeBanner:
		return domain.CategoryBanner
	case it == rawTypeCharacter:
		return domain.CategoryCharacter
	}
	return domain.CategoryOther
}
