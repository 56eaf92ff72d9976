package pantry

import "strings"

// Icon is a symbolic item icon drawn from a fixed set
type Icon string

const (
	IconApple    Icon = "apple"
	IconCarrot   Icon = "carrot"
	IconMilk     Icon = "milk"
	IconBread    Icon = "bread"
	IconMeat     Icon = "meat"
	IconFish     Icon = "fish"
	IconCheese   Icon = "cheese"
	IconEgg      Icon = "egg"
	IconCoffee   Icon = "coffee"
	IconWine     Icon = "wine"
	IconSnack    Icon = "snack"
	IconFrozen   Icon = "frozen"
	IconSpice    Icon = "spice"
	IconCleaning Icon = "cleaning"
	IconBaby     Icon = "baby"
	IconPet      Icon = "pet"

	// IconPackage is the generic fallback for unknown names
	IconPackage Icon = "package"
)

var icons = map[string]Icon{
	"apple":     IconApple,
	"fruit":     IconApple,
	"carrot":    IconCarrot,
	"vegetable": IconCarrot,
	"milk":      IconMilk,
	"dairy":     IconMilk,
	"bread":     IconBread,
	"croissant": IconBread,
	"meat":      IconMeat,
	"beef":      IconMeat,
	"drumstick": IconMeat,
	"fish":      IconFish,
	"cheese":    IconCheese,
	"egg":       IconEgg,
	"coffee":    IconCoffee,
	"cup":       IconCoffee,
	"wine":      IconWine,
	"beer":      IconWine,
	"drink":     IconWine,
	"cookie":    IconSnack,
	"snack":     IconSnack,
	"candy":     IconSnack,
	"frozen":    IconFrozen,
	"snowflake": IconFrozen,
	"spice":     IconSpice,
	"salt":      IconSpice,
	"cleaning":  IconCleaning,
	"spray":     IconCleaning,
	"baby":      IconBaby,
	"pet":       IconPet,
	"dog":       IconPet,
	"cat":       IconPet,
	"package":   IconPackage,
}

// ParseIcon resolves a symbolic name to an Icon. Unknown or empty names
// resolve to IconPackage.
func ParseIcon(name string) Icon {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if icon, ok := icons[key]; ok {
		return icon
	}
	return IconPackage
}

// Icons lists the valid icons in a stable order
func Icons() []Icon {
	return []Icon{
		IconApple, IconCarrot, IconMilk, IconBread, IconMeat, IconFish, IconCheese, IconEgg,
		IconCoffee, IconWine, IconSnack, IconFrozen, IconSpice, IconCleaning, IconBaby, IconPet,
		IconPackage,
	}
}
