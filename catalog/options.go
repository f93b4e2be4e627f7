package catalog

import "doener-shop/models"

const (
	NoSauce = "ohne Soße"

	// MaxIngredients caps the toppings of a build-your-own pizza.
	MaxIngredients = 4
	// MaxWizardSauces caps simultaneous sauces in the meat wizard.
	MaxWizardSauces = 3
	// CollapsedSauceCount is how many sauces show before "show more".
	CollapsedSauceCount = 3
	// ExtraSurcharge is the flat price of every paid extra.
	ExtraSurcharge models.Cents = 100
	// SideDishItemNumber is the one wizard dish that also asks for a side dish.
	SideDishItemNumber = 4
)

var PizzaSizes = []models.Size{
	{Name: "Medium", Price: 890, Description: "Ø ca. 26 cm"},
	{Name: "Large", Price: 990, Description: "Ø ca. 30 cm"},
	{Name: "Family", Price: 1790, Description: "Ø ca. 40 cm"},
	{Name: "Mega", Price: 2690, Description: "Ø ca. 50 cm"},
}

var PastaTypes = []string{"Spaghetti", "Maccheroni"}

var SauceTypes = []string{
	"Tzatziki", "Chili-Sauce", "Kräutersoße", "Curry Sauce",
	"Ketchup", "Mayonnaise", NoSauce,
}

var SaladDressings = []string{"Joghurt", "French", "Essig/Öl"}

var PommesSauces = []string{"Ketchup", "Mayonnaise", NoSauce}

var PizzaRollSauces = []string{"Joghurt", "Kräuterremoulade", "Chilicheese", "Cocktail", "Aioli", "Tzatziki"}

var BeerTypes = []string{"Becks", "Herrenhäuser"}

// MeatTypes holds the wizard's meat choices. The catalog currently offers a
// single meat, so the first entry is always preselected.
var MeatTypes = []string{"mit Kalbfleisch"}

var SaladExclusions = []string{
	"ohne Eisbergsalat",
	"ohne Zwiebel",
	"ohne Rotkohl",
	"ohne Tomaten",
	"ohne Gurken",
}

var SideDishes = []string{"Pommes frites", "Bulgur"}

var BuildYourOwnIngredients = []string{
	"Ananas", "Artischocken", "Barbecuesauce", "Brokkoli", "Champignons frisch",
	"Chili-Cheese-Soße", "Edamer", "Formfleisch-Vorderschinken", "Gewürzgurken",
	"Gorgonzola", "Gyros", "Hirtenkäse", "Hähnchenbrust", "Jalapeños",
	"Knoblauchwurst", "Mais", "Milde Peperoni", "Mozzarella", "Oliven", "Paprika",
	"Parmaputenschinken", "Peperoni, scharf", "Remoulade", "Rindermett", "Rindersalami",
	"Rucola", "Röstzwiebeln", "Sauce Hollandaise", "Spiegelei", "Spinat", "Tomaten",
	"Würstchen", "Zwiebeln", "ohne Zutat",
}

var PizzaExtras = []string{
	"Ananas", "Brokkoli", "Champignons frisch", "Edamer", "Gewürzgurken",
	"Hähnchenbrust", "Jalapeños", "Mais", "Mozzarella", "Oliven", "Paprika",
	"Peperoni mild", "Putenschinken", "Rindersalami", "Sauce Hollandaise", "Spinat",
	"Sucuk", "Tomaten", "Zwiebeln",
}

func Contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
