package catalog

import "doener-shop/models"

const (
	SectionMeat         = "fleischgerichte"
	SectionSnacks       = "snacks"
	SectionVegetarian   = "vegetarische-gerichte"
	SectionPizza        = "pizza"
	SectionPizzaRolls   = "pizzabroetchen"
	SectionPasta        = "pasta"
	SectionCroques      = "croques"
	SectionSalads       = "salate"
	SectionDips         = "dips"
	SectionSoftDrinks   = "alkoholfreie-getraenke"
	SectionAlcoholDrink = "alkoholische-getraenke"
)

func meatDishes() []models.MenuItem {
	return []models.MenuItem{
		{ID: 529, Number: 1, Name: "Drehspieß Tasche", Description: "mit Drehspieß im Fladenbrot, gemischtem Salat & Soße", Price: 750, IsMeatSelection: true, OffersSauce: true, Allergens: "A1, G, 1a, 12, 18"},
		{ID: 530, Number: 2, Name: "Drehspieß Dürüm", Description: "mit Drehspieß, gemischtem Salat & Soße", Price: 850, IsMeatSelection: true, OffersSauce: true, Allergens: "A1, G, 1a, 12, 18"},
		{ID: 531, Number: 3, Name: "Drehspieß Box", Description: "mit Drehspieß, Pommes frites & Soße", Price: 750, IsMeatSelection: true, OffersSauce: true, Allergens: "A1, 1a, 18"},
		{ID: 532, Number: 4, Name: "Drehspieß Teller", Description: "mit Drehspieß, Pommes frites oder Bulgur & Soße", Price: 1350, IsMeatSelection: true, OffersSauce: true, Allergens: "A1, G, 1a, 4, 12, 18"},
		{ID: 533, Number: 5, Name: "Drehspieß (mit Salat)", Description: "mit Drehspieß, Salat & Soße", Price: 1350, IsMeatSelection: true, OffersSauce: true, Allergens: "A1, G, 1a, 12, 18"},
		{ID: 534, Number: 6, Name: "Sucuk Tasche", Description: "mit türkischer Knoblauchwurst im Fladenbrot, mit gemischtem Salat & Soße", Price: 900, OffersSauce: true, Allergens: "A1, G, 1a, 4, 9, 12, 18"},
		{ID: 535, Number: 7, Name: "Sucuk Teller", Description: "mit türkischer Knoblauchwurst mit Bulgur oder Pommes, mit gemischtem Salat & Soße", Price: 1350, OffersSauce: true, Allergens: "A1, G, 1a, 4, 9, 12, 18"},
		{ID: 536, Number: 8, Name: "Lahmacun Salat", Description: "mit gemischtem Salat & Soße", Price: 600, OffersSauce: true, Allergens: "A1"},
		{ID: 537, Number: 9, Name: "Lahmacun mit Drehspieß", Description: "Drehspieß mit gemischtem Salat & Soße", Price: 700, IsMeatSelection: true, OffersSauce: true, Allergens: "A1, G, 1a, 12, 18"},
		{ID: 538, Number: 10, Name: "Lahmacun Weichkäse", Description: "mit Weichkäse, gemischtem Salat & Soße", Price: 700, OffersSauce: true, Allergens: "A1"},
	}
}

func snacks() []models.MenuItem {
	return []models.MenuItem{
		{ID: 580, Number: 11, Name: "Hamburger", Description: "125g Burger-Patty", Price: 550, OffersSauce: true, Allergens: "A1, G"},
		{ID: 581, Number: 12, Name: "Cheeseburger", Description: "125g Burger-Patty mit Schmelzkäse", Price: 600, OffersSauce: true, Allergens: "A1, C"},
		{ID: 582, Number: 13, Name: "Currywurst & Pommes", Description: "mit würziger Currysauce und knusprigen Pommes frites", Price: 850, Allergens: "A1, C, 4, 8, 9, I, 12"},
		{ID: 583, Number: 14, Name: "Hamburger Menü", Description: "125g Burger-Patty, Pommes frites und Getränk", Price: 1100, OffersSauce: true, Allergens: "A1, G"},
		{ID: 584, Number: 15, Name: "Cheeseburger Menü", Description: "125g Burger-Patty mit Schmelzkäse, Pommes frites und Getränk", Price: 1150, OffersSauce: true, Allergens: "A1, C"},
		{ID: 585, Number: 16, Name: "Chicken-Nuggets Menü", Description: "6 Stück mit Pommes frites & Getränk", Price: 1000, OffersSauce: true, Allergens: "A1, 8, 9, I"},
		{ID: 586, Number: 17, Name: "Pommes frites", Price: 400, OffersSauce: true},
		{ID: 587, Number: 18, Name: "Chicken-Nuggets 6 Stück", Price: 600, OffersSauce: true, Allergens: "A1, 8, 9, I"},
	}
}

func vegetarianDishes() []models.MenuItem {
	return []models.MenuItem{
		{ID: 519, Number: 19, Name: "Zigaretten Börek", Description: "knusprige Börek-Röllchen, gefüllt mit Käse", Price: 100, Allergens: "A1, G"},
		{ID: 520, Number: 20, Name: "Halloumi-Tasche", Description: "im Fladenbrot mit gegrilltem Halloumi, frischem Salat & Soße", Price: 700, OffersSauce: true, Allergens: "A1, G"},
		{ID: 521, Number: 21, Name: "Halloumi-Dürüm", Description: "im dünnen Fladenbrot mit gegrilltem Halloumi, frischem Salat & Soße", Price: 800, OffersSauce: true, Allergens: "A1, G"},
		{ID: 522, Number: 22, Name: "Halloumi-Teller", Description: "mit gegrilltem Halloumi, Bulgur oder Pommes, Salat & Soße", Price: 1350, OffersSauce: true, Allergens: "A1, G"},
		{ID: 523, Number: 23, Name: "Falafel-Tasche", Description: "im Fladenbrot mit hausgemachten Falafel, gemischtem Salat & Soße", Price: 700, OffersSauce: true, Allergens: "A1, F"},
		{ID: 524, Number: 24, Name: "Falafel-Dürüm", Description: "im dünnen Fladenbrot mit Falafel, gemischtem Salat & Soße", Price: 800, OffersSauce: true, Allergens: "A1, F"},
		{ID: 525, Number: 25, Name: "Falafel-Teller", Description: "mit Bulgur oder Pommes frites, gemischtem Salat & Soße", Price: 1350, OffersSauce: true, Allergens: "A1, F"},
	}
}

func pizzas() []models.MenuItem {
	items := []models.MenuItem{
		{ID: 626, Number: 26, Name: "Pizza Margherita", Price: 900, Allergens: "A1, G"},
		{ID: 627, Number: 27, Name: "Pizza Rindersalami", Description: "mit Rindersalami", Price: 1000, Allergens: "A1, 1, C, G, 9, I"},
		{ID: 628, Number: 28, Name: "Pizza Putenschinken", Description: "mit Putenschinken", Price: 1000, Allergens: "A1, 1, G, 9, I, 12"},
		{ID: 629, Number: 29, Name: "Pizza Funghi", Description: "mit Champignons", Price: 1000, Allergens: "A1, 1"},
		{ID: 630, Number: 30, Name: "Pizza Tonno", Description: "mit Thunfisch & Zwiebeln", Price: 1100, Allergens: "A1, 1"},
		{ID: 631, Number: 31, Name: "Pizza Sucuk", Description: "mit Knoblauchwurst", Price: 1100, Allergens: "A1, 1, G, 4, 9, 3, 12, 18"},
		{ID: 632, Number: 32, Name: "Pizza Hollandaise", Description: "mit Hähnchenbrustfilet, Broccoli, Tomaten, Hollandaise-Soße", Price: 1200, Allergens: "A1, G, C, 3"},
		{ID: 633, Number: 33, Name: "Pizza Hawaii", Description: "mit Ananas & Putenschinken", Price: 1200, Allergens: "A1, 1, G, 9, I, 12"},
		{ID: 634, Number: 34, Name: "Pizza Athen", Description: "mit Spinat & Weichkäse", Price: 1200, Allergens: "A1, 1"},
		{ID: 635, Number: 35, Name: "Pizza Rio", Description: "mit Sucuk, Weichkäse, Zwiebeln & Peperoni", Price: 1250, Allergens: "A1, 1, G, 4, 9, 3, 14, 12, 18"},
		{ID: 636, Number: 36, Name: "Calzone", Description: "mit 3 Zutaten nach Wahl, jede extra Zutat +1 €", Price: 1200, Allergens: "A1, 1"},
		{ID: 637, Number: 37, Name: "Pizza Art Drehspieß", Description: "mit Drehspieß & Zwiebeln", Price: 1250, Allergens: "A1, G, 1a, 14, 12, 18"},
		{ID: 638, Number: 38, Name: "Pizza Hamburger", Description: "mit Hamburger-Patty, Salat, Burgersoße", Price: 1200, Allergens: "A1, 1, C, 3"},
		{ID: 639, Number: 39, Name: "Pizza Mozzarella", Description: "mit frischem Mozzarella & Tomaten", Price: 1200, Allergens: "A1, 1"},
		{ID: 640, Number: 40, Name: "Pizza Italia", Description: "mit Rindersalami, Mozzarella & frischem Basilikum", Price: 1100, Allergens: "A1, 1, C, G, 9, I"},
		{ID: 641, Number: 41, Name: "Pizza Rustica", Description: "mit Putenschinken, Rindersalami & frischen Champignons", Price: 1100, Allergens: "A1, 1, C, 8, 9, I"},
		{ID: 642, Number: 42, Name: "Pizza Grüne Oase", Description: "mit Paprika, Tomaten, Broccoli & Champignons", Price: 1200, Allergens: "A1, 1"},
		{ID: 643, Number: 43, Name: "Pizza Mexico", Description: "mit Jalapenos, Hähnchenfleisch, Mais, Paprika & Champignons", Price: 1200, Allergens: "A1, 1, C, 3, 9, I"},
		{ID: 644, Number: 44, Name: "Pizza Quattro Stagioni", Description: "mit Putenschinken, Rindersalami, Champignons & Artischocken", Price: 1200, Allergens: "A1, 1, C, 8, 9, I"},
		{ID: 645, Number: 45, Name: "Pizza India", Description: "mit Putenschinken, Hähnchenbrustfilet, Ananas & Currysauce", Price: 1200, Allergens: "A1, 1, G, 9, I, 12"},
		{ID: 646, Number: 46, Name: "Pizza Diavolo", Description: "mit Rindersalami, Champignons & Peperoni", Price: 1250, Allergens: "A1, 1, C, G, 9, I"},
		{ID: 647, Number: 47, Name: "Pizza Brötchen", Description: "jede extra Zutat +1 €", Price: 500, Allergens: "A1, 1, G"},
	}
	for i := range items {
		items[i].IsPizza = true
	}

	return append(items, models.MenuItem{
		ID:             649,
		Name:           "Pizza nach Wunsch",
		Description:    "bis zu 4 Zutaten nach Wahl, jede extra Zutat +1 €",
		Price:          PizzaSizes[0].Price,
		Sizes:          PizzaSizes,
		IsBuildYourOwn: true,
		Allergens:      "A1, 1",
	})
}

func pizzaRolls() []models.MenuItem {
	return []models.MenuItem{
		{ID: 673, Number: 73, Name: "Pizzabrötchen mit Käse", Description: "8 Stück", Price: 600, OffersSauce: true, Allergens: "A1, G"},
		{ID: 674, Number: 74, Name: "Pizzabrötchen mit Sucuk", Description: "8 Stück", Price: 700, OffersSauce: true, Allergens: "A1, G, 4, 9"},
		{ID: 675, Number: 75, Name: "Pizzabrötchen mit Spinat & Feta", Description: "8 Stück", Price: 700, OffersSauce: true, Allergens: "A1, G"},
		{ID: 676, Number: 76, Name: "Pizzabrötchen mit Drehspieß", Description: "8 Stück", Price: 750, OffersSauce: true, Allergens: "A1, G, 1a, 12, 18"},
	}
}

func pasta() []models.MenuItem {
	return []models.MenuItem{
		{ID: 677, Number: 77, Name: "Nudeln Napoli", Description: "mit Tomatensoße", Price: 850, IsPasta: true, Allergens: "A1, C"},
		{ID: 678, Number: 78, Name: "Nudeln Bolognese", Description: "mit Rinderhackfleischsoße", Price: 950, IsPasta: true, Allergens: "A1, C"},
		{ID: 679, Number: 79, Name: "Nudeln Hähnchen-Sahne", Description: "mit Hähnchenbrust in Sahnesoße", Price: 1050, IsPasta: true, Allergens: "A1, C, G"},
		{ID: 680, Number: 80, Name: "Nudeln Gorgonzola", Description: "mit Gorgonzola-Sahnesoße", Price: 1000, IsPasta: true, Allergens: "A1, C, G"},
	}
}

func croques() []models.MenuItem {
	return []models.MenuItem{
		{ID: 548, Number: 48, Name: "Brokkoli Croque", Description: "mit Broccoli, Zwiebeln, Paprika & Spinat", Price: 800, Allergens: "A1, 1"},
		{ID: 549, Number: 49, Name: "Rindersalami Croque", Description: "mit Rindersalami", Price: 850, Allergens: "A1, 1, C, G, 9, I"},
		{ID: 550, Number: 50, Name: "Putenschinken Croque", Description: "mit Putenschinken", Price: 850, Allergens: "A1, 1, G, 9, I, 12"},
		{ID: 551, Number: 51, Name: "Tonno Croque", Description: "mit Thunfisch & Zwiebeln", Price: 900, Allergens: "A1, 1"},
		{ID: 552, Number: 52, Name: "Hawaii Croque", Description: "mit Putenschinken & Ananas", Price: 900, Allergens: "A1, 1, G, 9, I, 12"},
		{ID: 553, Number: 53, Name: "Feta Croque", Description: "mit Weichkäse", Price: 850, Allergens: "A1, 1"},
		{ID: 554, Number: 54, Name: "Mozzarella Croque", Description: "mit Mozzarella & frischen Tomaten", Price: 850, Allergens: "A1, 1"},
		{ID: 555, Number: 55, Name: "Sucuk Croque", Description: "mit Knoblauchwurst", Price: 900, Allergens: "A1, 1, G, 4, 9, 3, 12, 18"},
		{ID: 556, Number: 56, Name: "Pute Croque", Description: "mit gegrilltem Putenfleisch, Zwiebeln & Mozzarella", Price: 900, Allergens: "A1, 1"},
		{ID: 557, Number: 57, Name: "Funghi Croque", Description: "mit Champignons, Putenschinken & Weichkäse", Price: 900, Allergens: "A1, 1, G, 9, I, 12"},
		{ID: 558, Number: 58, Name: "Hamburger Croque", Description: "mit Hamburger-Patty, Röstzwiebeln", Price: 900, Allergens: "A1, 1, G, I, 4, 3"},
		{ID: 559, Number: 59, Name: "Nuggets Croque", Description: "mit Chicken-Nuggets & Paprika", Price: 900, Allergens: "A1, 1, 8, 9, I"},
		{ID: 560, Number: 60, Name: "Jalapenos Croque", Description: "mit Putenschinken, Rindersalami & Peperoni", Price: 900, Allergens: "A1, 1, G, 9, I, 12"},
		{ID: 561, Number: 61, Name: "Drehspieß Croque", Description: "mit Drehspieß", Price: 900, Allergens: "A1, 1, G, 4, 9, 3, 12, 18"},
	}
}

func salads() []models.MenuItem {
	return []models.MenuItem{
		{ID: 562, Number: 62, Name: "Bauernsalat", Description: "mit Eisbergsalat, Gurken, Tomaten und Zwiebeln", Price: 700, OffersSauce: true},
		{ID: 563, Number: 63, Name: "Hirtensalat", Description: "mit Eisbergsalat, Gurken, Tomaten, Zwiebeln und Feta-Käse", Price: 750, OffersSauce: true},
		{ID: 564, Number: 64, Name: "Thunfischsalat", Description: "mit Eisbergsalat, Gurken, Tomaten, Zwiebeln und Thunfisch", Price: 850, OffersSauce: true},
		{ID: 565, Number: 65, Name: "Hähnchenbrust-Salat", Description: "mit Eisbergsalat, Gurken, Tomaten, Zwiebeln und gegrillter Hähnchenbrust", Price: 900, OffersSauce: true},
		{ID: 566, Number: 66, Name: "Mozzarella-Salat", Description: "mit Eisbergsalat, Tomaten, frischem Mozzarella und Basilikum", Price: 850, OffersSauce: true},
	}
}

func dips() []models.MenuItem {
	return []models.MenuItem{
		{ID: 567, Number: 67, Name: "Tzatziki", Price: 200},
		{ID: 568, Number: 68, Name: "Chili-Sauce", Price: 200},
		{ID: 569, Number: 69, Name: "Kräutersoße", Price: 200},
		{ID: 570, Number: 70, Name: "Curry Sauce", Price: 200},
		{ID: 571, Number: 71, Name: "Ketchup", Price: 100},
		{ID: 572, Number: 72, Name: "Mayonnaise", Price: 100},
	}
}

func softDrinks() []models.MenuItem {
	return []models.MenuItem{
		{ID: 100, Name: "Coca-Cola", Description: "0,33 L", Price: 200},
		{ID: 101, Name: "Coca-Cola Zero", Description: "0,33 L", Price: 200},
		{ID: 102, Name: "Fanta Orange", Description: "0,33 L", Price: 200},
		{ID: 103, Name: "Fanta Exotic", Description: "0,33 L", Price: 200},
		{ID: 104, Name: "Sprite", Description: "0,33 L", Price: 200},
		{ID: 105, Name: "Mezzo-mix", Description: "0,33 L", Price: 200},
		{ID: 106, Name: "Apfelschorle", Description: "0,33 L", Price: 200},
		{ID: 107, Name: "Eistee Pfirsich", Description: "0,33 L", Price: 200},
		{ID: 108, Name: "Capri-Sonne", Description: "0,20 L", Price: 150},
		{ID: 109, Name: "Ayran", Description: "0,25 L", Price: 150},
		{ID: 110, Name: "Wasser", Description: "0,33 L", Price: 200},
		{ID: 112, Name: "Alkoholfreies Bier", Description: "0,33 L", Price: 200},
	}
}

func alcoholicDrinks() []models.MenuItem {
	return []models.MenuItem{
		{ID: 593, Name: "Bier", Description: "0,33 L, Sorte nach Wahl", Price: 250, IsBeerSelection: true, IsAgeRestricted: true},
		{ID: 594, Name: "Weinschorle", Description: "0,33 L", Price: 300, IsAgeRestricted: true},
	}
}

// DefaultSections is the restaurant menu in display order.
func DefaultSections() []models.MenuSection {
	return []models.MenuSection{
		{Key: SectionMeat, Title: "Drehspieß", Description: "Döner, Dürüm, Lahmacun und mehr", Items: meatDishes()},
		{Key: SectionSnacks, Title: "Snacks", Description: "Kleine Gerichte und Menüs", Items: snacks()},
		{Key: SectionVegetarian, Title: "Vegetarische Gerichte", Description: "Fleischlose Alternativen", Items: vegetarianDishes()},
		{Key: SectionPizza, Title: "Pizza", Description: "Frisch gebackene Pizzen", Items: pizzas()},
		{Key: SectionPizzaRolls, Title: "Pizzabrötchen", Description: "Sauce nach Wahl", Items: pizzaRolls()},
		{Key: SectionPasta, Title: "Pasta", Description: "Nudelsorte nach Wahl", Items: pasta()},
		{Key: SectionCroques, Title: "Croques", Items: croques()},
		{Key: SectionSalads, Title: "Salate", Description: "Alle Salate mit einem Dressing Ihrer Wahl", Items: salads()},
		{Key: SectionDips, Title: "Dips & Soßen", Items: dips()},
		{Key: SectionSoftDrinks, Title: "Alkoholfreie Getränke", Items: softDrinks()},
		{Key: SectionAlcoholDrink, Title: "Alkoholische Getränke", Description: "Abgabe nur an Personen ab 18 Jahren", Items: alcoholicDrinks()},
	}
}
