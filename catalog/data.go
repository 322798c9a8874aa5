package catalog

// restaurants is the storefront's demo catalog.
var restaurants = []Restaurant{
	{
		ID:           "1",
		Name:         "La Bella Italia",
		Cuisine:      "Italien",
		Rating:       4.8,
		DeliveryTime: "25-35 min",
		Image:        "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=800",
		Address:      "15 rue de la Paix, Paris",
		Description:  "Authentique cuisine italienne avec des produits frais importés directement d'Italie.",
		Menu: []MenuSection{
			{
				Category: "Pizzas",
				Items: []MenuItem{
					{
						ID: "1-1", Name: "Margherita", Description: "Tomate, mozzarella, basilic frais",
						Price: 12.90, Image: "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?w=400",
						Options: []MenuOption{{Name: "Extra fromage", Price: 2}, {Name: "Pâte fine", Price: 0}},
					},
					{
						ID: "1-2", Name: "Quattro Formaggi", Description: "Mozzarella, gorgonzola, parmesan, chèvre",
						Price: 15.90, Image: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400",
						Options: []MenuOption{{Name: "Extra fromage", Price: 2}},
					},
					{
						ID: "1-3", Name: "Diavola", Description: "Tomate, mozzarella, pepperoni épicé",
						Price: 14.90, Image: "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=400",
					},
				},
			},
			{
				Category: "Pâtes",
				Items: []MenuItem{
					{
						ID: "1-4", Name: "Carbonara", Description: "Guanciale, œuf, parmesan, poivre noir",
						Price: 13.90, Image: "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=400",
					},
					{
						ID: "1-5", Name: "Bolognaise", Description: "Sauce tomate, viande hachée, herbes",
						Price: 12.90, Image: "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400",
					},
				},
			},
			{
				Category: "Desserts",
				Items: []MenuItem{
					{
						ID: "1-6", Name: "Tiramisu", Description: "Mascarpone, café, cacao",
						Price: 7.90, Image: "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=400",
					},
					{
						ID: "1-7", Name: "Panna Cotta", Description: "Crème vanille, coulis fruits rouges",
						Price: 6.90, Image: "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400",
					},
				},
			},
		},
	},
	{
		ID:           "2",
		Name:         "Sushi Master",
		Cuisine:      "Japonais",
		Rating:       4.9,
		DeliveryTime: "30-40 min",
		Image:        "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=800",
		Address:      "42 avenue des Champs-Élysées, Paris",
		Description:  "Les meilleurs sushis de Paris, préparés par un chef japonais expérimenté.",
		Menu: []MenuSection{
			{
				Category: "Sushis & Makis",
				Items: []MenuItem{
					{
						ID: "2-1", Name: "Assortiment 18 pièces", Description: "Saumon, thon, crevette, avocat",
						Price: 24.90, Image: "https://images.unsplash.com/photo-1553621042-f6e147245754?w=400",
					},
					{
						ID: "2-2", Name: "California Roll", Description: "8 pièces, crabe, avocat, concombre",
						Price: 12.90, Image: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400",
					},
				},
			},
			{
				Category: "Plats chauds",
				Items: []MenuItem{
					{
						ID: "2-3", Name: "Ramen Tonkotsu", Description: "Bouillon porc, œuf, porc chashu, algues",
						Price: 15.90, Image: "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400",
					},
				},
			},
		},
	},
}
