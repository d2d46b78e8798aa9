package storage

import "restaurant-ordering/menu-svc/domain"

// DefaultMenu is the seeded menu served until the back-office edits it.
func DefaultMenu() []domain.Product {
	burgerAddOns := []domain.AddOn{
		{Name: "Queso extra", Price: 2000},
		{Name: "Tocineta", Price: 3000},
		{Name: "Cebolla caramelizada", Price: 1500},
	}
	pizzaAddOns := []domain.AddOn{
		{Name: "Queso extra", Price: 3000},
		{Name: "Champiñones", Price: 2500},
	}

	return []domain.Product{
		{
			Name:        "Hamburguesa Clásica",
			Description: "Carne de res, lechuga, tomate y salsa de la casa",
			Price:       15000,
			ImageURL:    "/assets/menu/hamburguesa-clasica.png",
			Category:    "hamburguesas",
			AddOns:      burgerAddOns,
			Available:   true,
		},
		{
			Name:        "Hamburguesa Doble",
			Description: "Doble carne, doble queso",
			Price:       21000,
			ImageURL:    "/assets/menu/hamburguesa-doble.png",
			Category:    "hamburguesas",
			AddOns:      burgerAddOns,
			Available:   true,
		},
		{
			Name:        "Pizza Margarita",
			Description: "Salsa de tomate, mozzarella y albahaca",
			Price:       22000,
			ImageURL:    "/assets/menu/pizza-margarita.png",
			Category:    "pizzas",
			AddOns:      pizzaAddOns,
			Available:   true,
		},
		{
			Name:        "Perro Caliente",
			Description: "Salchicha americana, papas ripio y salsas",
			Price:       12000,
			ImageURL:    "/assets/menu/perro-caliente.png",
			Category:    "perros",
			AddOns: []domain.AddOn{
				{Name: "Queso extra", Price: 2000},
			},
			Available: true,
		},
		{
			Name:        "Limonada de Coco",
			Description: "Limonada natural con crema de coco",
			Price:       8000,
			ImageURL:    "/assets/menu/limonada-coco.png",
			Category:    "bebidas",
			AddOns:      []domain.AddOn{},
			Available:   true,
		},
		{
			Name:        "Gaseosa",
			Description: "Botella personal 400ml",
			Price:       5000,
			ImageURL:    "/assets/menu/gaseosa.png",
			Category:    "bebidas",
			AddOns:      []domain.AddOn{},
			Available:   true,
		},
	}
}
