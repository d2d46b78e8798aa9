package httpapi

import (
	"strings"

	"restaurant-ordering/cart-svc/domain"
)

// The menu frontend never agreed on one descriptor shape: products arrive as
// name/nombre, price/precio, image/imagen/imgURL and so on. The tolerance is
// kept here, at the boundary, so the store only ever sees the canonical
// ProductInput.

const placeholderName = "Producto sin nombre"

type addOnPayload struct {
	Name   string `json:"name"`
	Nombre string `json:"nombre"`
	Price  int64  `json:"price"`
	Precio int64  `json:"precio"`
}

type addItemPayload struct {
	Name        string         `json:"name"`
	Nombre      string         `json:"nombre"`
	Price       int64          `json:"price"`
	Precio      int64          `json:"precio"`
	Image       string         `json:"image"`
	Imagen      string         `json:"imagen"`
	ImgURL      string         `json:"imgURL"`
	Category    string         `json:"category"`
	Categoria   string         `json:"categoria"`
	AddOns      []addOnPayload `json:"add_ons"`
	Adicionales []addOnPayload `json:"adicionales"`
}

// normalizeProduct maps a loose descriptor onto the canonical input. Missing
// names become a placeholder and non-positive prices become 0; descriptors
// are never rejected.
func normalizeProduct(p addItemPayload) (domain.ProductInput, []domain.AddOn) {
	input := domain.ProductInput{
		Name:     firstNonEmpty(p.Name, p.Nombre),
		Price:    firstPositive(p.Price, p.Precio),
		Image:    firstNonEmpty(p.Image, p.Imagen, p.ImgURL),
		Category: firstNonEmpty(p.Category, p.Categoria),
	}
	if input.Name == "" {
		input.Name = placeholderName
	}

	raw := p.AddOns
	if len(raw) == 0 {
		raw = p.Adicionales
	}
	addOns := make([]domain.AddOn, 0, len(raw))
	for _, a := range raw {
		addOns = append(addOns, domain.AddOn{
			Name:  firstNonEmpty(a.Name, a.Nombre),
			Price: firstPositive(a.Price, a.Precio),
		})
	}
	return input, addOns
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstPositive(values ...int64) int64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
