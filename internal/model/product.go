package model

// Product represents an item in the storefront catalogue. The catalogue
// is seeded at startup and never mutated afterwards.
type Product struct {
	ID            int              `json:"id" db:"id"`
	Slug          string           `json:"slug" db:"slug"`
	Name          string           `json:"name" db:"name"`
	Category      string           `json:"category" db:"category"`
	New           bool             `json:"new" db:"new"`
	Price         int              `json:"price" db:"price"`
	Description   string           `json:"description" db:"description"`
	Features      string           `json:"features" db:"features"`
	Includes      []IncludedItem   `json:"includes" db:"includes"`
	Image         string           `json:"image" db:"image"`
	CategoryImage string           `json:"categoryImage,omitempty" db:"category_image"`
	Gallery       *Gallery         `json:"gallery,omitempty" db:"gallery"`
	Others        []RelatedProduct `json:"others,omitempty" db:"others"`
}

// IncludedItem is one entry of a product's in-the-box list.
type IncludedItem struct {
	Quantity int    `json:"quantity"`
	Item     string `json:"item"`
}

// Gallery holds the three detail-page images of a product.
type Gallery struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// RelatedProduct is a "you may also like" reference to another product.
type RelatedProduct struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
