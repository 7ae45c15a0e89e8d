package handler

import (
	"time"

	"github.com/thevanityindia/vanity-server/internal/model"
)

// UserDTO is the wire shape of a principal.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserDTO(user model.User) UserDTO {
	return UserDTO{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}

// ProductDTO is the wire shape of a catalog product. Price is always the
// canonical numeric form; clients normalize any legacy string prices on
// their side of the boundary.
type ProductDTO struct {
	ID          string  `json:"id"`
	Brand       string  `json:"brand"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Subcategory string  `json:"subcategory,omitempty"`
	Description string  `json:"description,omitempty"`
}

func toProductDTO(product model.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID.String(),
		Brand:       product.Brand,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Description: product.Description,
	}
}

func toProductDTOs(products []model.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, toProductDTO(product))
	}
	return dtos
}

// CartLineDTO carries the opaque line id assigned by the backend,
// distinct from the product id.
type CartLineDTO struct {
	LineID    string `json:"lineId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartDTO is the full cart document returned by every cart operation.
type CartDTO struct {
	Items []CartLineDTO `json:"items"`
}

func toCartDTO(cart model.Cart) CartDTO {
	items := make([]CartLineDTO, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, CartLineDTO{
			LineID:    line.ID.String(),
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
		})
	}
	return CartDTO{Items: items}
}

// WishlistEntryDTO is a bare product reference.
type WishlistEntryDTO struct {
	ProductID string `json:"productId"`
}

// WishlistDTO is the full wishlist document.
type WishlistDTO struct {
	Items []WishlistEntryDTO `json:"items"`
}

func toWishlistDTO(wishlist model.Wishlist) WishlistDTO {
	items := make([]WishlistEntryDTO, 0, len(wishlist.Entries))
	for _, entry := range wishlist.Entries {
		items = append(items, WishlistEntryDTO{ProductID: entry.ProductID.String()})
	}
	return WishlistDTO{Items: items}
}

// AddressDTO is the wire shape of an address-book entry.
type AddressDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func toAddressDTO(address model.Address) AddressDTO {
	return AddressDTO{
		ID:      address.ID.String(),
		Name:    address.Name,
		Phone:   address.Phone,
		Line1:   address.Line1,
		Line2:   address.Line2,
		City:    address.City,
		State:   address.State,
		Pincode: address.Pincode,
	}
}

// OrderItemDTO is a product snapshot within an order.
type OrderItemDTO struct {
	ProductID string  `json:"productId"`
	Brand     string  `json:"brand"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// OrderDTO is the wire shape of a submitted order.
type OrderDTO struct {
	ID            string         `json:"id"`
	Items         []OrderItemDTO `json:"items"`
	Address       AddressDTO     `json:"address"`
	PaymentMethod string         `json:"paymentMethod"`
	PaymentID     string         `json:"paymentId,omitempty"`
	Total         float64        `json:"total"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func toOrderDTO(order model.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ProductID: item.ProductID.String(),
			Brand:     item.Brand,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return OrderDTO{
		ID:            order.ID.String(),
		Items:         items,
		Address:       toAddressDTO(order.Address),
		PaymentMethod: string(order.PaymentMethod),
		PaymentID:     order.PaymentID,
		Total:         order.Total,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
	}
}

func toOrderDTOs(orders []model.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, toOrderDTO(order))
	}
	return dtos
}

func toAddressDTOs(addresses []model.Address) []AddressDTO {
	dtos := make([]AddressDTO, 0, len(addresses))
	for _, address := range addresses {
		dtos = append(dtos, toAddressDTO(address))
	}
	return dtos
}
