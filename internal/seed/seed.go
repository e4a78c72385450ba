// Package seed holds the demo catalog and accounts the storefront
// boots with. Everything is deterministic so restarts and tests see the
// same ids.
package seed

import (
	"time"

	"github.com/musemart/musemart-backend/internal/store"
	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
)

// Categories is the catalog navigation, one entry per product category.
func Categories() []domain.Category {
	return []domain.Category{
		{Key: enums.CategoryGuitars, Title: "Гитары", Icon: "guitar"},
		{Key: enums.CategoryKeyboards, Title: "Клавишные", Icon: "piano"},
		{Key: enums.CategoryDrums, Title: "Ударные", Icon: "drums"},
		{Key: enums.CategoryBrass, Title: "Духовые", Icon: "trumpet"},
		{Key: enums.CategoryStrings, Title: "Смычковые", Icon: "violin"},
		{Key: enums.CategoryStudio, Title: "Студия", Icon: "mic"},
		{Key: enums.CategoryDJ, Title: "DJ", Icon: "disc"},
		{Key: enums.CategoryAccessories, Title: "Аксессуары", Icon: "cable"},
	}
}

// Initial builds the boot state: the full catalog, the staff and demo
// customer accounts, and a little order history for the demo customer.
func Initial(now time.Time) store.State {
	products := Products()
	users := Users(now)

	addresses := []domain.Address{
		{
			ID:         "addr_001",
			UserID:     "usr_005",
			Title:      "Дом",
			FullName:   "Антон Сидоров",
			Street:     "ул. Ленина, д. 123, кв. 45",
			City:       "Москва",
			PostalCode: "123456",
			Country:    "Россия",
			Phone:      "+7 (999) 123-45-67",
			IsDefault:  true,
		},
		{
			ID:         "addr_002",
			UserID:     "usr_005",
			Title:      "Работа",
			FullName:   "Антон Сидоров",
			Street:     "ул. Пушкина, д. 67, офис 12",
			City:       "Москва",
			PostalCode: "123457",
			Country:    "Россия",
			Phone:      "+7 (999) 123-45-68",
			IsDefault:  false,
		},
	}

	strat := products[0]
	c40 := products[3]
	lesPaul := products[1]
	sm7b := productByID(products, "prd_023")

	delivered := now.AddDate(0, 0, -5)
	eta2 := now.AddDate(0, 0, 5)
	orders := []domain.Order{
		{
			ID:          "ord_001",
			UserID:      "usr_005",
			OrderNumber: "ORD-001",
			Items: []domain.OrderItem{
				{ID: "item_001", ProductID: strat.ID, ProductName: strat.Name, Quantity: 1, Price: strat.Price, Image: strat.Image},
				{ID: "item_002", ProductID: c40.ID, ProductName: c40.Name, Quantity: 2, Price: c40.Price, Image: c40.Image},
			},
			TotalAmount:       strat.Price + 2*c40.Price,
			Status:            enums.OrderStatusDelivered,
			PaymentMethod:     enums.PaymentMethodCard,
			PaymentStatus:     enums.PaymentStatusPaid,
			ShippingAddress:   addresses[0],
			CreatedAt:         now.AddDate(0, 0, -10),
			UpdatedAt:         now.AddDate(0, 0, -2),
			EstimatedDelivery: &delivered,
		},
		{
			ID:          "ord_002",
			UserID:      "usr_005",
			OrderNumber: "ORD-002",
			Items: []domain.OrderItem{
				{ID: "item_003", ProductID: lesPaul.ID, ProductName: lesPaul.Name, Quantity: 1, Price: lesPaul.Price, Image: lesPaul.Image},
			},
			TotalAmount:       lesPaul.Price,
			Status:            enums.OrderStatusProcessing,
			PaymentMethod:     enums.PaymentMethodOnline,
			PaymentStatus:     enums.PaymentStatusPaid,
			ShippingAddress:   addresses[1],
			CreatedAt:         now.AddDate(0, 0, -2),
			UpdatedAt:         now.AddDate(0, 0, -1),
			EstimatedDelivery: &eta2,
		},
	}

	reviews := []domain.Review{
		{
			ID:          "rev_001",
			UserID:      "usr_005",
			ProductID:   strat.ID,
			ProductName: strat.Name,
			Rating:      5,
			Comment:     "Отличная гитара! Качество звука превосходное.",
			CreatedAt:   now.AddDate(0, 0, -5),
			IsVerified:  true,
		},
		{
			ID:          "rev_002",
			UserID:      "usr_005",
			ProductID:   sm7b.ID,
			ProductName: sm7b.Name,
			Rating:      4,
			Comment:     "Хороший микрофон, но немного тяжеловат.",
			CreatedAt:   now.AddDate(0, 0, -3),
			IsVerified:  true,
		},
	}

	return store.State{
		Products:  products,
		Users:     users,
		Orders:    orders,
		Reviews:   reviews,
		Addresses: addresses,
	}
}

// Users returns the seeded accounts. Credentials are demo plaintext on
// purpose; there is no real account data anywhere in the seed.
func Users(now time.Time) []domain.User {
	itDept := "IT"
	adminPos := "Главный администратор"
	salesDept := "Отдел продаж"
	managerPos := "Старший менеджер"
	antonPhone := "+7 (999) 123-45-67"

	return []domain.User{
		{
			ID:          "usr_001",
			Name:        "Алексей Петров",
			Email:       "admin@musemart.ru",
			Password:    "password123",
			Role:        enums.UserRoleAdmin,
			Status:      enums.UserStatusActive,
			CreatedAt:   now,
			Department:  &itDept,
			Position:    &adminPos,
			Permissions: enums.PermissionsForRole(enums.UserRoleAdmin),
		},
		{
			ID:          "usr_002",
			Name:        "Марина Сидорова",
			Email:       "marina@musemart.ru",
			Password:    "manager123",
			Role:        enums.UserRoleManager,
			Status:      enums.UserStatusActive,
			CreatedAt:   now.AddDate(0, 0, -12),
			Department:  &salesDept,
			Position:    &managerPos,
			Permissions: enums.PermissionsForRole(enums.UserRoleManager),
		},
		{
			ID:        "usr_003",
			Name:      "Иван Козлов",
			Email:     "ivan@example2.com",
			Password:  "user123",
			Role:      enums.UserRoleCustomer,
			Status:    enums.UserStatusActive,
			CreatedAt: now.AddDate(0, 0, -5),
		},
		{
			ID:        "usr_004",
			Name:      "Петр Иванов",
			Email:     "petr@example.com",
			Password:  "user123",
			Role:      enums.UserRoleCustomer,
			Status:    enums.UserStatusBlocked,
			CreatedAt: now.AddDate(0, 0, -50),
		},
		{
			ID:        "usr_005",
			Name:      "Антон Сидоров",
			Email:     "ant@gmail.com",
			Password:  "1234567890",
			Role:      enums.UserRoleCustomer,
			Status:    enums.UserStatusActive,
			CreatedAt: now.AddDate(0, 0, -50),
			Phone:     &antonPhone,
		},
	}
}

func productByID(products []domain.Product, id string) domain.Product {
	for _, p := range products {
		if p.ID == id {
			return p
		}
	}
	return domain.Product{}
}
