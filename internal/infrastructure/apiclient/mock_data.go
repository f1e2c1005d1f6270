package apiclient

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
)

// ── Datos fijos del servidor simulado ─────────────────────────────────────────
// Cada función construye una copia nueva: ninguna mutación local sobrevive a un refetch.

type mockCredential struct {
	username string
	password string
	user     entity.User
}

func adminUser() entity.User {
	return entity.User{
		ID:        "1",
		Username:  "admin",
		Email:     "admin@example.com",
		Role:      entity.RoleAdministrador,
		FirstName: "Juan",
		LastName:  "Pérez",
	}
}

func sellerUser() entity.User {
	return entity.User{
		ID:        "2",
		Username:  "vendedor",
		Email:     "vendedor@example.com",
		Role:      entity.RoleVendedor,
		FirstName: "María",
		LastName:  "García",
	}
}

func mockCredentials() []mockCredential {
	return []mockCredential{
		{username: "admin", password: "admin", user: adminUser()},
		{username: "vendedor", password: "vendedor", user: sellerUser()},
	}
}

func money(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func mockProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Aceitunas Verdes 500g", Category: "Aceitunas", Stock: 5, Unit: "unidades", Price: money(12.5), MinStock: 20, Supplier: "Proveedor A"},
		{ID: "2", Name: "Aceitunas Negras 500g", Category: "Aceitunas", Stock: 35, Unit: "unidades", Price: money(14.0), MinStock: 20, Supplier: "Proveedor A"},
		{ID: "3", Name: "Mermelada de Fresa 250g", Category: "Conservas", Stock: 8, Unit: "unidades", Price: money(8.75), MinStock: 15, Supplier: "Proveedor B"},
		{ID: "4", Name: "Aceite de Oliva Extra Virgen 1L", Category: "Aceites", Stock: 12, Unit: "litros", Price: money(25.0), MinStock: 25, Supplier: "Proveedor C"},
		{ID: "5", Name: "Manzanas Rojas", Category: "Frutas", Stock: 50, Unit: "kg", Price: money(3.5), MinStock: 30, Supplier: "Proveedor D"},
	}
}

// mockSales conserva los totales tal como vienen del servidor, aunque no cuadren con los ítems.
func mockSales() []entity.Sale {
	return []entity.Sale{
		{
			ID: "1", Date: "2024-01-15", Customer: "María González", Total: money(125.50), PaymentMethod: entity.PaymentCash,
			Items: []entity.SaleItem{
				{Product: "Aceitunas Verdes 500g", Quantity: 2, UnitPrice: money(12.5)},
				{Product: "Mermelada de Fresa 250g", Quantity: 3, UnitPrice: money(8.75)},
			},
		},
		{
			ID: "2", Date: "2024-01-14", Customer: "Juan Pérez", Total: money(89.00), PaymentMethod: entity.PaymentCard,
			Items: []entity.SaleItem{
				{Product: "Aceite de Oliva 1L", Quantity: 1, UnitPrice: money(25.0)},
				{Product: "Aceitunas Negras 500g", Quantity: 4, UnitPrice: money(14.0)},
			},
		},
		{
			ID: "3", Date: "2024-01-13", Customer: "Ana López", Total: money(45.75), PaymentMethod: entity.PaymentTransfer,
			Items: []entity.SaleItem{
				{Product: "Manzanas Rojas", Quantity: 5, UnitPrice: money(3.5)},
				{Product: "Mermelada de Fresa 250g", Quantity: 2, UnitPrice: money(8.75)},
			},
		},
	}
}

func mockPurchases() []entity.Purchase {
	return []entity.Purchase{
		{
			ID: "1", Date: "2024-01-15", Supplier: "Proveedor A", Total: money(850.00), Status: entity.PurchaseCompleted,
			Items: []entity.PurchaseItem{
				{Product: "Aceitunas Verdes 500g", Quantity: 50, UnitCost: money(8.5)},
				{Product: "Aceitunas Negras 500g", Quantity: 30, UnitCost: money(10.0)},
			},
		},
		{
			ID: "2", Date: "2024-01-14", Supplier: "Proveedor B", Total: money(450.00), Status: entity.PurchasePending,
			Items: []entity.PurchaseItem{
				{Product: "Mermelada de Fresa 250g", Quantity: 40, UnitCost: money(6.0)},
				{Product: "Aceite de Oliva 1L", Quantity: 15, UnitCost: money(18.0)},
			},
		},
		{
			ID: "3", Date: "2024-01-13", Supplier: "Proveedor C", Total: money(320.00), Status: entity.PurchaseCompleted,
			Items: []entity.PurchaseItem{
				{Product: "Manzanas Rojas", Quantity: 100, UnitCost: money(2.5)},
				{Product: "Aceite de Oliva 1L", Quantity: 8, UnitCost: money(18.0)},
			},
		},
	}
}

// SeedUsers usuarios del login simulado con su contraseña, para sembrar el backend.
func SeedUsers() []memory.SeedUser {
	creds := mockCredentials()
	out := make([]memory.SeedUser, len(creds))
	for i, c := range creds {
		out[i] = memory.SeedUser{User: c.user, Password: c.password}
	}
	return out
}

// SeedProducts, SeedSales y SeedPurchases exponen los datasets para poblar el backend simulado.
func SeedProducts() []entity.Product   { return mockProducts() }
func SeedSales() []entity.Sale         { return mockSales() }
func SeedPurchases() []entity.Purchase { return mockPurchases() }
