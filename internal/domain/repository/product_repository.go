package repository

import "github.com/tu-usuario/papeleria-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* retornan (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila hasta el fin de la
	// transacción (SELECT FOR UPDATE). Fuera de una transacción equivale a GetByID.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock absoluto del producto.
	UpdateStock(id string, stock int64) error
	// List devuelve todos los productos ordenados por nombre.
	List() ([]*entity.Product, error)
	// Delete falla con domain.ErrProductReferenced si alguna línea de venta
	// o compra referencia al producto.
	Delete(id string) error
}
