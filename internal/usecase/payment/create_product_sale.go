package payment

import (
	"context"
	"time"

	"github.com/berberbook/saloniumpro/internal/audit"
	domain "github.com/berberbook/saloniumpro/internal/domain/sale"
	"github.com/berberbook/saloniumpro/internal/httperr"
	"github.com/berberbook/saloniumpro/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaleLine struct {
	ProductID uint
	Quantity  int
}

type CreateProductSaleInput struct {
	CustomerID    uint
	Items         []SaleLine
	PaymentMethod string
}

// ======================================================
// USE CASE - counter sale
// ======================================================

type CreateProductSale struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateProductSale(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateProductSale {
	return &CreateProductSale{
		repo:  repo,
		audit: audit,
	}
}

// Execute records a multi-item product sale. Stock decrements and the sale
// rows are written in one transaction; a line with insufficient stock rolls
// back the whole sale.
func (uc *CreateProductSale) Execute(
	ctx context.Context,
	in CreateProductSaleInput,
) (*PaymentResult, error) {

	if err := domain.ValidateMethod(in.PaymentMethod); err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness(
			"empty_cart",
			"En az bir ürün seçilmelidir.",
		)
	}

	quantities := make(map[uint]int, len(in.Items))
	ids := make([]uint, 0, len(in.Items))
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return nil, httperr.ErrBusiness(
				"invalid_quantity",
				"Ürün adedi en az 1 olmalıdır.",
			)
		}
		if _, seen := quantities[line.ProductID]; !seen {
			ids = append(ids, line.ProductID)
		}
		quantities[line.ProductID] += line.Quantity
	}

	if _, err := uc.repo.GetCustomerByID(ctx, in.CustomerID); err != nil {
		return nil, httperr.ErrBusiness(
			"customer_not_found",
			"Müşteri bulunamadı.",
		)
	}

	products, err := uc.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, httperr.ErrBusiness(
			"product_not_found",
			"Ürün bulunamadı.",
		)
	}

	var total float64
	items := make([]models.SaleItem, 0, len(products))
	for _, p := range products {
		qty := quantities[p.ID]
		total += p.Price * float64(qty)
		items = append(items, models.SaleItem{
			ItemID:   p.ID,
			ItemType: models.SaleItemProduct,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: qty,
		})
	}

	s := &models.Sale{
		CustomerID:    in.CustomerID,
		Date:          time.Now().Format("2006-01-02"),
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		Type:          domain.TypeProduct,
		Items:         items,
	}

	if err := uc.repo.FinalizeProductSale(ctx, s, quantities); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "product_sale_created",
		Entity:   "sale",
		EntityID: &s.ID,
		Metadata: map[string]any{
			"payment_method": in.PaymentMethod,
			"total":          total,
			"items":          len(items),
		},
	})

	return &PaymentResult{SaleID: s.ID}, nil
}
