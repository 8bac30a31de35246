package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/application/trade"
	"github.com/jhoicas/wideapple-api/internal/domain"
	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
)

// VendorUseCase consultas de vendors y abono directo de inventario.
type VendorUseCase struct {
	vendorRepo repository.VendorRepository
	fruitRepo  repository.FruitRepository
	invRepo    repository.InventoryRepository
	txRunner   trade.TxRunner
}

// NewVendorUseCase construye el caso de uso. invRepo es el adaptador atado
// al pool (lecturas); las escrituras de AddFruit van por txRunner.
func NewVendorUseCase(
	vendorRepo repository.VendorRepository,
	fruitRepo repository.FruitRepository,
	invRepo repository.InventoryRepository,
	txRunner trade.TxRunner,
) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo, fruitRepo: fruitRepo, invRepo: invRepo, txRunner: txRunner}
}

// List devuelve vendors paginados con filtro opcional por especie,
// cada uno con su inventario.
func (uc *VendorUseCase) List(page dto.PageRequest, species string) ([]dto.VendorResponse, error) {
	page.DefaultPage()
	vendors, err := uc.vendorRepo.List(species, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		resp, err := uc.toVendorResponse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// MyVendor devuelve el vendor del usuario autenticado con su inventario.
func (uc *VendorUseCase) MyVendor(userID int64) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrVendorNotFound
	}
	return uc.toVendorResponse(vendor)
}

// AddFruit abona cantidad de una fruta al inventario del vendor del usuario
// (colaborador externo al motor de intercambios: única mutación de stock
// que no pasa por un trade). El abono es aditivo, igual que el destino de
// una transferencia.
func (uc *VendorUseCase) AddFruit(ctx context.Context, userID int64, in dto.AddFruitRequest) error {
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	vendor, err := uc.vendorRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrVendorNotFound
	}
	fruit, err := uc.fruitRepo.GetByID(in.FruitID)
	if err != nil {
		return err
	}
	if fruit == nil {
		return domain.ErrFruitNotFound
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		return invRepo.Add(vendor.ID, in.FruitID, in.Quantity, now)
	})
}

func (uc *VendorUseCase) toVendorResponse(v *entity.Vendor) (*dto.VendorResponse, error) {
	entries, err := uc.invRepo.ListByVendor(v.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorInventoryItemDTO, 0, len(entries))
	for _, e := range entries {
		fruit, err := uc.fruitRepo.GetByID(e.FruitID)
		if err != nil {
			return nil, err
		}
		if fruit == nil {
			continue // fruta retirada del catálogo; no rompe el listado
		}
		items = append(items, dto.VendorInventoryItemDTO{
			FruitID:  e.FruitID,
			Quantity: e.Quantity,
			Fruit:    toFruitResponse(fruit),
		})
	}
	return &dto.VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		Species:       v.Species,
		HomeDimension: v.HomeDimension,
		Inventory:     items,
	}, nil
}
