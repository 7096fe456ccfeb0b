package http

import (
	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain/entity"
)

func toStockResponse(s *entity.StockEntry) dto.StockResponse {
	return dto.StockResponse{
		ID:         s.ID,
		ItemID:     s.ItemID,
		LocationID: s.LocationID,
		Quantity:   s.Quantity,
		UnitPrice:  s.UnitPrice,
		TotalPrice: s.TotalPrice,
		Remarks:    s.Remarks,
		DisposeID:  s.DisposeID,
		CreatedBy:  s.CreatedBy,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toStockResponses(list []*entity.StockEntry) []dto.StockResponse {
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStockResponse(s))
	}
	return out
}

func toDisposalResponse(d *entity.Disposal) dto.DisposalResponse {
	return dto.DisposalResponse{
		ID:            d.ID,
		ItemID:        d.ItemID,
		LocationID:    d.LocationID,
		Quantity:      d.Quantity,
		DisposalValue: d.UnitDisposalValue,
		TotalValue:    d.TotalValue,
		Reason:        d.Reason,
		DisposalDate:  d.DisposalDate,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDisposalResponses(list []*entity.Disposal) []dto.DisposalResponse {
	out := make([]dto.DisposalResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDisposalResponse(d))
	}
	return out
}

func toComponentResponse(p *entity.PCComponent) dto.PCComponentResponse {
	return dto.PCComponentResponse{
		ID:        p.ID,
		PCID:      p.PCID,
		ItemID:    p.ItemID,
		StockID:   p.StockID,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Status:    p.Status,
		Remarks:   p.Remarks,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toComponentResponses(list []*entity.PCComponent) []dto.PCComponentResponse {
	out := make([]dto.PCComponentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toComponentResponse(p))
	}
	return out
}
