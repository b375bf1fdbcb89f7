package utils

import (
	"time"

	offersv1 "github.com/Zoli1212/awsflow/gen/proto/offers/v1"
	statsv1 "github.com/Zoli1212/awsflow/gen/proto/stats/v1"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/offers"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToPBOfferItem(i entity.OfferItem) *offersv1.OfferItem {
	return &offersv1.OfferItem{
		Name:              i.Name,
		Unit:              i.Unit,
		Quantity:          i.Quantity,
		UnitPrice:         i.UnitPrice,
		MaterialUnitPrice: i.MaterialUnitPrice,
		WorkTotal:         i.WorkTotal,
		MaterialTotal:     i.MaterialTotal,
		TotalPrice:        i.TotalPrice,
		Source:            i.Source,
		IsNew:             i.New,
		Description:       i.Description,
	}
}

func ToPBOfferItems(items []entity.OfferItem) []*offersv1.OfferItem {
	out := make([]*offersv1.OfferItem, 0, len(items))
	for _, i := range items {
		out = append(out, ToPBOfferItem(i))
	}
	return out
}

func ToOfferItem(i *offersv1.OfferItem) entity.OfferItem {
	return entity.OfferItem{
		Name:              i.GetName(),
		Unit:              i.GetUnit(),
		Quantity:          i.GetQuantity(),
		UnitPrice:         i.GetUnitPrice(),
		MaterialUnitPrice: i.GetMaterialUnitPrice(),
		WorkTotal:         i.GetWorkTotal(),
		MaterialTotal:     i.GetMaterialTotal(),
		TotalPrice:        i.GetTotalPrice(),
		Source:            i.GetSource(),
		New:               i.GetIsNew(),
		Description:       i.GetDescription(),
	}
}

func ToOfferItems(items []*offersv1.OfferItem) []entity.OfferItem {
	out := make([]entity.OfferItem, 0, len(items))
	for _, i := range items {
		out = append(out, ToOfferItem(i))
	}
	return out
}

func ToConvertItem(i *offersv1.OfferItem) offers.ConvertItem {
	return offers.ConvertItem{
		Name:              i.GetName(),
		Quantity:          i.GetQuantity(),
		Unit:              i.GetUnit(),
		UnitPrice:         i.GetUnitPrice(),
		TotalPrice:        i.GetTotalPrice(),
		MaterialUnitPrice: i.GetMaterialUnitPrice(),
		MaterialTotal:     i.GetMaterialTotal(),
		WorkTotal:         i.GetWorkTotal(),
		Description:       i.GetDescription(),
	}
}

func ToConvertItems(items []*offersv1.OfferItem) []offers.ConvertItem {
	out := make([]offers.ConvertItem, 0, len(items))
	for _, i := range items {
		out = append(out, ToConvertItem(i))
	}
	return out
}

func ToPBUserStatistics(u *entity.UserStatistics) *statsv1.UserStatistics {
	return &statsv1.UserStatistics{
		Id:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		IsSuperUser:   u.IsSuperUser,
		IsTenant:      u.IsTenant,
		ActivityCount: int32(u.ActivityCount),
		LastActivity:  timeOrEmpty(u.LastActivity),
		InvitedBy:     strOrEmpty(u.InvitedBy),
		TrialEndsAt:   timeOrEmpty(u.TrialEndsAt),
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBHistoryEntry(h *entity.History) *statsv1.HistoryEntry {
	return &statsv1.HistoryEntry{
		Id:          h.ID.String(),
		Content:     h.Content,
		AiAgentType: strOrEmpty(h.AIAgentType),
		FileType:    strOrEmpty(h.FileType),
		FileName:    strOrEmpty(h.FileName),
		CreatedAt:   h.CreatedAt.UTC().Format(time.RFC3339),
	}
}
