package http

import (
	"time"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/pricing"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entity.DateLayout)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.InvalidInput("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}

func parseOptionalDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ── productos ───────────────────────────────────────────────────────────────

func toPricingTiers(tiers []entity.PricingTier) []dto.PricingTierDTO {
	out := make([]dto.PricingTierDTO, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, dto.PricingTierDTO{Tier: t.Tier, PricePerUnit: t.PricePerUnit})
	}
	return out
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Brand:        p.Brand,
		BaseUOM:      p.BaseUOM,
		CurrentStock: p.CurrentStock,
		ReorderLevel: p.ReorderLevel,
		Status:       string(p.Status),
		Pricing:      toPricingTiers(p.Pricing),
		Batches:      toBatchResponses(p.Batches),
	}
}

// ── lotes ───────────────────────────────────────────────────────────────────

func toBatchResponse(b entity.Batch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:                 b.ID,
		BatchNumber:        b.BatchNumber,
		ManufacturingDate:  formatDate(b.ManufacturingDate),
		ExpiryDate:         formatDate(b.ExpiryDate),
		ReceivedDate:       formatDate(b.ReceivedDate),
		Quantity:           b.Quantity,
		SupplierName:       b.SupplierName,
		QualityCheckStatus: string(b.QualityCheckStatus),
		StorageLocation:    b.StorageLocation,
	}
}

func toBatchResponses(batches []entity.Batch) []dto.BatchResponse {
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchResponse(b))
	}
	return out
}

func toBatchViews(views []inventory.BatchView) []dto.BatchWithProductResponse {
	out := make([]dto.BatchWithProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.BatchWithProductResponse{
			BatchResponse:   toBatchResponse(v.Batch),
			ProductID:       v.ProductID,
			ProductName:     v.ProductName,
			ProductCategory: v.ProductCategory,
		})
	}
	return out
}

func toExpiringBatches(list []inventory.ExpiringBatch) []dto.ExpiringBatchResponse {
	out := make([]dto.ExpiringBatchResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ExpiringBatchResponse{
			BatchResponse: toBatchResponse(e.Batch),
			ProductID:     e.ProductID,
			ProductName:   e.ProductName,
			DaysToExpiry:  e.DaysToExpiry,
		})
	}
	return out
}

func toAllocationResponse(a *inventory.Allocation) *dto.AllocationResponse {
	if a == nil {
		return nil
	}
	return &dto.AllocationResponse{
		BatchID:           a.BatchID,
		BatchNumber:       a.BatchNumber,
		AllocatedQuantity: a.AllocatedQuantity,
		ExpiryDate:        formatDate(a.ExpiryDate),
	}
}

func toCreateBatchInput(in dto.CreateBatchRequest) (inventory.CreateBatchInput, error) {
	expiry, err := parseDate("expiryDate", in.ExpiryDate)
	if err != nil {
		return inventory.CreateBatchInput{}, err
	}
	mfg, err := parseDate("manufacturingDate", in.ManufacturingDate)
	if err != nil {
		return inventory.CreateBatchInput{}, err
	}
	return inventory.CreateBatchInput{
		BatchNumber:        in.BatchNumber,
		ManufacturingDate:  mfg,
		ExpiryDate:         expiry,
		Quantity:           in.Quantity,
		SupplierName:       in.SupplierName,
		QualityCheckStatus: entity.QualityStatus(in.QualityCheckStatus),
		StorageLocation:    in.StorageLocation,
	}, nil
}

func toUpdateBatchInput(in dto.UpdateBatchRequest) (inventory.UpdateBatchInput, error) {
	out := inventory.UpdateBatchInput{
		BatchNumber:     in.BatchNumber,
		Quantity:        in.Quantity,
		SupplierName:    in.SupplierName,
		StorageLocation: in.StorageLocation,
	}
	if in.ManufacturingDate != nil {
		t, err := parseDate("manufacturingDate", *in.ManufacturingDate)
		if err != nil {
			return out, err
		}
		out.ManufacturingDate = &t
	}
	if in.ExpiryDate != nil {
		t, err := parseDate("expiryDate", *in.ExpiryDate)
		if err != nil {
			return out, err
		}
		out.ExpiryDate = &t
	}
	if in.QualityCheckStatus != nil {
		s := entity.QualityStatus(*in.QualityCheckStatus)
		out.QualityCheckStatus = &s
	}
	return out, nil
}

// ── stock ───────────────────────────────────────────────────────────────────

func toReorderSuggestion(s inventory.ReorderSuggestion) dto.ReorderSuggestionResponse {
	return dto.ReorderSuggestionResponse{
		ProductResponse:        toProductResponse(s.Product),
		SuggestedOrderQuantity: s.SuggestedOrderQuantity,
		EstimatedCost:          s.EstimatedCost,
	}
}

func toMovementResponses(list []*entity.InventoryMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			BatchID:       m.BatchID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			StockAfter:    m.StockAfter,
			Reference:     m.Reference,
			Date:          m.Date.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func toOrderLineResponses(results []inventory.LineResult) []dto.OrderLineResponse {
	out := make([]dto.OrderLineResponse, 0, len(results))
	for _, r := range results {
		line := dto.OrderLineResponse{ProductID: r.ProductID, Allocation: toAllocationResponse(r.Allocation)}
		if r.Allocation == nil {
			stock := r.CurrentStock
			line.CurrentStock = &stock
		}
		out = append(out, line)
	}
	return out
}

// ── precios ─────────────────────────────────────────────────────────────────

func toPricingResultResponse(r *pricing.Result) dto.PricingResultResponse {
	applied := make([]dto.AppliedDiscountResponse, 0, len(r.AppliedDiscounts))
	for _, d := range r.AppliedDiscounts {
		applied = append(applied, dto.AppliedDiscountResponse{
			RuleID:      d.RuleID,
			RuleName:    d.RuleName,
			Type:        string(d.Type),
			Discount:    d.Discount,
			Description: d.Description,
		})
	}
	return dto.PricingResultResponse{
		OriginalPrice:    r.OriginalPrice,
		FinalPrice:       r.FinalPrice,
		TotalDiscount:    r.TotalDiscount,
		AppliedDiscounts: applied,
		SavingsPercent:   r.SavingsPercent,
	}
}

func toBreakpointResponses(list []pricing.Breakpoint) []dto.BreakpointResponse {
	out := make([]dto.BreakpointResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BreakpointResponse{
			Quantity:     b.Quantity,
			Discount:     b.Discount,
			DiscountType: string(b.DiscountType),
			Description:  b.Description,
		})
	}
	return out
}

func toRuleEntity(in dto.PricingRuleRequest) (*entity.PricingRule, error) {
	from, err := parseOptionalDate("validFrom", in.ValidFrom)
	if err != nil {
		return nil, err
	}
	until, err := parseOptionalDate("validUntil", in.ValidUntil)
	if err != nil {
		return nil, err
	}
	rule := &entity.PricingRule{
		Name:                in.Name,
		Description:         in.Description,
		RuleType:            entity.RuleType(in.RuleType),
		DiscountType:        entity.DiscountType(in.DiscountType),
		IsActive:            in.IsActive == nil || *in.IsActive,
		Priority:            in.Priority,
		ApplicableProducts:  toInts(in.ApplicableProducts),
		ApplicableCustomers: toInts(in.ApplicableCustomers),
		CustomerTiers:       append([]string(nil), in.CustomerTiers...),
		ValidFrom:           from,
		ValidUntil:          until,
		MinQuantity:         in.MinQuantity,
	}
	for _, b := range in.VolumeBrackets {
		rule.VolumeBrackets = append(rule.VolumeBrackets, entity.VolumeBracket{
			MinQuantity:   b.MinQuantity,
			MaxQuantity:   b.MaxQuantity,
			DiscountValue: b.DiscountValue,
			DiscountType:  entity.ValueType(b.DiscountType),
		})
	}
	if in.DiscountValue != nil {
		rule.DiscountValue = &entity.Discount{Type: entity.ValueType(in.DiscountValue.Type), Value: in.DiscountValue.Value}
	}
	return rule, nil
}

func toRuleResponse(r *entity.PricingRule) dto.PricingRuleResponse {
	out := dto.PricingRuleResponse{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		RuleType:            string(r.RuleType),
		DiscountType:        string(r.DiscountType),
		IsActive:            r.IsActive,
		Priority:            r.Priority,
		ApplicableProducts:  nonNilInts(r.ApplicableProducts),
		ApplicableCustomers: nonNilInts(r.ApplicableCustomers),
		CustomerTiers:       nonNilStrings(r.CustomerTiers),
		ValidFrom:           formatOptionalDate(r.ValidFrom),
		ValidUntil:          formatOptionalDate(r.ValidUntil),
		MinQuantity:         r.MinQuantity,
		CreatedDate:         formatDate(r.CreatedDate),
		LastModified:        formatDate(r.LastModified),
	}
	for _, b := range r.VolumeBrackets {
		out.VolumeBrackets = append(out.VolumeBrackets, dto.VolumeBracketDTO{
			MinQuantity:   b.MinQuantity,
			MaxQuantity:   b.MaxQuantity,
			DiscountValue: b.DiscountValue,
			DiscountType:  string(b.DiscountType),
		})
	}
	if r.DiscountValue != nil {
		out.DiscountValue = &dto.DiscountDTO{Type: string(r.DiscountValue.Type), Value: r.DiscountValue.Value}
	}
	return out
}

func toRuleResponses(rules []*entity.PricingRule) []dto.PricingRuleResponse {
	out := make([]dto.PricingRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, toRuleResponse(r))
	}
	return out
}

func toInts(ids []dto.FlexibleID) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Int())
	}
	return out
}

func nonNilInts(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
