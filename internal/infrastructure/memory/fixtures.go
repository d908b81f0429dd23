package memory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

//go:embed fixtures/seed.json
var defaultSeed []byte

// Formato de los fixtures (mismo esquema que los datos de ejemplo del front-end).
type seedFile struct {
	Products     []productFixture `json:"products"`
	PricingRules []ruleFixture    `json:"pricingRules"`
}

type productFixture struct {
	ID           int    `json:"Id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	BaseUOM      string `json:"baseUOM"`
	CurrentStock int    `json:"currentStock"`
	ReorderLevel int    `json:"reorderLevel"`
	Status       string `json:"status"`
	Pricing      []struct {
		Tier         string          `json:"tier"`
		PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	} `json:"pricing"`
	Batches []batchFixture `json:"batches"`
}

type batchFixture struct {
	ID                 int    `json:"Id"`
	BatchNumber        string `json:"batchNumber"`
	ManufacturingDate  string `json:"manufacturingDate"`
	ExpiryDate         string `json:"expiryDate"`
	ReceivedDate       string `json:"receivedDate"`
	Quantity           int    `json:"quantity"`
	SupplierName       string `json:"supplierName"`
	QualityCheckStatus string `json:"qualityCheckStatus"`
	StorageLocation    string `json:"storageLocation"`
}

type ruleFixture struct {
	ID                  int      `json:"Id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	RuleType            string   `json:"ruleType"`
	DiscountType        string   `json:"discountType"`
	IsActive            bool     `json:"isActive"`
	Priority            int      `json:"priority"`
	ApplicableProducts  []int    `json:"applicableProducts"`
	ApplicableCustomers []int    `json:"applicableCustomers"`
	CustomerTiers       []string `json:"customerTiers"`
	ValidFrom           string   `json:"validFrom"`
	ValidUntil          string   `json:"validUntil"`
	VolumeBrackets      []struct {
		MinQuantity   int             `json:"minQuantity"`
		MaxQuantity   *int            `json:"maxQuantity"`
		DiscountValue decimal.Decimal `json:"discountValue"`
		DiscountType  string          `json:"discountType"`
	} `json:"volumeBrackets"`
	DiscountValue *struct {
		Type  string          `json:"type"`
		Value decimal.Decimal `json:"value"`
	} `json:"discountValue"`
	MinQuantity  int    `json:"minQuantity"`
	CreatedDate  string `json:"createdDate"`
	LastModified string `json:"lastModified"`
}

// DefaultSeed devuelve los fixtures embebidos en el binario.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeedFile lee fixtures desde disco; path vacío usa los embebidos.
func LoadSeedFile(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("abrir fixtures: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Seed{}, fmt.Errorf("leer fixtures: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodifica el JSON de fixtures a entidades.
func ParseSeed(data []byte) (Seed, error) {
	var raw seedFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return Seed{}, fmt.Errorf("decodificar fixtures: %w", err)
	}

	seed := Seed{
		Products:     make([]*entity.Product, 0, len(raw.Products)),
		PricingRules: make([]*entity.PricingRule, 0, len(raw.PricingRules)),
	}
	for _, pf := range raw.Products {
		p, err := pf.toEntity()
		if err != nil {
			return Seed{}, fmt.Errorf("producto %d: %w", pf.ID, err)
		}
		seed.Products = append(seed.Products, p)
	}
	for _, rf := range raw.PricingRules {
		r, err := rf.toEntity()
		if err != nil {
			return Seed{}, fmt.Errorf("regla %d: %w", rf.ID, err)
		}
		seed.PricingRules = append(seed.PricingRules, r)
	}
	return seed, nil
}

func (pf productFixture) toEntity() (*entity.Product, error) {
	p := &entity.Product{
		ID:           pf.ID,
		Name:         pf.Name,
		Category:     pf.Category,
		Brand:        pf.Brand,
		BaseUOM:      pf.BaseUOM,
		CurrentStock: pf.CurrentStock,
		ReorderLevel: pf.ReorderLevel,
		Status:       entity.ProductStatus(pf.Status),
	}
	for _, t := range pf.Pricing {
		p.Pricing = append(p.Pricing, entity.PricingTier{Tier: t.Tier, PricePerUnit: t.PricePerUnit})
	}
	for _, bf := range pf.Batches {
		b := entity.Batch{
			ID:                 bf.ID,
			BatchNumber:        bf.BatchNumber,
			Quantity:           bf.Quantity,
			SupplierName:       bf.SupplierName,
			QualityCheckStatus: entity.QualityStatus(bf.QualityCheckStatus),
			StorageLocation:    bf.StorageLocation,
		}
		if b.QualityCheckStatus == "" {
			b.QualityCheckStatus = entity.QualityPending
		}
		var err error
		if b.ManufacturingDate, err = parseDate(bf.ManufacturingDate); err != nil {
			return nil, err
		}
		if b.ExpiryDate, err = parseDate(bf.ExpiryDate); err != nil {
			return nil, err
		}
		if b.ReceivedDate, err = parseDate(bf.ReceivedDate); err != nil {
			return nil, err
		}
		p.Batches = append(p.Batches, b)
	}
	return p, nil
}

func (rf ruleFixture) toEntity() (*entity.PricingRule, error) {
	r := &entity.PricingRule{
		ID:                  rf.ID,
		Name:                rf.Name,
		Description:         rf.Description,
		RuleType:            entity.RuleType(rf.RuleType),
		DiscountType:        entity.DiscountType(rf.DiscountType),
		IsActive:            rf.IsActive,
		Priority:            rf.Priority,
		ApplicableProducts:  rf.ApplicableProducts,
		ApplicableCustomers: rf.ApplicableCustomers,
		CustomerTiers:       rf.CustomerTiers,
		MinQuantity:         rf.MinQuantity,
	}
	for _, b := range rf.VolumeBrackets {
		r.VolumeBrackets = append(r.VolumeBrackets, entity.VolumeBracket{
			MinQuantity:   b.MinQuantity,
			MaxQuantity:   b.MaxQuantity,
			DiscountValue: b.DiscountValue,
			DiscountType:  entity.ValueType(b.DiscountType),
		})
	}
	if rf.DiscountValue != nil {
		r.DiscountValue = &entity.Discount{
			Type:  entity.ValueType(rf.DiscountValue.Type),
			Value: rf.DiscountValue.Value,
		}
	}
	var err error
	if r.ValidFrom, err = parseOptionalDate(rf.ValidFrom); err != nil {
		return nil, err
	}
	if r.ValidUntil, err = parseOptionalDate(rf.ValidUntil); err != nil {
		return nil, err
	}
	if r.CreatedDate, err = parseDate(rf.CreatedDate); err != nil {
		return nil, err
	}
	if r.LastModified, err = parseDate(rf.LastModified); err != nil {
		return nil, err
	}
	return r, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", s, err)
	}
	return t, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
