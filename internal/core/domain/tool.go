package domain

// Pricing is the commercial tier of a catalog tool.
type Pricing string

const (
	PricingFree     Pricing = "free"
	PricingFreemium Pricing = "freemium"
	PricingPaid     Pricing = "paid"
)

// AITool is one entry of the static recommendation catalog.
type AITool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Website     string   `json:"website"`
	Features    []string `json:"features"`
	Pricing     Pricing  `json:"pricing"`
	BestFor     []string `json:"bestFor"`
	Rating      float64  `json:"rating"`
	IsPopular   bool     `json:"isPopular"`
}
