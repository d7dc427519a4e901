package campaign

type CreateCampaignRequest struct {
	Title       string  `json:"title" binding:"required,min=3"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Goal        float64 `json:"goal" binding:"required,gt=0"`
	EndDate     string  `json:"end_date"`
}

type UpdateCampaignRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Goal        *float64 `json:"goal"`
	Status      *string  `json:"status"`
	EndDate     *string  `json:"end_date"`
}

type DonateRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method"`
}

type PublishImpactRequest struct {
	Impact string `json:"impact" binding:"required"`
}
