package models

type AnalyzeRequest struct {
	ImageURL string `json:"imageUrl" example:"https://example.com/dress.jpg"`
}

type GenerateDesignRequest struct {
	CustomizationPrompt string `json:"customizationPrompt" example:"Make it knee length with puff sleeves"`
	OriginalImageURL    string `json:"originalImageUrl,omitempty" example:"https://example.com/dress.jpg"`
}

type CreateDesignRequest struct {
	CustomizationPrompt string        `json:"customization_prompt" binding:"required,max=2000"`
	FabricPreference    string        `json:"fabric_preference,omitempty" example:"silk"`
	Measurements        *Measurements `json:"measurements,omitempty"`
}

type RecolorRequest struct {
	// Color name ("Navy") or hex code ("#1E3A8A").
	Color string `json:"color" binding:"required" example:"Navy"`
}

type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required" example:"9876543210"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required" example:"9876543210"`
	OTP   string `json:"otp" binding:"required" example:"123456"`
}

type CreateOrderRequest struct {
	Address      string `json:"address" binding:"required,max=500"`
	City         string `json:"city" binding:"required,max=100"`
	State        string `json:"state" binding:"required,max=100"`
	Pincode      string `json:"pincode" binding:"required,digits=6" example:"560001"`
	Phone        string `json:"phone" binding:"required,digits=10" example:"9876543210"`
	DeliverySlot string `json:"deliverySlot,omitempty" example:"9am-12pm"`
	// YYYY-MM-DD, today or later.
	DeliveryDate     string        `json:"deliveryDate" binding:"required,notpast" example:"2026-10-25"`
	TotalAmount      float64       `json:"total_amount" binding:"required,gt=0" example:"4999"`
	ItemID           string        `json:"item_id,omitempty" binding:"omitempty,uuid"`
	CustomDesignID   string        `json:"custom_design_id,omitempty" binding:"omitempty,uuid"`
	FabricPreference string        `json:"fabric_preference,omitempty"`
	Measurements     *Measurements `json:"measurements,omitempty"`
}

type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method" example:"upi"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=200" example:"Asha Rao"`
}
