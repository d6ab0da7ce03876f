package catalog

import "github.com/samber/lo"

// Option is a selectable value with its display label.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var (
	categories = []string{"dress", "shirt", "pants", "shoes", "jacket", "accessory"}
	styles     = []string{"casual", "formal", "sporty", "elegant", "streetwear"}

	fabrics = []Option{
		{ID: "cotton", Label: "Cotton"},
		{ID: "silk", Label: "Silk"},
		{ID: "linen", Label: "Linen"},
		{ID: "wool", Label: "Wool"},
		{ID: "polyester", Label: "Polyester"},
		{ID: "denim", Label: "Denim"},
		{ID: "leather", Label: "Leather"},
	}

	deliverySlots = []Option{
		{ID: "9am-12pm", Label: "9 AM - 12 PM"},
		{ID: "12pm-3pm", Label: "12 PM - 3 PM"},
		{ID: "3pm-6pm", Label: "3 PM - 6 PM"},
		{ID: "6pm-9pm", Label: "6 PM - 9 PM"},
	}

	paymentMethods = []Option{
		{ID: "card", Label: "Credit/Debit Card"},
		{ID: "upi", Label: "UPI"},
		{ID: "netbanking", Label: "Net Banking"},
		{ID: "wallet", Label: "Digital Wallet"},
	}
)

// Options groups every selectable list the clients render.
type Options struct {
	Categories     []string `json:"categories"`
	Styles         []string `json:"styles"`
	Fabrics        []Option `json:"fabrics"`
	DeliverySlots  []Option `json:"delivery_slots"`
	PaymentMethods []Option `json:"payment_methods"`
}

func AllOptions() Options {
	return Options{
		Categories:     append([]string(nil), categories...),
		Styles:         append([]string(nil), styles...),
		Fabrics:        append([]Option(nil), fabrics...),
		DeliverySlots:  append([]Option(nil), deliverySlots...),
		PaymentMethods: append([]Option(nil), paymentMethods...),
	}
}

func IsFabric(id string) bool {
	return hasOption(fabrics, id)
}

func IsDeliverySlot(id string) bool {
	return hasOption(deliverySlots, id)
}

// PaymentMethod returns the payment option with the given id.
func PaymentMethod(id string) (Option, bool) {
	return lo.Find(paymentMethods, func(o Option) bool { return o.ID == id })
}

func hasOption(options []Option, id string) bool {
	return lo.ContainsBy(options, func(o Option) bool { return o.ID == id })
}
