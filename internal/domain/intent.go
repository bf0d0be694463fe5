package domain

import "strings"

// Intent classifies the purpose of a user message. The set is closed; every
// intent additionally has a derived "_followup" variant signaling a clarifying
// question about the previous turn.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentProductInquiry   Intent = "product_inquiry"
	IntentTrendingProducts Intent = "trending_products"
	IntentSalesDiscounts   Intent = "sales_discounts"
	IntentReturnPolicy     Intent = "return_policy"
	IntentShippingInfo     Intent = "shipping_info"
	IntentOrderStatus      Intent = "order_status"
	IntentStoreInfo        Intent = "store_info"
	IntentPaymentMethods   Intent = "payment_methods"
	IntentSizingInfo       Intent = "sizing_info"
	IntentClickCollect     Intent = "click_collect"
	IntentThankYou         Intent = "thank_you"
	IntentGoodbye          Intent = "goodbye"
	IntentUnknown          Intent = "unknown"
)

const followUpSuffix = "_followup"

// IsFollowUp reports whether i is a derived follow-up variant.
func (i Intent) IsFollowUp() bool {
	return strings.HasSuffix(string(i), followUpSuffix)
}

// Base strips the follow-up suffix, returning the underlying intent.
func (i Intent) Base() Intent {
	return Intent(strings.TrimSuffix(string(i), followUpSuffix))
}

// FollowUp derives the follow-up variant of i. Deriving from a follow-up
// yields the same variant again; suffixes never stack.
func (i Intent) FollowUp() Intent {
	return i.Base() + followUpSuffix
}
