package bot

import (
	"testing"

	"github.com/jumpstart/style-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.Intent
	}{
		{"greeting", "hello there", domain.IntentGreeting},
		{"product inquiry needs action and noun", "show me some dresses", domain.IntentProductInquiry},
		{"product inquiry outfit noun", "find me an outfit", domain.IntentProductInquiry},
		{"action without noun is not a product inquiry", "recommend something", domain.IntentUnknown},
		{"trending", "whats trending today", domain.IntentTrendingProducts},
		{"sales", "do you have any deals", domain.IntentSalesDiscounts},
		{"shipping", "when will my delivery arrive", domain.IntentShippingInfo},
		{"order status", "wheres my order", domain.IntentOrderStatus},
		{"store info", "what are your opening hours", domain.IntentStoreInfo},
		{"payment", "can i pay with paypal", domain.IntentPaymentMethods},
		{"sizing", "do i size up or down", domain.IntentSizingInfo},
		{"click and collect", "can i reserve for pickup", domain.IntentClickCollect},
		{"thank you", "thanks", domain.IntentThankYou},
		{"goodbye", "goodbye", domain.IntentGoodbye},
		{"unknown", "zzz", domain.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in, "", 0))
		})
	}
}

func TestClassifyRuleOrderEncodesPrecedence(t *testing.T) {
	// "return" and "order" both appear; the return rule runs first.
	assert.Equal(t, domain.IntentReturnPolicy, Classify("can i return my order", "", 0))
}

func TestClassifyFollowUp(t *testing.T) {
	t.Run("question word continues the previous intent", func(t *testing.T) {
		got := Classify("what about delivery", domain.IntentThankYou, 0)
		assert.Equal(t, domain.IntentThankYou.FollowUp(), got)
	})

	t.Run("short-circuit precedes the rule battery", func(t *testing.T) {
		// Without a prior intent the same text classifies as shipping.
		assert.Equal(t, domain.IntentShippingInfo, Classify("what about delivery", "", 0))
	})

	t.Run("exhausted budget disables the short-circuit", func(t *testing.T) {
		got := Classify("what about delivery", domain.IntentThankYou, followUpLimit)
		assert.Equal(t, domain.IntentShippingInfo, got)
	})

	t.Run("question word must be a whole token", func(t *testing.T) {
		// "wheres" is not "where"; the rule battery runs instead.
		got := Classify("wheres my order", domain.IntentThankYou, 0)
		assert.Equal(t, domain.IntentOrderStatus, got)
	})

	t.Run("follow-up of a follow-up does not stack suffixes", func(t *testing.T) {
		got := Classify("how", domain.IntentThankYou.FollowUp(), 1)
		assert.Equal(t, domain.IntentThankYou.FollowUp(), got)
	})
}

func TestClassifyProductTopicStickiness(t *testing.T) {
	// Once a product conversation has started, an action verb alone keeps
	// the topic even without a product noun.
	got := Classify("show me more", domain.IntentProductInquiry, 0)
	assert.Equal(t, domain.IntentProductInquiry, got)

	// A fresh session needs the noun.
	assert.Equal(t, domain.IntentUnknown, Classify("show me more", "", 0))
}
