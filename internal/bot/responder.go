package bot

import (
	"context"
	"log/slog"

	"github.com/jumpstart/style-assistant/internal/catalog"
	"github.com/jumpstart/style-assistant/internal/domain"
	"github.com/jumpstart/style-assistant/internal/faq"
)

// maxRecommendations caps the products attached to any reply.
const maxRecommendations = 3

// Fixed answers for branches that need no template lookup.
const (
	productMatchAnswer    = "I found some products that match what you're looking for:"
	productFallbackAnswer = "I couldn't find products matching your specific criteria, but here are some of our popular items that you might like:"
	contactSupportAnswer  = "I'm sorry, I don't have a specific answer to that question right now. Our customer service team would be happy to help you with this. You can reach them at support@jumpstart.com or call +1 800 555 1234. Is there anything else I can assist you with today?"
	faqFailureAnswer      = "I'm sorry, I'm having trouble accessing our FAQ database right now. Our customer service team would be happy to help you at support@jumpstart.com or +1 800 555 1234."
)

type replyTemplate struct {
	answer       string
	quickActions []domain.QuickAction
}

var replyTemplates = map[domain.Intent]replyTemplate{
	domain.IntentGreeting: {
		answer: "Hello! 👋 I'm your AI Style Assistant. I can help you find products, check order status, answer questions about returns and shipping, and more. How can I assist you today?",
		quickActions: []domain.QuickAction{
			{Text: "Show me trending products"},
			{Text: "What's your return policy?"},
			{Text: "Do you have any sales?"},
		},
	},
	domain.IntentTrendingProducts: {
		answer: "Our summer collection is really trending right now! Here are some of our most popular items:",
		quickActions: []domain.QuickAction{
			{Text: "Show me more summer items"},
			{Text: "Do you have any sales on these?"},
		},
	},
	domain.IntentSalesDiscounts: {
		answer: "Yes, we have several items on sale right now! Our summer collection is up to 30% off. Here are some of our best deals:",
		quickActions: []domain.QuickAction{
			{Text: "How long does the sale last?"},
			{Text: "Do you have student discounts?"},
		},
	},
	domain.IntentReturnPolicy: {
		answer: "We offer a 30-day return policy for all unused items in their original packaging. Simply initiate a return through your account or contact our customer service team for assistance. Refunds are processed within 5-7 business days after we receive the returned item.",
		quickActions: []domain.QuickAction{
			{Text: "How do I initiate a return?"},
			{Text: "Do you pay for return shipping?"},
		},
	},
	domain.IntentShippingInfo: {
		answer: "We offer fast, free shipping on all orders over $50. Standard delivery takes 3-5 business days, while express delivery takes 1-2 business days. You can track your order in real-time through your account or the tracking link we email you.",
		quickActions: []domain.QuickAction{
			{Text: "Do you ship internationally?"},
			{Text: "What's your express shipping cost?"},
		},
	},
	domain.IntentOrderStatus: {
		answer: "To check your order status, you can log into your account and view your order history. You'll also receive email updates as your order is processed and shipped. If you need immediate assistance, please provide your order number and I can help you track it.",
		quickActions: []domain.QuickAction{
			{Text: "I forgot my order number"},
			{Text: "How long until my order ships?"},
		},
	},
	domain.IntentStoreInfo: {
		answer: "Our online store is open 24/7! Our physical store locations are open Monday-Friday from 9am to 6pm EST, and Saturday from 10am to 4pm EST. We're closed on Sundays. Our main store is located at 123 Fashion Avenue, New York, NY 10001.",
		quickActions: []domain.QuickAction{
			{Text: "Do you have other store locations?"},
			{Text: "Is parking available?"},
		},
	},
	domain.IntentPaymentMethods: {
		answer: "We accept all major credit cards (Visa, Mastercard, American Express), PayPal, Apple Pay, Google Pay, and Afterpay for installment payments. All transactions are securely processed with bank-level encryption.",
		quickActions: []domain.QuickAction{
			{Text: "How does Afterpay work?"},
			{Text: "Is my payment information secure?"},
		},
	},
	domain.IntentSizingInfo: {
		answer: "We provide detailed sizing charts on each product page. If you're between sizes, we generally recommend sizing up for a more comfortable fit. If you have specific questions about a particular item, feel free to ask! We also offer free size exchanges if your first choice doesn't fit perfectly.",
		quickActions: []domain.QuickAction{
			{Text: "Do you have plus sizes?"},
			{Text: "How do I measure myself?"},
		},
	},
	domain.IntentClickCollect: {
		answer: "Yes, we offer Click & Collect at all our store locations! Simply select 'Click & Collect' at checkout, and we'll have your order ready for pickup within 2 hours during store hours. You'll receive an email notification when your order is ready.",
		quickActions: []domain.QuickAction{
			{Text: "How long do you hold my order?"},
			{Text: "Can someone else pick up my order?"},
		},
	},
	domain.IntentThankYou: {
		answer: "You're very welcome! 😊 Is there anything else I can help you with today?",
		quickActions: []domain.QuickAction{
			{Text: "Show me new arrivals"},
			{Text: "I'm done, thanks"},
		},
	},
	domain.IntentGoodbye: {
		answer: "Thank you for chatting with us today! Have a wonderful day and feel free to come back anytime if you need assistance. 👋",
	},
}

// Responder produces a reply for a classified intent. It reads the catalog
// and the FAQ store but never mutates conversation state.
type Responder struct {
	catalog *catalog.Catalog
	faqs    faq.Store
}

// NewResponder creates a responder over the given catalog and FAQ store.
func NewResponder(cat *catalog.Catalog, faqs faq.Store) *Responder {
	return &Responder{catalog: cat, faqs: faqs}
}

// Respond generates the reply for one turn. question is the raw user text
// (used for FAQ lookup); entities is the current turn's extraction.
// The second return value carries the products to remember as the session's
// last recommendations; it is nil for every intent except product_inquiry.
func (r *Responder) Respond(ctx context.Context, intent domain.Intent, question string, entities map[string]string) (domain.Reply, []domain.Product) {
	if tmpl, ok := replyTemplates[intent]; ok {
		reply := domain.NewReply(tmpl.answer)
		if tmpl.quickActions != nil {
			reply.QuickActions = tmpl.quickActions
		}
		switch intent {
		case domain.IntentTrendingProducts:
			reply.Recommendations = r.catalog.Top(maxRecommendations)
		case domain.IntentSalesDiscounts:
			reply.Recommendations = r.catalog.Picks(0, 2, 4)
		}
		return reply, nil
	}

	if intent == domain.IntentProductInquiry {
		return r.respondProductInquiry(entities)
	}

	// Unknown intents (including follow-up variants without a template of
	// their own) fall back to the FAQ collaborator.
	return r.respondFromFAQ(ctx, question), nil
}

// respondProductInquiry filters the catalog by the extracted entities. An
// empty filter result falls back to the top catalog picks so the reply is
// never empty-handed.
func (r *Responder) respondProductInquiry(entities map[string]string) (domain.Reply, []domain.Product) {
	filtered := r.catalog.FilterByEntities(entities[domain.EntityCategory], entities[domain.EntityColor])

	var reply domain.Reply
	if len(filtered) == 0 {
		reply = domain.NewReply(productFallbackAnswer)
		filtered = r.catalog.Top(maxRecommendations)
	} else {
		reply = domain.NewReply(productMatchAnswer)
		if len(filtered) > maxRecommendations {
			filtered = filtered[:maxRecommendations]
		}
	}

	reply.Recommendations = filtered
	reply.QuickActions = []domain.QuickAction{
		{Text: "Show me more like this"},
		{Text: "Do you have these in other colors?"},
	}
	return reply, filtered
}

// respondFromFAQ searches the FAQ store for the raw question text. Lookup
// failure degrades to a fixed fallback answer; it never propagates.
func (r *Responder) respondFromFAQ(ctx context.Context, question string) domain.Reply {
	entries, err := r.faqs.Search(ctx, question)
	if err != nil {
		slog.Warn("faq lookup failed, degrading to fallback answer", "error", err)
		return domain.NewReply(faqFailureAnswer)
	}

	if len(entries) > 0 {
		return domain.NewReply(entries[0].Answer)
	}

	reply := domain.NewReply(contactSupportAnswer)
	reply.QuickActions = []domain.QuickAction{
		{Text: "What are your store hours?"},
		{Text: "Tell me about your return policy"},
	}
	return reply
}
