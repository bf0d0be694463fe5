package bot

import (
	"regexp"
	"strings"

	"github.com/jumpstart/style-assistant/internal/domain"
)

// followUpLimit bounds how many consecutive turns the follow-up
// short-circuit may extend the previous intent.
const followUpLimit = 2

// followUpWords are question tokens that trigger the follow-up check.
var followUpWords = map[string]bool{
	"what":  true,
	"how":   true,
	"when":  true,
	"where": true,
	"why":   true,
	"which": true,
}

// classifierRule pairs an intent with its match predicate. Rules are
// evaluated in order and the first match wins; the order encodes precedence
// among overlapping vocabularies (for example "order" appears in both
// order_status phrasing and generic text).
type classifierRule struct {
	intent  domain.Intent
	matches func(text string, lastIntent domain.Intent) bool
}

func pattern(expr string) func(string, domain.Intent) bool {
	re := regexp.MustCompile(expr)
	return func(text string, _ domain.Intent) bool {
		return re.MatchString(text)
	}
}

var (
	productActionPattern = regexp.MustCompile(`show|find|looking for|recommend|suggest|want|need`)
	productNounPattern   = regexp.MustCompile(`product|item|clothes|outfit|dress|jacket|shoes|bag`)
)

var classifierRules = []classifierRule{
	{domain.IntentGreeting, pattern(`hi|hello|hey|howdy|good morning|good afternoon|good evening`)},
	{domain.IntentProductInquiry, func(text string, lastIntent domain.Intent) bool {
		// The lastIntent clause keeps the product topic sticky across turns
		// once a product conversation has started.
		return productActionPattern.MatchString(text) &&
			(productNounPattern.MatchString(text) || lastIntent == domain.IntentProductInquiry)
	}},
	{domain.IntentTrendingProducts, pattern(`trending|popular|what's hot|what's new|latest|new arrival`)},
	{domain.IntentSalesDiscounts, pattern(`sale|discount|promotion|deal|offer|coupon|cheap|affordable`)},
	{domain.IntentReturnPolicy, pattern(`return|exchange|refund|policy`)},
	{domain.IntentShippingInfo, pattern(`shipping|delivery|how long|when will i get|track|tracking`)},
	{domain.IntentOrderStatus, pattern(`order|status|where is my order|track my order`)},
	{domain.IntentStoreInfo, pattern(`store|location|hours|when are you open|address`)},
	{domain.IntentPaymentMethods, pattern(`payment|pay|how can i pay|credit card|paypal|afterpay`)},
	{domain.IntentSizingInfo, pattern(`size|sizing|what size am i|fit|measurements`)},
	{domain.IntentClickCollect, pattern(`click and collect|pickup|collect in store|reserve`)},
	{domain.IntentThankYou, pattern(`thank you|thanks|thx|thank u|ty`)},
	{domain.IntentGoodbye, pattern(`bye|goodbye|see you|later|have a nice day`)},
}

// Classify maps normalized text plus prior conversation state to an intent.
//
// When the previous intent is set and the follow-up budget is not exhausted,
// a question word anywhere in the text short-circuits to the previous
// intent's follow-up variant. Otherwise the rule battery runs in its fixed
// order and the first matching rule wins; no match yields unknown.
func Classify(text string, lastIntent domain.Intent, followUpCount int) domain.Intent {
	if lastIntent != "" && followUpCount < followUpLimit {
		for _, token := range strings.Split(text, " ") {
			if followUpWords[token] {
				return lastIntent.FollowUp()
			}
		}
	}

	for _, rule := range classifierRules {
		if rule.matches(text, lastIntent) {
			return rule.intent
		}
	}

	return domain.IntentUnknown
}
