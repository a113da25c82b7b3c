// Package bot answers WhatsApp webhook messages with canned food-rescue replies.
package bot

import (
	"fmt"
	"strings"
)

// Intn returns a value in [0, n). Tests inject a fixed source.
type Intn func(n int) int

type Responder struct {
	intn Intn
}

func NewResponder(intn Intn) *Responder {
	return &Responder{intn: intn}
}

// Reply picks the first matching keyword group; the order is part of the contract.
func (r *Responder) Reply(body string) string {
	msg := strings.ToLower(body)
	switch {
	case containsAny(msg, "help", "menu"):
		return helpMenu
	case containsAny(msg, "predict", "spoilage"):
		return r.predict(msg)
	case containsAny(msg, "info", "food"):
		return r.info(msg)
	case containsAny(msg, "rescue", "donate"):
		return rescueOptions()
	case containsAny(msg, "hello", "hi"):
		return welcomeMessage
	default:
		return defaultReply
	}
}

func (r *Responder) predict(msg string) string {
	item := extractFoodItem(msg)
	p, ok := predictions[item]
	if !ok {
		p = shelfLifePrediction{
			Days:       r.intn(maxUnknownDays) + 1,
			Status:     unknownStatus,
			Confidence: unknownConfidence,
		}
	}
	return fmt.Sprintf(`🔮 *Spoilage Prediction for %s*

⏰ *Estimated shelf life:* %d days
📊 *Status:* %s
🎯 *Confidence:* %d%%

💡 *Recommendations:*
• Store in refrigerator if not already
• Check for visible signs of spoilage
• Consider donating if still good

Type *info %s* for storage tips!`, item, p.Days, p.Status, p.Confidence, item)
}

func (r *Responder) info(msg string) string {
	item := extractFoodItem(msg)
	fi, ok := foodInfos[item]
	if !ok {
		fi = genericFoodInfo
	}
	return fmt.Sprintf(`📚 *Food Information: %s*

🌡️ *Storage:* %s
⏰ *Shelf Life:* %s
💡 *Tips:* %s

🔮 Type *predict %s* for spoilage prediction!`, item, fi.Storage, fi.ShelfLife, fi.Tips, item)
}

func rescueOptions() string {
	var b strings.Builder
	b.WriteString("🆘 *Food Rescue Options Nearby*\n\n📍 *Available locations:*\n")
	for i, loc := range rescueLocations {
		fmt.Fprintf(&b, "%d. *%s*\n   📍 %s away\n   🍎 Accepts: %s\n\n", i+1, loc.Name, loc.Distance, loc.Accepts)
	}
	b.WriteString(`📞 *To donate:*
• Call the location directly
• Use our app for pickup scheduling
• Drop off during business hours

💡 *Donation tips:*
• Ensure food is still safe to eat
• Package items properly
• Call ahead to confirm acceptance

Type *help* for more options!`)
	return b.String()
}

var commandWords = map[string]bool{"predict": true, "info": true, "spoilage": true, "food": true}

// extractFoodItem returns the word after the first command word, else the last word.
func extractFoodItem(msg string) string {
	words := strings.Split(msg, " ")
	for i, w := range words {
		if commandWords[w] && i+1 < len(words) {
			return words[i+1]
		}
		if commandWords[w] {
			break
		}
	}
	if last := words[len(words)-1]; last != "" {
		return last
	}
	return "unknown"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

const helpMenu = `🍎 *ResQCart WhatsApp Bot* 🍎

Available commands:
• *help* or *menu* - Show this menu
• *predict [food]* - Predict spoilage (e.g., "predict apple")
• *info [food]* - Get food information (e.g., "info banana")
• *rescue* - Find rescue/donation options
• *hello* - Welcome message

Example: "predict apple" or "info banana"`

const welcomeMessage = `👋 *Welcome to ResQCart!*

We help reduce food waste through smart predictions and rescue networks.

Type *help* to see available options or try:
• "predict apple"
• "info banana"
• "rescue"`

const defaultReply = `🤔 I didn't understand that command.

Type *help* to see available options or try:
• "predict apple"
• "info banana"
• "rescue"`
