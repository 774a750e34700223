package category

// displayLabels maps internal category labels to the names shown in the app.
var displayLabels = map[string]string{
	"sound/impact":     "Impact Sounds",
	"sound/water":      "Water/Liquid Sounds",
	"sound/air":        "Wind/Air Sounds",
	"sound/mechanical": "Mechanical Sounds",
	"sound/animal":     "Animal Sounds",
	"sound/human":      "Human Sounds",
	Sound:              "Other Sounds",

	"motion/walk":  "Walking/Running",
	"motion/shake": "Shaking/Swaying",
	"motion/spin":  "Spinning/Rolling",
	"motion/jump":  "Jumping/Bouncing",
	"motion/slide": "Sliding/Slipping",
	Motion:         "Other Motion",

	"emotion/positive":  "Positive Emotions",
	"emotion/negative":  "Negative Emotions",
	"emotion/anxiety":   "Anxiety/Nervousness",
	"emotion/heartbeat": "Heartbeat/Excitement",
	Emotion:             "Other Emotions",

	"state/light":   "Light/Shine",
	"state/wet":     "Wet/Dry",
	"state/texture": "Soft/Hard",
	"state/sticky":  "Sticky/Slippery",
	"state/tidy":    "Clean/Messy",
	State:           "Other States",

	"eating/chew":    "Chewing",
	"eating/drink":   "Drinking",
	"eating/texture": "Taste/Texture",
	Eating:           "Other Eating",

	"body/fatigue": "Fatigue/Sleepiness",
	"body/pain":    "Pain/Discomfort",
	"body/hunger":  "Hunger/Fullness",

	"weather/rain":        "Rain/Snow",
	"weather/wind":        "Wind",
	"weather/temperature": "Temperature",
	Weather:               "Other Weather",

	"speed/fast": "Fast/Quick",
	"speed/slow": "Slow/Leisurely",

	"amount/many": "Abundance",
	"amount/few":  "Scarcity",

	"shape/size": "Size",
	"shape/form": "Shape",

	"attitude/confident": "Confident",
	"attitude/shy":       "Shy/Hesitant",
	"attitude/careless":  "Lazy/Careless",

	Animal: "Animal Sounds",
	Other:  "Others",
}

// DisplayLabel returns the app-facing name of a category; unknown labels map to "Others".
func DisplayLabel(label string) string {
	if d, ok := displayLabels[label]; ok {
		return d
	}
	return "Others"
}
