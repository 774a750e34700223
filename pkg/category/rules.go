// Package category assigns onomatopoeia to a semantic taxonomy with ordered
// keyword rules. Tables are plain values; nothing here is global mutable state.
package category

import "strings"

// Other is the fallback bucket of both passes.
const Other = "other"

// Rule pairs a category label with the keyword substrings that select it.
type Rule struct {
	Label    string
	Keywords []string
}

// Table is an ordered decision list: the first rule with a keyword contained
// in the text wins.
type Table []Rule

// Classify returns the label of the first matching rule. text must already be
// lowercased.
func (t Table) Classify(text string) (string, bool) {
	for _, r := range t {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Label, true
			}
		}
	}
	return "", false
}

// Labels lists the table's labels in evaluation order.
func (t Table) Labels() []string {
	out := make([]string, len(t))
	for i, r := range t {
		out[i] = r.Label
	}
	return out
}

// Coarse category labels.
const (
	Sound   = "sound"
	Animal  = "animal_sound"
	Motion  = "motion"
	Emotion = "emotion"
	State   = "state"
	Eating  = "eating"
	Weather = "weather"
)

// CoarseRules returns the pass-1 table. Sound is checked before animal sounds,
// so "cry of a bird" lands in Sound.
func CoarseRules() Table {
	return Table{
		{Sound, []string{"sound", "noise", "cry", "bang", "crash", "ring", "splash", "thud",
			"knock", "click", "crackle", "rumble", "roar", "buzz", "hum"}},
		{Animal, []string{"bark", "meow", "chirp", "tweet", "growl", "howl", "squeak",
			"animal", "dog", "cat", "bird", "crow", "cock"}},
		{Motion, []string{"walk", "run", "move", "roll", "spin", "shake", "wobble", "sway",
			"jump", "bounce", "tumble", "slip", "slide", "rush", "dash"}},
		{Emotion, []string{"feel", "nervous", "anxious", "excited", "happy", "sad", "angry",
			"worry", "thrill", "flutter", "pound", "heart", "irritat", "frustrat"}},
		{State, []string{"shiny", "sparkle", "glitter", "smooth", "rough", "soft", "hard",
			"wet", "dry", "sticky", "slippery", "fluffy", "crisp", "damp"}},
		{Eating, []string{"eat", "chew", "gulp", "sip", "bite", "munch", "crunch", "slurp",
			"taste", "delicious", "chewy"}},
		{Weather, []string{"rain", "wind", "thunder", "lightning", "snow", "sun", "cloud",
			"storm", "drizzle", "pour"}},
	}
}

// FineRules returns the pass-2 table. Labels are "<theme>/<subtheme>".
func FineRules() Table {
	return Table{
		{"sound/impact", []string{"bang", "crash", "thud", "slam", "knock", "hit", "strike", "clash", "bump", "thump", "smack", "slap", "punch", "pound"}},
		{"sound/water", []string{"splash", "drip", "bubble", "gurgle", "flow", "pour", "squish", "splatter", "squelch"}},
		{"sound/air", []string{"whoosh", "whistle", "blow", "gust", "breeze", "hiss", "sizzle"}},
		{"sound/mechanical", []string{"click", "beep", "buzz", "hum", "ring", "tick", "clatter", "rattle"}},
		{"sound/animal", []string{"bark", "meow", "chirp", "tweet", "growl", "howl", "squeak", "roar", "crow", "moo", "oink", "quack", "neigh", "bleat", "animal", "dog", "cat", "bird", "insect", "frog"}},
		{"sound/human", []string{"laugh", "cry", "scream", "whisper", "shout", "yell", "giggle", "chuckle", "sob", "sigh", "snore", "cough", "sneeze", "hiccup", "voice", "speak"}},

		{"motion/walk", []string{"walk", "run", "dash", "rush", "trudge", "trot", "pace", "stride", "stagger", "limp", "waddle", "strut", "stomp"}},
		{"motion/shake", []string{"shake", "wobble", "sway", "swing", "rock", "tremble", "shiver", "quiver", "vibrate", "flutter", "waver"}},
		{"motion/spin", []string{"roll", "spin", "turn", "twist", "rotate", "whirl", "tumble", "revolve"}},
		{"motion/jump", []string{"jump", "bounce", "hop", "leap", "spring", "skip"}},
		{"motion/slide", []string{"slip", "slide", "glide", "skid", "slither"}},

		{"emotion/positive", []string{"happy", "joy", "excite", "thrill", "delight", "cheerful", "elat", "bliss", "content", "satisf"}},
		{"emotion/negative", []string{"sad", "angry", "irritat", "frustrat", "annoy", "upset", "depress", "gloomy", "sulk", "grumpy", "furious"}},
		{"emotion/anxiety", []string{"nervous", "anxious", "worry", "tense", "uneasy", "restless", "fidget", "agitat", "fret", "panic"}},
		{"emotion/heartbeat", []string{"heart", "pound", "throb", "beat", "flutter", "palpitat", "pulse", "racing"}},

		{"state/light", []string{"shiny", "sparkle", "glitter", "gleam", "glow", "shimmer", "twinkle", "bright", "dazzl", "glisten", "flash", "flicker"}},
		{"state/wet", []string{"wet", "damp", "moist", "soggy", "dry", "parched", "drenched", "soaked"}},
		{"state/texture", []string{"soft", "fluffy", "fuzzy", "smooth", "hard", "rigid", "stiff", "firm", "rough", "coarse"}},
		{"state/sticky", []string{"sticky", "gooey", "slimy", "slippery", "greasy", "oily", "viscous"}},
		{"state/tidy", []string{"clean", "neat", "tidy", "messy", "dirty", "dusty", "grimy", "cluttered"}},

		{"eating/chew", []string{"chew", "munch", "crunch", "bite", "gnaw", "nibble"}},
		{"eating/drink", []string{"gulp", "sip", "slurp", "drink", "swallow", "guzzle"}},
		{"eating/texture", []string{"crisp", "chewy", "tender", "tough", "juicy", "savory", "bland"}},

		{"body/fatigue", []string{"tired", "sleepy", "drowsy", "exhaust", "weary", "fatigu", "drows", "yawn"}},
		{"body/pain", []string{"pain", "ache", "hurt", "sting", "throb", "itch", "tingle", "numb", "sore"}},
		{"body/hunger", []string{"hungry", "starv", "full", "stuff", "bloat", "appetite"}},

		{"weather/rain", []string{"rain", "drizzle", "pour", "snow", "hail", "sleet", "storm"}},
		{"weather/wind", []string{"wind", "breeze", "gust", "gale", "blow"}},
		{"weather/temperature", []string{"hot", "cold", "warm", "cool", "chill", "freeze", "swelter"}},

		{"speed/fast", []string{"quick", "fast", "rapid", "swift", "instant", "sudden", "abrupt", "hasty"}},
		{"speed/slow", []string{"slow", "gradual", "leisur", "unhurried", "sluggish"}},

		{"amount/many", []string{"many", "much", "plenty", "abundance", "swarm", "crowd", "pile", "heap", "lots"}},
		{"amount/few", []string{"few", "little", "scarce", "sparse", "rare", "thin"}},

		{"shape/size", []string{"big", "large", "huge", "small", "tiny", "enormous", "massive", "puffy", "plump", "swell"}},
		{"shape/form", []string{"round", "flat", "pointed", "sharp", "bulging", "curved"}},

		{"attitude/confident", []string{"confident", "bold", "proud", "arrogant", "boast", "strut", "swagger"}},
		{"attitude/shy", []string{"shy", "timid", "hesitant", "meek", "humble", "modest", "reserved"}},
		{"attitude/careless", []string{"lazy", "idle", "slack", "careless", "sloppy", "negligent"}},
	}
}
