// Package emoji converts colon-delimited shortcodes to emoji glyphs inside
// a live input pipeline.
package emoji

import (
	"sort"
	"strings"
)

// table maps shortcode keys (without colons) to glyphs. Read-only after
// init; safe for concurrent lookups.
var table = map[string]string{
	"smile":              "😄",
	"smiley":             "😃",
	"grinning":           "😀",
	"grin":               "😁",
	"laughing":           "😆",
	"joy":                "😂",
	"rofl":               "🤣",
	"wink":               "😉",
	"blush":              "😊",
	"slightly_smiling":   "🙂",
	"upside_down":        "🙃",
	"heart_eyes":         "😍",
	"star_struck":        "🤩",
	"kissing_heart":      "😘",
	"thinking":           "🤔",
	"neutral_face":       "😐",
	"expressionless":     "😑",
	"smirk":              "😏",
	"unamused":           "😒",
	"roll_eyes":          "🙄",
	"grimacing":          "😬",
	"relieved":           "😌",
	"pensive":            "😔",
	"sleepy":             "😪",
	"sleeping":           "😴",
	"mask":               "😷",
	"sunglasses":         "😎",
	"nerd_face":          "🤓",
	"confused":           "😕",
	"worried":            "😟",
	"frowning":           "☹️",
	"open_mouth":         "😮",
	"astonished":         "😲",
	"flushed":            "😳",
	"cry":                "😢",
	"sob":                "😭",
	"scream":             "😱",
	"angry":              "😠",
	"rage":               "😡",
	"innocent":           "😇",
	"ghost":              "👻",
	"skull":              "💀",
	"robot":              "🤖",
	"wave":               "👋",
	"thumbsup":           "👍",
	"+1":                 "👍",
	"thumbsdown":         "👎",
	"-1":                 "👎",
	"clap":               "👏",
	"raised_hands":       "🙌",
	"pray":               "🙏",
	"muscle":             "💪",
	"point_right":        "👉",
	"point_left":         "👈",
	"ok_hand":            "👌",
	"v":                  "✌️",
	"crossed_fingers":    "🤞",
	"heart":              "❤️",
	"broken_heart":       "💔",
	"two_hearts":         "💕",
	"sparkling_heart":    "💖",
	"fire":               "🔥",
	"sparkles":           "✨",
	"star":               "⭐",
	"zap":                "⚡",
	"boom":               "💥",
	"tada":               "🎉",
	"confetti_ball":      "🎊",
	"balloon":            "🎈",
	"gift":               "🎁",
	"trophy":             "🏆",
	"rocket":             "🚀",
	"bulb":               "💡",
	"warning":            "⚠️",
	"question":           "❓",
	"exclamation":        "❗",
	"check":              "✅",
	"white_check_mark":   "✅",
	"x":                  "❌",
	"heavy_check_mark":   "✔️",
	"100":                "💯",
	"eyes":               "👀",
	"sun":                "☀️",
	"cloud":              "☁️",
	"rainbow":            "🌈",
	"umbrella":           "☔",
	"snowflake":          "❄️",
	"coffee":             "☕",
	"beer":               "🍺",
	"pizza":              "🍕",
	"hamburger":          "🍔",
	"cake":               "🍰",
	"apple":              "🍎",
	"banana":             "🍌",
	"dog":                "🐶",
	"cat":                "🐱",
	"mouse":              "🐭",
	"unicorn":            "🦄",
	"penguin":            "🐧",
	"bug":                "🐛",
	"bee":                "🐝",
	"turtle":             "🐢",
	"octopus":            "🐙",
	"whale":              "🐳",
	"book":               "📖",
	"books":              "📚",
	"memo":               "📝",
	"pencil":             "✏️",
	"lock":               "🔒",
	"unlock":             "🔓",
	"key":                "🔑",
	"mag":                "🔍",
	"hammer":             "🔨",
	"wrench":             "🔧",
	"gear":               "⚙️",
	"link":               "🔗",
	"calendar":           "📅",
	"clock":              "🕐",
	"hourglass":          "⌛",
	"email":              "📧",
	"phone":              "📱",
	"computer":           "💻",
	"keyboard":           "⌨️",
	"tv":                 "📺",
	"camera":             "📷",
	"musical_note":       "🎵",
	"art":                "🎨",
	"game_die":           "🎲",
	"soccer":             "⚽",
	"basketball":         "🏀",
	"checkered_flag":     "🏁",
	"house":              "🏠",
	"car":                "🚗",
	"airplane":           "✈️",
	"ship":               "🚢",
	"train":              "🚆",
	"earth_africa":       "🌍",
	"moon":               "🌙",
	"seedling":           "🌱",
	"evergreen_tree":     "🌲",
	"four_leaf_clover":   "🍀",
	"rose":               "🌹",
	"sunflower":          "🌻",
	"money_with_wings":   "💸",
	"moneybag":           "💰",
	"gem":                "💎",
	"package":            "📦",
	"inbox_tray":         "📥",
	"outbox_tray":        "📤",
	"bell":               "🔔",
	"mega":               "📣",
	"speech_balloon":     "💬",
	"thought_balloon":    "💭",
	"zzz":                "💤",
	"poop":               "💩",
	"see_no_evil":        "🙈",
	"hear_no_evil":       "🙉",
	"speak_no_evil":      "🙊",
	"man_shrugging":      "🤷‍♂️",
	"woman_shrugging":    "🤷‍♀️",
	"facepalm":           "🤦",
	"handshake":          "🤝",
	"brain":              "🧠",
	"alien":              "👽",
	"crown":              "👑",
	"dart":               "🎯",
	"construction":       "🚧",
	"no_entry":           "⛔",
	"recycle":            "♻️",
	"infinity":           "♾️",
	"heavy_plus_sign":    "➕",
	"arrow_right":        "➡️",
	"arrow_left":         "⬅️",
	"arrows_clockwise":   "🔃",
	"partly_sunny":       "⛅",
	"ocean":              "🌊",
	"volcano":            "🌋",
	"milky_way":          "🌌",
	"stars":              "🌠",
	"first_quarter_moon": "🌓",
}

// Lookup returns the glyph for a shortcode key (without the colons).
func Lookup(key string) (string, bool) {
	glyph, ok := table[key]
	return glyph, ok
}

// Len returns the number of known shortcodes.
func Len() int { return len(table) }

// Match is one shortcode candidate returned by Search.
type Match struct {
	Key   string
	Glyph string
}

// Search returns the shortcodes starting with prefix, sorted by key. An
// empty prefix matches nothing.
func Search(prefix string) []Match {
	if prefix == "" {
		return nil
	}
	var out []Match
	for key, glyph := range table {
		if strings.HasPrefix(key, prefix) {
			out = append(out, Match{Key: key, Glyph: glyph})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
