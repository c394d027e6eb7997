package domain

// IconName is a symbolic key into the fixed icon catalog.
type IconName string

const (
	IconBook          IconName = "Book"
	IconBriefcase     IconName = "Briefcase"
	IconSettings      IconName = "Settings"
	IconHeart         IconName = "Heart"
	IconHome          IconName = "Home"
	IconActivity      IconName = "Activity"
	IconGamepad       IconName = "Gamepad"
	IconLightbulb     IconName = "Lightbulb"
	IconPen           IconName = "Pen"
	IconLaptop        IconName = "Laptop"
	IconBarChart      IconName = "BarChart"
	IconPhone         IconName = "Phone"
	IconMail          IconName = "Mail"
	IconCalendar      IconName = "Calendar"
	IconPlane         IconName = "Plane"
	IconCar           IconName = "Car"
	IconUtensils      IconName = "Utensils"
	IconShoppingCart  IconName = "ShoppingCart"
	IconMoon          IconName = "Moon"
	IconPartyPopper   IconName = "PartyPopper"
	IconMusic         IconName = "Music"
	IconPalette       IconName = "Palette"
	IconPuzzle        IconName = "Puzzle"
	IconFlaskConical  IconName = "FlaskConical"
	IconTrendingDown  IconName = "TrendingDown"
	IconMessageSquare IconName = "MessageSquare"
	IconHelpCircle    IconName = "HelpCircle"
	IconCheckCircle   IconName = "CheckCircle"
)

// iconGlyphs maps each catalog name to its terminal glyph.
var iconGlyphs = map[IconName]string{
	IconBook:          "📖",
	IconBriefcase:     "💼",
	IconSettings:      "⚙",
	IconHeart:         "♥",
	IconHome:          "🏠",
	IconActivity:      "📈",
	IconGamepad:       "🎮",
	IconLightbulb:     "💡",
	IconPen:           "✎",
	IconLaptop:        "💻",
	IconBarChart:      "📊",
	IconPhone:         "☎",
	IconMail:          "✉",
	IconCalendar:      "📅",
	IconPlane:         "✈",
	IconCar:           "🚗",
	IconUtensils:      "🍴",
	IconShoppingCart:  "🛒",
	IconMoon:          "☾",
	IconPartyPopper:   "🎉",
	IconMusic:         "♫",
	IconPalette:       "🎨",
	IconPuzzle:        "🧩",
	IconFlaskConical:  "⚗",
	IconTrendingDown:  "📉",
	IconMessageSquare: "💬",
	IconHelpCircle:    "?",
	IconCheckCircle:   "✓",
}

// AvailableIcons lists the catalog in picker order.
var AvailableIcons = []IconName{
	IconBook, IconBriefcase, IconSettings, IconHeart, IconHome,
	IconActivity, IconGamepad, IconLightbulb, IconPen, IconLaptop,
	IconBarChart, IconPhone, IconMail, IconCalendar, IconPlane,
	IconCar, IconUtensils, IconShoppingCart, IconMoon, IconPartyPopper,
	IconMusic, IconPalette, IconPuzzle, IconFlaskConical, IconTrendingDown,
	IconMessageSquare, IconHelpCircle, IconCheckCircle,
}

// Valid reports whether n names an icon from the catalog.
func (n IconName) Valid() bool {
	_, ok := iconGlyphs[n]
	return ok
}

// Glyph returns the renderable glyph for n, or "" for unknown names.
func (n IconName) Glyph() string {
	return iconGlyphs[n]
}
