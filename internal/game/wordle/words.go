package wordle

// Words holds one solution per level, level 1 first. Lengths grow from 5
// letters to 11.
var Words = [TotalLevels]string{
	// Levels 1-20
	"APPLE",
	"WATER",
	"HOUSE",
	"MUSIC",
	"LIGHT",
	"GREEN",
	"STONE",
	"SMILE",
	"PLANT",
	"CLOUD",
	"RIVER",
	"BREAD",
	"HEART",
	"STARS",
	"NIGHT",
	"WORLD",
	"PEACE",
	"LUCKY",
	"MAGIC",
	"DREAM",
	// Levels 21-40
	"PLANET",
	"BRIDGE",
	"WINTER",
	"GARDEN",
	"FAMILY",
	"ORBITR",
	"GALAXY",
	"SUMMER",
	"ORCHID",
	"SHADOW",
	"STREAM",
	"AUTUMN",
	"BOTTLE",
	"CANDLE",
	"FOREST",
	"RUBBER",
	"COFFEE",
	"POETRY",
	"CIRCLE",
	"TRAVEL",
	// Levels 41-60
	"MYSTERY",
	"VIOLETS",
	"HARBOR",
	"CHEESE",
	"HARVEST",
	"CANYONS",
	"SPIRIT",
	"JOURNEY",
	"BALANCE",
	"NETWORK",
	"PORTAL",
	"TEXTURE",
	"MIRACLE",
	"CAPTAIN",
	"ELEMENT",
	"SUNRISE",
	"SWEETER",
	"CAPSTONE",
	"SERPENT",
	"LIBERTY",
	// Levels 61-80
	"HORIZON",
	"TREMBLES",
	"FORTUNE",
	"SHADOWS",
	"ODYSSEYS",
	"MONOLITH",
	"PENDULUM",
	"FIREWALL",
	"STRANGER",
	"GARDENS",
	"CINEMATIC",
	"MOUNTAIN",
	"ECLIPSES",
	"MEANDERS",
	"SAPPHIRE",
	"CRESCENT",
	"WANDERING",
	"BLUEBIRD",
	"STARLIGHT",
	"MOONLIT",
	// Levels 81-90
	"ADVENTUR",
	"NOTEBOOKS",
	"PSYCHOTIC",
	"LABYRINTH",
	"BREATHEIN",
	"SKYSCRAPE",
	"ASTRONOMY",
	"WILDERNES",
	"UNDERGROW",
	"EVERYTHING",
	// Levels 91-100
	"IMPERVIOUS",
	"TRANQUILITY",
	"CHARCOALS",
	"INTRICACY",
	"METAMORPH",
	"CONSEQUENCE",
	"POLARIZING",
	"UNFORGIVEN",
	"SPECTRUMS",
	"HALLOWEENS",
}
