// Package popgroup carries the hand-curated assignment of the reference
// panel's fine-grained populations to ten major continental-level ancestry
// groups. The table is configuration, not computation: it is constructed
// once and never mutated.
package popgroup

// DefaultMapping assigns each fine-grained population label that may appear
// as a reference panel column to one of ten major groups. Populations
// missing from this table are simply excluded from aggregation.
var DefaultMapping = map[string]string{
	// African
	"Yoruba":     "African",
	"Mende":      "African",
	"Luhya":      "African",
	"Gambian":    "African",
	"Esan":       "African",
	"Bantu":      "African",
	"San":        "African",
	"MbutiPygmy": "African",
	"BiakaPygmy": "African",

	// North African
	"Mozabite": "North African",
	"Egyptian": "North African",

	// Middle Eastern
	"Bedouin":     "Middle Eastern",
	"Druze":       "Middle Eastern",
	"Palestinian": "Middle Eastern",
	"Adygei":      "Middle Eastern",

	// European
	"British":   "European",
	"Finnish":   "European",
	"Spanish":   "European",
	"Tuscan":    "European",
	"French":    "European",
	"Russian":   "European",
	"Sardinian": "European",
	"Italian":   "European",
	"Orcadian":  "European",
	"Basque":    "European",

	// Central/South Asian
	"Punjabi":  "Central/South Asian",
	"Gujarati": "Central/South Asian",
	"Bengali":  "Central/South Asian",
	"Telugu":   "Central/South Asian",
	"Tamil":    "Central/South Asian",
	"Uygur":    "Central/South Asian",
	"Hazara":   "Central/South Asian",
	"Kalash":   "Central/South Asian",
	"Pathan":   "Central/South Asian",
	"Burusho":  "Central/South Asian",
	"Makrani":  "Central/South Asian",
	"Sindhi":   "Central/South Asian",
	"Brahui":   "Central/South Asian",
	"Balochi":  "Central/South Asian",

	// East Asian
	"HanChinese": "East Asian",
	"Japanese":   "East Asian",
	"Korean":     "East Asian",
	"Mongola":    "East Asian",
	"Daur":       "East Asian",
	"Hezhen":     "East Asian",
	"Xibo":       "East Asian",
	"Naxi":       "East Asian",
	"Yi":         "East Asian",
	"Tu":         "East Asian",
	"Tujia":      "East Asian",
	"She":        "East Asian",
	"Miao":       "East Asian",

	// Southeast Asian
	"Vietnamese": "Southeast Asian",
	"Dai":        "Southeast Asian",
	"Cambodian":  "Southeast Asian",
	"Lahu":       "Southeast Asian",

	// Siberian
	"Yakut":    "Siberian",
	"Chukchi":  "Siberian",
	"Koryak":   "Siberian",
	"Itelmen":  "Siberian",
	"Evenk":    "Siberian",
	"Nanai":    "Siberian",
	"Ulchi":    "Siberian",
	"Negidal":  "Siberian",
	"Oroqen":   "Siberian",
	"Ewen":     "Siberian",
	"Dolgans":  "Siberian",
	"Nganasan": "Siberian",
	"Enets":    "Siberian",
	"Selkup":   "Siberian",
	"Ket":      "Siberian",
	"Samoyed":  "Siberian",

	// Americas
	"Peruvian":  "Americas",
	"Colombian": "Americas",
	"Mayan":     "Americas",
	"Pima":      "Americas",
	"Karitiana": "Americas",
	"Surui":     "Americas",
	"Quechua":   "Americas",
	"Mixtec":    "Americas",
	"Zapotec":   "Americas",
	"Mixe":      "Americas",
	"Tlingit":   "Americas",
	"Inuit":     "Americas",

	// Oceanian
	"Papuan":     "Oceanian",
	"Melanesian": "Oceanian",
	"Australian": "Oceanian",
}
