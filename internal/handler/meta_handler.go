package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the static informational endpoints around /news.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "News Scraper API",
		"version": "1.0.0",
		"available_endpoints": []gin.H{
			{"path": "/", "method": "GET", "description": "This information page"},
			{
				"path":        "/news/:query",
				"method":      "GET",
				"description": "Get news articles based on search query",
				"parameters": gin.H{
					"articles": "Optional: Number of articles to fetch (default: 30, max: 1000)",
					"language": "Optional: Language code (default: 'en')",
					"country":  "Optional: Country code (default: 'IN')",
					"period":   "Optional: Time period for news (default: '1d')",
				},
				"example": "/news/technology?language=en&country=US&period=7d",
			},
			{"path": "/options", "method": "GET", "description": "Get available options for languages, countries and time periods"},
			{"path": "/health", "method": "GET", "description": "Health check endpoint"},
		},
		"usage": "Make GET requests to /news/your_search_query to retrieve news articles",
	})
}

func (h *MetaHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (h *MetaHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": supportedLanguages,
		"countries": supportedCountries,
		"periods":   supportedPeriods,
	})
}

func (h *MetaHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":               "Endpoint not found",
		"message":             "The requested URL was not found on this server. Make sure you're using a valid endpoint.",
		"available_endpoints": []string{"/", "/news/:query", "/options", "/health"},
	})
}

var supportedPeriods = map[string]string{
	"1h":  "Past hour",
	"12h": "Past 12 hours",
	"1d":  "Past day",
	"3d":  "Past 3 days",
	"7d":  "Past week",
	"1m":  "Past month",
}

var supportedLanguages = map[string]string{
	"en":      "English",
	"hi":      "Hindi",
	"te":      "Telugu",
	"ta":      "Tamil",
	"ml":      "Malayalam",
	"bn":      "Bengali",
	"mr":      "Marathi",
	"id":      "Indonesian",
	"cs":      "Czech",
	"de":      "German",
	"es-419":  "Spanish",
	"fr":      "French",
	"it":      "Italian",
	"lv":      "Latvian",
	"lt":      "Lithuanian",
	"hu":      "Hungarian",
	"nl":      "Dutch",
	"no":      "Norwegian",
	"pl":      "Polish",
	"pt-419":  "Portuguese (Brazil)",
	"pt-150":  "Portuguese (Portugal)",
	"ro":      "Romanian",
	"sk":      "Slovak",
	"sl":      "Slovenian",
	"sv":      "Swedish",
	"vi":      "Vietnamese",
	"tr":      "Turkish",
	"el":      "Greek",
	"bg":      "Bulgarian",
	"ru":      "Russian",
	"sr":      "Serbian",
	"uk":      "Ukrainian",
	"he":      "Hebrew",
	"ar":      "Arabic",
	"th":      "Thai",
	"zh-Hans": "Chinese (Simplified)",
	"zh-Hant": "Chinese (Traditional)",
	"ja":      "Japanese",
	"ko":      "Korean",
}

var supportedCountries = map[string]string{
	"AU": "Australia",
	"BW": "Botswana",
	"CA": "Canada",
	"ET": "Ethiopia",
	"GH": "Ghana",
	"IN": "India",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"KE": "Kenya",
	"LV": "Latvia",
	"MY": "Malaysia",
	"NA": "Namibia",
	"NZ": "New Zealand",
	"NG": "Nigeria",
	"PK": "Pakistan",
	"PH": "Philippines",
	"SG": "Singapore",
	"ZA": "South Africa",
	"TZ": "Tanzania",
	"UG": "Uganda",
	"GB": "United Kingdom",
	"US": "United States",
	"ZW": "Zimbabwe",
	"CZ": "Czech Republic",
	"DE": "Germany",
	"AT": "Austria",
	"CH": "Switzerland",
	"AR": "Argentina",
	"CL": "Chile",
	"CO": "Colombia",
	"CU": "Cuba",
	"MX": "Mexico",
	"PE": "Peru",
	"VE": "Venezuela",
	"BE": "Belgium",
	"FR": "France",
	"MA": "Morocco",
	"SN": "Senegal",
	"IT": "Italy",
	"LT": "Lithuania",
	"HU": "Hungary",
	"NL": "Netherlands",
	"NO": "Norway",
	"PL": "Poland",
	"BR": "Brazil",
	"PT": "Portugal",
	"RO": "Romania",
	"SK": "Slovakia",
	"SI": "Slovenia",
	"SE": "Sweden",
	"VN": "Vietnam",
	"TR": "Turkey",
	"GR": "Greece",
	"BG": "Bulgaria",
	"RU": "Russia",
	"UA": "Ukraine",
	"RS": "Serbia",
	"AE": "United Arab Emirates",
	"SA": "Saudi Arabia",
	"LB": "Lebanon",
	"EG": "Egypt",
	"BD": "Bangladesh",
	"TH": "Thailand",
	"CN": "China",
	"TW": "Taiwan",
	"HK": "Hong Kong",
	"JP": "Japan",
	"KR": "Republic of Korea",
}
