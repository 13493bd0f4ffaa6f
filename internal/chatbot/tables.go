package chatbot

// responseSet holds the canned answers for one language. PriceDetail is a
// template with {commodity}, {market}, and {price} placeholders.
type responseSet struct {
	Price       string
	Weather     string
	Recommend   string
	Greeting    string
	Default     string
	PriceDetail string
}

var responsesByLanguage = map[Language]responseSet{
	LangEnglish: {
		Price:       "The predicted price is showing an upward trend due to market demand.",
		Weather:     "The current weather forecast is favorable for this crop.",
		Recommend:   "Based on your conditions, Wheat is a good option.",
		Greeting:    "Hello! How can I assist you with AgroBert today?",
		Default:     "I can help with price predictions, weather impact, and crop recommendations.",
		PriceDetail: "The current simulated price for {commodity} in {market} is around ₹{price}/quintal. The trend is positive.",
	},
	LangHindi: {
		Price:       "बाजार की मांग के कारण अनुमानित कीमत में तेजी का रुख दिख रहा है।",
		Weather:     "वर्तमान मौसम का पूर्वानुमान इस फसल के लिए अनुकूल है।",
		Recommend:   "आपकी परिस्थितियों के आधार पर, गेहूं एक अच्छा विकल्प है।",
		Greeting:    "नमस्ते! मैं आज एग्रोबर्ट में आपकी कैसे सहायता कर सकता हूँ?",
		Default:     "मैं मूल्य भविष्यवाणी, मौसम के प्रभाव और फसल की सिफारिशों में मदद कर सकता हूँ।",
		PriceDetail: "{market} में {commodity} का वर्तमान सिम्युलेटेड मूल्य लगभग ₹{price}/क्विंटल है। प्रवृत्ति सकारात्मक है।",
	},
	LangKannada: {
		Price:       "ಮಾರುಕಟ್ಟೆಯ ಬೇಡಿಕೆಯಿಂದಾಗಿ ಊಹಿಸಲಾದ ಬೆಲೆಯು ಏರುಮುಖವಾಗಿದೆ.",
		Weather:     "ಪ್ರಸ್ತುತ ಹವಾಮಾನ ಮುನ್ಸೂಚನೆಯು ಈ ಬೆಳೆಗೆ ಅನುಕೂಲಕರವಾಗಿದೆ.",
		Recommend:   "ನಿಮ್ಮ ಪರಿಸ್ಥಿತಿಗಳ ಆಧಾರದ ಮೇಲೆ, ಗೋಧಿ ಉತ್ತಮ ಆಯ್ಕೆಯಾಗಿದೆ.",
		Greeting:    "ನಮಸ್ಕಾರ! ಇಂದು ನಾನು ನಿಮಗೆ ಆಗ್ರೋಬರ್ಟ್‌ನಲ್ಲಿ ಹೇಗೆ ಸಹಾಯ ಮಾಡಬಹುದು?",
		Default:     "ನಾನು ಬೆಲೆ ಮುನ್ಸೂಚನೆಗಳು, ಹವಾಮಾನದ ಪ್ರಭಾವ ಮತ್ತು ಬೆಳೆ ಶಿಫಾರಸುಗಳೊಂದಿಗೆ ಸಹಾಯ ಮಾಡಬಹುದು.",
		PriceDetail: "{market} ನಲ್ಲಿ {commodity} ಗಾಗಿ ಪ್ರಸ್ತುತ ಸಿಮ್ಯುಲೇಟೆಡ್ ಬೆಲೆ ಸುಮಾರು ₹{price}/ಕ್ವಿಂಟಾಲ್ ಆಗಿದೆ. ಪ್ರವೃತ್ತಿ ಧನಾತ್ಮಕವಾಗಿದೆ.",
	},
}

func responsesFor(lang Language) responseSet {
	if set, ok := responsesByLanguage[lang]; ok {
		return set
	}
	return responsesByLanguage[LangEnglish]
}

// commodityEntry maps a canonical commodity name to its keywords. The slice
// order matters: the first entry whose keyword appears in the query wins, so
// this must stay a slice rather than a map. Keyword positions are English,
// Hindi, Kannada.
type commodityEntry struct {
	Name     string
	Keywords []string
}

var commodityTable = []commodityEntry{
	{"wheat", []string{"wheat", "गेहूं", "ಗೋಧಿ"}},
	{"rice", []string{"rice", "चावल", "ಅಕ್ಕಿ"}},
	{"cotton", []string{"cotton", "कपास", "ಹತ್ತಿ"}},
	{"onion", []string{"onion", "प्याज", "ಈರುಳ್ಳಿ"}},
	{"potato", []string{"potato", "आलू", "ಆಲೂಗಡ್ಡೆ"}},
	{"tomato", []string{"tomato", "टमाटर", "ಟೊಮೆಟೊ"}},
}

var marketKeywords = []string{
	"delhi", "mumbai", "bengaluru", "kolkata", "chennai", "pune", "jaipur", "davanagere",
	"lucknow", "kanpur", "nagpur", "indore", "thane", "bhopal", "patna", "shivamogga",
	"ludhiana", "agra", "nashik", "vadodara", "meerut", "rajkot", "varanasi", "hubali",
	"amritsar", "allahabad", "jodhpur", "kochi", "mysuru", "hyderabad", "bhubaneswar",
}

var (
	greetingKeywords  = []string{"hello", "hi", "ನಮಸ್ಕಾರ", "नमस्ते"}
	priceKeywords     = []string{"price", "ಬೆಲೆ", "दाम"}
	weatherKeywords   = []string{"weather", "ಹವಾಮಾನ", "मौसम"}
	recommendKeywords = []string{"recommend", "ಶಿಫಾರಸು", "सुझाव"}
)

var newsByLanguage = map[Language][]string{
	LangEnglish: {
		"Government announces new MSP for Kharif crops.",
		"Monsoon forecast predicts above-average rainfall.",
		"Global wheat prices surge due to supply chain disruptions.",
	},
	LangHindi: {
		"सरकार ने खरीफ फसलों के लिए नए एमएसपी की घोषणा की।",
		"मानसून के पूर्वानुमान में औसत से अधिक बारिश की भविष्यवाणी की गई है।",
		"आपूर्ति श्रृंखला में व्यवधान के कारण वैश्विक गेहूं की कीमतों में वृद्धि हुई है।",
	},
	LangKannada: {
		"ಸರ್ಕಾರವು ಖಾರಿಫ್ ಬೆಳೆಗಳಿಗೆ ಹೊಸ ಎಂಎಸ್‌ಪಿ ಘೋಷಿಸಿದೆ.",
		"ಮಾನ್ಸೂನ್ ಮುನ್ಸೂಚನೆಯು ಸರಾಸರಿಗಿಂತ ಹೆಚ್ಚಿನ ಮಳೆಯನ್ನು ಊಹಿಸುತ್ತದೆ.",
		"ಪೂರೈಕೆ ಸರಪಳಿಯಲ್ಲಿನ ಅಡೆತಡೆಗಳಿಂದಾಗಿ ಜಾಗತಿಕ ಗೋಧಿ ಬೆಲೆಗಳು ಏರಿಕೆಯಾಗಿವೆ.",
	},
}

// News returns the headlines for the requested language, falling back to
// English for unknown codes.
func News(lang Language) []string {
	if items, ok := newsByLanguage[lang]; ok {
		return append([]string(nil), items...)
	}
	return append([]string(nil), newsByLanguage[LangEnglish]...)
}
