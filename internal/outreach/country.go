package outreach

// dialCodes maps lowercase ISO 3166-1 alpha-2 country codes to phone
// dial codes.
var dialCodes = map[string]string{
	"ie": "353", // Ireland
	"gb": "44",  // United Kingdom
	"us": "1",   // United States
	"ca": "1",   // Canada
	"au": "61",  // Australia
	"de": "49",  // Germany
	"fr": "33",  // France
	"es": "34",  // Spain
	"it": "39",  // Italy
	"nl": "31",  // Netherlands
	"be": "32",  // Belgium
	"ch": "41",  // Switzerland
	"at": "43",  // Austria
	"se": "46",  // Sweden
	"no": "47",  // Norway
	"dk": "45",  // Denmark
	"fi": "358", // Finland
	"pl": "48",  // Poland
	"cz": "420", // Czech Republic
	"pt": "351", // Portugal
	"in": "91",  // India
	"cn": "86",  // China
	"jp": "81",  // Japan
	"kr": "82",  // South Korea
	"br": "55",  // Brazil
	"mx": "52",  // Mexico
	"ar": "54",  // Argentina
	"za": "27",  // South Africa
	"eg": "20",  // Egypt
	"ng": "234", // Nigeria
	"ke": "254", // Kenya
	"ae": "971", // UAE
	"sa": "966", // Saudi Arabia
	"tr": "90",  // Turkey
	"ru": "7",   // Russia
	"ua": "380", // Ukraine
	"gr": "30",  // Greece
	"bg": "359", // Bulgaria
	"ro": "40",  // Romania
	"hu": "36",  // Hungary
	"hr": "385", // Croatia
	"si": "386", // Slovenia
	"sk": "421", // Slovakia
	"lt": "370", // Lithuania
	"lv": "371", // Latvia
	"ee": "372", // Estonia
}

// DialCode returns the phone dial code for a lowercase ISO country
// code, defaulting to "1".
func DialCode(countryCode string) string {
	if code, ok := dialCodes[countryCode]; ok {
		return code
	}
	return "1"
}
