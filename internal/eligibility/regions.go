package eligibility

import "strconv"

// ServicedArea pairs a pincode prefix with the city it represents.
type ServicedArea struct {
	Prefix string `json:"prefix"`
	City   string `json:"city"`
}

// servicedAreas is the prefix allow-list of regions where trials are
// currently run. Order matters only for display.
var servicedAreas = []ServicedArea{
	{"11", "Delhi"},
	{"40", "Mumbai"},
	{"56", "Bangalore"},
	{"57", "Bangalore Extended"},
	{"60", "Chennai"},
	{"70", "Kolkata"},
	{"50", "Hyderabad"},
	{"38", "Ahmedabad"},
	{"20", "Ghaziabad/Noida"},
	{"41", "Pune"},
	{"30", "Jaipur"},
	{"22", "Lucknow"},
	{"12", "Gurgaon/Faridabad"},
	{"14", "Chandigarh"},
	{"16", "Chandigarh Extended"},
	{"15", "Punjab"},
	{"80", "Patna"},
	{"75", "Bhubaneswar"},
	{"64", "Coimbatore"},
	{"62", "Madurai"},
	{"68", "Kochi"},
}

var servicedPrefixes = func() map[string]bool {
	m := make(map[string]bool, len(servicedAreas))
	for _, area := range servicedAreas {
		m[area.Prefix] = true
	}
	return m
}()

// localityByPrefix maps leading 3 digits of a pincode to the locality name
// used in email templates.
var localityByPrefix = map[string]string{
	"110": "New Delhi",
	"400": "Mumbai",
	"560": "Bangalore",
	"600": "Chennai",
	"700": "Kolkata",
	"500": "Hyderabad",
	"380": "Ahmedabad",
	"201": "Ghaziabad",
	"411": "Pune",
	"302": "Jaipur",
}

// DefaultLocality is used when a pincode maps to no known locality.
const DefaultLocality = "your area"

// PincodeServed reports whether the pincode's 2-digit prefix is on the
// allow-list. Callers must have validated the format first.
func PincodeServed(pincode string) bool {
	if len(pincode) < 2 {
		return false
	}
	return servicedPrefixes[pincode[:2]]
}

// ServicedAreas returns the allow-list for display (admin reference page).
func ServicedAreas() []ServicedArea {
	out := make([]ServicedArea, len(servicedAreas))
	copy(out, servicedAreas)
	return out
}

// RegionForPincode resolves a pincode to the locality label used for
// email localization, falling back to DefaultLocality.
func RegionForPincode(pincode string) string {
	if len(pincode) < 3 {
		return DefaultLocality
	}
	if locality, ok := localityByPrefix[pincode[:3]]; ok {
		return locality
	}
	return DefaultLocality
}

// zipRange maps a numeric ZIP interval to a region and the research
// facility recommended to participants there. Used by the US cell-therapy
// intake, which collects 5-digit ZIP codes.
type zipRange struct {
	lo, hi   int
	region   string
	facility string
}

// Ordered and disjoint; first match wins, the final entry is the
// catch-all applied to any unmatched (or malformed) code.
var zipRanges = []zipRange{
	{2101, 2899, "Boston", "AstraZeneca Research Site - Boston, MA"},
	{10001, 11999, "New York", "AstraZeneca Research Site - New York, NY"},
	{19101, 19699, "Philadelphia", "AstraZeneca Research Site - Philadelphia, PA"},
	{20001, 20599, "Washington DC", "AstraZeneca Research Site - Washington, DC"},
	{30301, 31199, "Atlanta", "AstraZeneca Research Site - Atlanta, GA"},
	{60601, 60899, "Chicago", "AstraZeneca Research Site - Chicago, IL"},
	{77001, 77599, "Houston", "AstraZeneca Research Site - Houston, TX"},
	{90001, 92899, "Los Angeles", "AstraZeneca Research Site - Los Angeles, CA"},
	{94101, 94999, "San Francisco", "AstraZeneca Research Site - San Francisco, CA"},
	{98101, 98499, "Seattle", "AstraZeneca Research Site - Seattle, WA"},
}

const (
	fallbackZipRegion   = "your area"
	fallbackZipFacility = "our nearest participating research center"
)

// ZipRegion resolves a full 5-digit ZIP code to a (region, facility
// recommendation) pair via ordered range checks with a final catch-all.
func ZipRegion(zip string) (region, facility string) {
	code, err := strconv.Atoi(zip)
	if err != nil || len(zip) != 5 {
		return fallbackZipRegion, fallbackZipFacility
	}

	for _, r := range zipRanges {
		if code >= r.lo && code <= r.hi {
			return r.region, r.facility
		}
	}

	return fallbackZipRegion, fallbackZipFacility
}
