package bot

type shelfLifePrediction struct {
	Days       int
	Status     string
	Confidence int
}

type foodInfo struct {
	Storage   string
	ShelfLife string
	Tips      string
}

type rescueLocation struct {
	Name     string
	Distance string
	Accepts  string
}

var predictions = map[string]shelfLifePrediction{
	"apple":  {Days: 7, Status: "Good", Confidence: 85},
	"banana": {Days: 3, Status: "Warning", Confidence: 78},
	"tomato": {Days: 5, Status: "Good", Confidence: 82},
	"milk":   {Days: 2, Status: "Critical", Confidence: 90},
	"bread":  {Days: 4, Status: "Warning", Confidence: 75},
}

const (
	unknownStatus     = "Unknown"
	unknownConfidence = 70
	maxUnknownDays    = 7
)

var foodInfos = map[string]foodInfo{
	"apple": {
		Storage:   "Refrigerate at 32-35°F",
		ShelfLife: "2-4 weeks",
		Tips:      "Keep away from other fruits, check for bruises",
	},
	"banana": {
		Storage:   "Room temperature, then refrigerate when ripe",
		ShelfLife: "3-7 days",
		Tips:      "Separate from other fruits, peel and freeze when overripe",
	},
	"tomato": {
		Storage:   "Room temperature, refrigerate when cut",
		ShelfLife: "1-2 weeks",
		Tips:      "Store stem-side down, avoid direct sunlight",
	},
	"milk": {
		Storage:   "Refrigerate at 40°F or below",
		ShelfLife: "5-7 days after opening",
		Tips:      "Keep in coldest part of fridge, check expiration date",
	},
	"bread": {
		Storage:   "Room temperature or freeze",
		ShelfLife: "5-7 days",
		Tips:      "Store in bread box or freeze for longer shelf life",
	},
}

var genericFoodInfo = foodInfo{
	Storage:   "Check packaging for instructions",
	ShelfLife: "Varies by item",
	Tips:      "Store in cool, dry place",
}

var rescueLocations = []rescueLocation{
	{Name: "Food Bank Central", Distance: "0.5 miles", Accepts: "All food types"},
	{Name: "Community Kitchen", Distance: "1.2 miles", Accepts: "Fresh produce"},
	{Name: "Local Shelter", Distance: "0.8 miles", Accepts: "Non-perishables"},
	{Name: "Animal Shelter", Distance: "1.5 miles", Accepts: "Pet food"},
}
