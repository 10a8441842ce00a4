// Package catalog holds the static vehicle reference data: selectable makes and models,
// base prices and make-tier fallbacks.
package catalog

import (
	"sort"
	"strings"
)

// DefaultBasePrice is used when neither the model nor the make has a listed price.
const DefaultBasePrice = 35000

// SelectableYears is how many model years, counting back from the current one, are
// offered for selection.
const SelectableYears = 15

var modelsByMake = map[string][]string{
	"Acura":         {"Integra", "TLX", "RDX", "MDX", "ZDX"},
	"Alfa Romeo":    {"Giulia", "Stelvio", "Tonale"},
	"Audi":          {"A3", "A4", "A5", "A6", "A7", "A8", "Q3", "Q4 e-tron", "Q5", "Q7", "Q8", "e-tron GT", "RS e-tron GT"},
	"BMW":           {"2 Series", "3 Series", "4 Series", "5 Series", "7 Series", "8 Series", "X1", "X2", "X3", "X4", "X5", "X6", "X7", "XM", "i4", "i5", "i7", "iX"},
	"Buick":         {"Encore GX", "Envision", "Enclave", "Envista"},
	"Cadillac":      {"CT4", "CT5", "XT4", "XT5", "XT6", "Escalade", "LYRIQ", "CELESTIQ"},
	"Chevrolet":     {"Spark", "Malibu", "Camaro", "Corvette", "Trax", "Trailblazer", "Equinox", "Blazer", "Traverse", "Tahoe", "Suburban", "Colorado", "Silverado 1500", "Silverado 2500HD", "Silverado 3500HD", "Bolt EV", "Bolt EUV"},
	"Chrysler":      {"300", "Pacifica", "Voyager"},
	"Dodge":         {"Charger", "Challenger", "Durango", "Hornet"},
	"Fiat":          {"500X", "500e"},
	"Ford":          {"Mustang", "EcoSport", "Escape", "Bronco Sport", "Bronco", "Edge", "Explorer", "Expedition", "Maverick", "Ranger", "F-150", "Super Duty", "Mustang Mach-E", "F-150 Lightning", "Transit"},
	"Genesis":       {"G70", "G80", "G90", "GV60", "GV70", "GV80"},
	"GMC":           {"Terrain", "Acadia", "Yukon", "Yukon XL", "Canyon", "Sierra 1500", "Sierra 2500HD", "Sierra 3500HD", "Hummer EV"},
	"Honda":         {"Civic", "Accord", "HR-V", "CR-V", "Passport", "Pilot", "Odyssey", "Ridgeline", "Prologue"},
	"Hyundai":       {"Elantra", "Sonata", "Venue", "Kona", "Tucson", "Santa Cruz", "Santa Fe", "Palisade", "Ioniq 5", "Ioniq 6", "Nexo"},
	"Infiniti":      {"Q50", "QX50", "QX55", "QX60", "QX80"},
	"Jaguar":        {"XF", "F-TYPE", "E-PACE", "F-PACE", "I-PACE"},
	"Jeep":          {"Renegade", "Compass", "Cherokee", "Grand Cherokee", "Wrangler", "Gladiator", "Wagoneer", "Grand Wagoneer"},
	"Kia":           {"Rio", "Forte", "K5", "Stinger", "Soul", "Seltos", "Sportage", "Sorento", "Telluride", "Carnival", "Niro", "EV6", "EV9"},
	"Land Rover":    {"Range Rover", "Range Rover Sport", "Range Rover Velar", "Range Rover Evoque", "Discovery", "Discovery Sport", "Defender"},
	"Lexus":         {"IS", "ES", "LS", "RC", "LC", "UX", "NX", "RX", "RZ", "GX", "LX", "TX"},
	"Lincoln":       {"Corsair", "Nautilus", "Aviator", "Navigator"},
	"Lucid":         {"Air", "Gravity"},
	"Maserati":      {"Ghibli", "Quattroporte", "MC20", "Grecale", "Levante"},
	"Mazda":         {"Mazda3", "CX-30", "CX-5", "CX-50", "CX-90", "MX-5 Miata"},
	"Mercedes-Benz": {"A-Class", "C-Class", "E-Class", "S-Class", "CLA", "CLS", "GLA", "GLB", "GLC", "GLE", "GLS", "G-Class", "EQB", "EQE", "EQS"},
	"Mini":          {"Hardtop 2 Door", "Hardtop 4 Door", "Convertible", "Clubman", "Countryman"},
	"Mitsubishi":    {"Mirage", "Mirage G4", "Eclipse Cross", "Outlander Sport", "Outlander"},
	"Nissan":        {"Versa", "Sentra", "Altima", "Maxima", "LEAF", "Kicks", "Rogue", "Murano", "Pathfinder", "Armada", "Frontier", "Titan", "Z", "ARIYA"},
	"Polestar":      {"Polestar 2", "Polestar 3"},
	"Porsche":       {"718 Boxster", "718 Cayman", "911", "Taycan", "Panamera", "Macan", "Cayenne"},
	"Ram":           {"1500", "1500 Classic", "2500", "3500", "ProMaster"},
	"Rivian":        {"R1T", "R1S"},
	"Subaru":        {"Impreza", "Legacy", "Crosstrek", "Forester", "Outback", "Ascent", "BRZ", "WRX", "Solterra"},
	"Tesla":         {"Model 3", "Model Y", "Model S", "Model X", "Cybertruck"},
	"Toyota":        {"Corolla", "Prius", "Camry", "Crown", "Mirai", "GR86", "GR Supra", "Tacoma", "Tundra", "4Runner", "Highlander", "Grand Highlander", "RAV4", "Venza", "Sequoia", "Land Cruiser", "Sienna", "bZ4X"},
	"Volkswagen":    {"Jetta", "Golf GTI", "Golf R", "Arteon", "Taos", "Tiguan", "Atlas", "Atlas Cross Sport", "ID.4", "ID. Buzz"},
	"Volvo":         {"S60", "S90", "V60 Cross Country", "V90 Cross Country", "XC40", "XC60", "XC90", "C40 Recharge", "EX30", "EX90"},
}

// modelBasePrices is keyed by model name alone; a model name is looked up regardless of make.
var modelBasePrices = map[string]float64{
	"4Runner": 46000, "Tacoma": 38000, "Tundra": 52000, "Camry": 29000, "Corolla": 24000,
	"RAV4": 31000, "Highlander": 42000, "Sequoia": 65000, "Land Cruiser": 57000, "Prius": 29000,
	"Supra": 56000, "Sienna": 39000,

	"Civic": 26000, "Accord": 29500, "CR-V": 32000, "Pilot": 42000, "Passport": 43000, "Odyssey": 40000,

	"F-150": 55000, "Ranger": 35000, "Maverick": 26000, "Mustang": 35000, "Explorer": 41000,
	"Bronco": 44000, "Bronco Sport": 32000, "Expedition": 60000,

	"Silverado 1500": 56000, "Colorado": 34000, "Tahoe": 62000, "Suburban": 65000, "Corvette": 75000,

	"Wrangler": 38000, "Grand Cherokee": 44000, "Gladiator": 41000, "Wagoneer": 65000,

	"3 Series": 48000, "5 Series": 62000, "X5": 68000, "X3": 50000,
	"C-Class": 49000, "E-Class": 65000, "GLE": 66000, "G-Class": 145000,
	"911": 125000, "Macan": 65000, "Cayenne": 85000,
	"Escalade": 89000,

	"Model 3": 41000, "Model Y": 45000, "Model S": 76000, "Model X": 81000, "Cybertruck": 82000,
	"R1T": 75000, "R1S": 79000,
}

// makeTierDefaults has no entry for Fiat, Jaguar, Mini or Polestar; their models resolve to
// DefaultBasePrice unless listed in modelBasePrices.
var makeTierDefaults = map[string]float64{
	"Porsche": 90000, "Land Rover": 80000, "Maserati": 95000, "Rivian": 80000, "Lucid": 80000,
	"Mercedes-Benz": 60000, "BMW": 58000, "Audi": 55000, "Lexus": 52000, "Cadillac": 60000,
	"Volvo": 55000, "Lincoln": 60000, "Genesis": 55000,
	"Tesla": 45000, "Acura": 48000, "Infiniti": 50000, "Alfa Romeo": 50000,
	"Ford": 40000, "Chevrolet": 40000, "Toyota": 38000, "Honda": 36000, "Jeep": 42000,
	"Ram": 50000, "GMC": 52000,
	"Subaru": 32000, "Mazda": 33000, "Volkswagen": 34000, "Kia": 30000, "Hyundai": 30000,
	"Nissan": 30000, "Mitsubishi": 28000, "Dodge": 40000, "Chrysler": 40000, "Buick": 35000,
}

var sortedMakes = func() []string {
	makes := make([]string, 0, len(modelsByMake))
	for m := range modelsByMake {
		makes = append(makes, m)
	}
	sort.Strings(makes)
	return makes
}()

// PriceSource says which table a base price came from.
type PriceSource string

const (
	SourceModel    PriceSource = "model"
	SourceMakeTier PriceSource = "make_tier"
	SourceDefault  PriceSource = "default"
)

// Makes returns every selectable make in lexical order. The slice is a copy.
func Makes() []string {
	out := make([]string, len(sortedMakes))
	copy(out, sortedMakes)
	return out
}

// Models returns the models offered for a make, in catalog order.
func Models(makeName string) ([]string, bool) {
	models, ok := modelsByMake[makeName]
	if !ok {
		return nil, false
	}
	out := make([]string, len(models))
	copy(out, models)
	return out, true
}

func IsKnownMake(makeName string) bool {
	_, ok := modelsByMake[makeName]
	return ok
}

func IsKnownModel(makeName, model string) bool {
	for _, m := range modelsByMake[makeName] {
		if m == model {
			return true
		}
	}
	return false
}

// FindMake resolves a make case-insensitively to its catalog spelling.
func FindMake(makeName string) (string, bool) {
	for _, m := range sortedMakes {
		if strings.EqualFold(m, makeName) {
			return m, true
		}
	}
	return "", false
}

// Years lists the selectable model years, newest first.
func Years(currentYear int) []int {
	years := make([]int, SelectableYears)
	for i := range years {
		years[i] = currentYear - i
	}
	return years
}

// BasePrice resolves the reference price for a vehicle: model table, then make-tier
// default, then DefaultBasePrice. It never fails.
func BasePrice(makeName, model string) (float64, PriceSource) {
	if p, ok := modelBasePrices[model]; ok {
		return p, SourceModel
	}
	if p, ok := makeTierDefaults[makeName]; ok {
		return p, SourceMakeTier
	}
	return DefaultBasePrice, SourceDefault
}
