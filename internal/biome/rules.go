package biome

// The concrete rule set. Ranges, bands, and densities differ per biome;
// the dispatch mechanism is uniform (Kind tag plus this table).

var rules = map[Kind]Rule{
	Grass: {
		Kind:             Grass,
		Name:             "grass",
		HeightMin:        1.0,
		HeightMax:        3.0,
		HeightNoiseScale: 0.08,
		VarianceScale:    0.30,
		VarianceAmount:   0.04,
		Bands: []ColorBand{
			{UpTo: 0.25, Color: RGB{R: 0.33, G: 0.55, B: 0.24}},
			{UpTo: 0.55, Color: RGB{R: 0.41, G: 0.64, B: 0.27}},
			{UpTo: 0.80, Color: RGB{R: 0.50, G: 0.70, B: 0.31}},
			{UpTo: 1.00, Color: RGB{R: 0.56, G: 0.74, B: 0.38}},
		},
		Densities:       Densities{Tree: 0.08, Crop: 0.0, Grazer: 0.05},
		WaterThreshold:  0.15,
		WaterMinCluster: 6,
		WaterLevelDrop:  0.3,
		WaterColor:      RGB{R: 0.18, G: 0.41, B: 0.63},
	},
	Forest: {
		Kind:             Forest,
		Name:             "forest",
		HeightMin:        1.0,
		HeightMax:        4.0,
		HeightNoiseScale: 0.09,
		VarianceScale:    0.35,
		VarianceAmount:   0.05,
		Bands: []ColorBand{
			{UpTo: 0.30, Color: RGB{R: 0.20, G: 0.38, B: 0.16}},
			{UpTo: 0.60, Color: RGB{R: 0.24, G: 0.45, B: 0.19}},
			{UpTo: 0.85, Color: RGB{R: 0.29, G: 0.51, B: 0.22}},
			{UpTo: 1.00, Color: RGB{R: 0.35, G: 0.56, B: 0.27}},
		},
		Densities:       Densities{Tree: 0.45, Crop: 0.0, Grazer: 0.01},
		WaterThreshold:  0.12,
		WaterMinCluster: 6,
		WaterLevelDrop:  0.3,
		WaterColor:      RGB{R: 0.15, G: 0.36, B: 0.57},
	},
	Rock: {
		Kind:             Rock,
		Name:             "rock",
		HeightMin:        1.0,
		HeightMax:        7.0,
		HeightNoiseScale: 0.11,
		VarianceScale:    0.40,
		VarianceAmount:   0.03,
		Bands: []ColorBand{
			{UpTo: 0.20, Color: RGB{R: 0.42, G: 0.40, B: 0.37}},
			{UpTo: 0.50, Color: RGB{R: 0.50, G: 0.48, B: 0.46}},
			{UpTo: 0.80, Color: RGB{R: 0.58, G: 0.57, B: 0.56}},
			// Snow cap.
			{UpTo: 1.00, Color: RGB{R: 0.93, G: 0.93, B: 0.95}},
		},
		// Trees cling to the foothills only.
		Densities:       Densities{Tree: 0.05, Crop: 0.0, Grazer: 0.0},
		TreeZone:        Zone{Min: 0.01, Max: 0.35},
		WaterThreshold:  0.14,
		WaterMinCluster: 4,
		WaterLevelDrop:  0.4,
		WaterColor:      RGB{R: 0.16, G: 0.38, B: 0.60},
	},
	Clay: {
		Kind:             Clay,
		Name:             "clay",
		HeightMin:        1.0,
		HeightMax:        5.0,
		HeightNoiseScale: 0.10,
		VarianceScale:    0.25,
		VarianceAmount:   0.05,
		Bands: []ColorBand{
			{UpTo: 0.25, Color: RGB{R: 0.55, G: 0.33, B: 0.20}},
			{UpTo: 0.50, Color: RGB{R: 0.65, G: 0.40, B: 0.23}},
			{UpTo: 0.75, Color: RGB{R: 0.74, G: 0.48, B: 0.28}},
			{UpTo: 1.00, Color: RGB{R: 0.81, G: 0.57, B: 0.36}},
		},
		// Scrub survives only on the high terraces.
		Densities:       Densities{Tree: 0.03, Crop: 0.0, Grazer: 0.02},
		TreeZone:        Zone{Min: 0.80, Max: 1.0},
		WaterThreshold:  0.12,
		WaterMinCluster: 4,
		WaterLevelDrop:  0.4,
		WaterColor:      RGB{R: 0.24, G: 0.40, B: 0.52},
	},
	Desert: {
		Kind:             Desert,
		Name:             "desert",
		HeightMin:        1.0,
		HeightMax:        2.6,
		HeightNoiseScale: 0.06,
		VarianceScale:    0.20,
		VarianceAmount:   0.03,
		Bands: []ColorBand{
			{UpTo: 0.30, Color: RGB{R: 0.80, G: 0.70, B: 0.47}},
			{UpTo: 0.65, Color: RGB{R: 0.85, G: 0.76, B: 0.53}},
			{UpTo: 1.00, Color: RGB{R: 0.90, G: 0.82, B: 0.61}},
		},
		Densities:       Densities{Tree: 0.02, Crop: 0.0, Grazer: 0.01},
		WaterThreshold:  0.18,
		WaterMinCluster: 6,
		WaterLevelDrop:  0.2,
		WaterColor:      RGB{R: 0.22, G: 0.55, B: 0.60},
	},
	Wheat: {
		Kind:             Wheat,
		Name:             "wheat",
		HeightMin:        1.0,
		HeightMax:        2.0,
		HeightNoiseScale: 0.07,
		VarianceScale:    0.28,
		VarianceAmount:   0.04,
		Bands: []ColorBand{
			{UpTo: 0.35, Color: RGB{R: 0.76, G: 0.65, B: 0.30}},
			{UpTo: 0.70, Color: RGB{R: 0.82, G: 0.71, B: 0.34}},
			{UpTo: 1.00, Color: RGB{R: 0.87, G: 0.77, B: 0.40}},
		},
		Densities:       Densities{Tree: 0.02, Crop: 0.55, Grazer: 0.02},
		WaterThreshold:  0.15,
		WaterMinCluster: 6,
		WaterLevelDrop:  0.3,
		WaterColor:      RGB{R: 0.18, G: 0.41, B: 0.63},
	},
}

// kindOrder fixes the deterministic iteration order for All and for
// balanced assignment on boards.
var kindOrder = [6]Kind{Grass, Forest, Rock, Clay, Desert, Wheat}

// ByKind returns the rule for a biome kind. Unknown kinds get the
// default rule.
func ByKind(k Kind) Rule {
	if r, ok := rules[k]; ok {
		return r
	}
	return rules[Grass]
}

// ByName looks up a rule by its configured name.
func ByName(name string) (Rule, bool) {
	for _, k := range kindOrder {
		if rules[k].Name == name {
			return rules[k], true
		}
	}
	return Rule{}, false
}

// Default returns the fallback rule used when a requested biome cannot
// be resolved.
func Default() Rule {
	return rules[Grass]
}

// All returns every rule in deterministic order.
func All() []Rule {
	out := make([]Rule, 0, len(kindOrder))
	for _, k := range kindOrder {
		out = append(out, rules[k])
	}
	return out
}

// KindName returns a human-readable name for a biome kind.
func KindName(k Kind) string {
	if r, ok := rules[k]; ok {
		return r.Name
	}
	return "unknown"
}
