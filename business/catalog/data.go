package catalog

// Static catalog of the instrumentation & calibration storefront.
// Order matters: the featured-products fallback serves the first N entries as-is.
var products = []Product{
	{
		ID:       "fluke-87v",
		Name:     "Fluke 87V Industrial Multimeter",
		Category: "multimeters",
		Features: []string{"true-RMS", "temperature measurement", "4.5 digit mode"},
		Price:    449,
	},
	{
		ID:       "fluke-376fc",
		Name:     "Fluke 376 FC Clamp Meter",
		Category: "clamp-meters",
		Features: []string{"1000A AC/DC", "iFlex compatible", "wireless logging"},
		Price:    399,
	},
	{
		ID:       "fluke-5522a",
		Name:     "Fluke 5522A Multi-Product Calibrator",
		Category: "electrical-calibrators",
		Features: []string{"sources V/A/ohm", "oscilloscope option", "pressure module support"},
		Price:    24500,
	},
	{
		ID:       "fluke-719pro",
		Name:     "Fluke 719Pro Electric Pressure Calibrator",
		Category: "pressure-calibrators",
		Features: []string{"built-in electric pump", "300 psi range", "mA loop"},
		Price:    3295,
	},
	{
		ID:       "additel-681",
		Name:     "Additel 681 Digital Pressure Gauge",
		Category: "pressure-gauges",
		Features: []string{"0.05% FS accuracy", "data logging"},
		Price:    1095,
	},
	{
		ID:       "ametek-rtc159",
		Name:     "Ametek Jofra RTC-159 Reference Temperature Calibrator",
		Category: "temperature-calibrators",
		Features: []string{"-45 to 155 C", "reference sensor input", "DLC compensation"},
		Price:    9850,
	},
	{
		ID:       "omega-kqxl",
		Name:     "Omega KQXL Thermocouple Probe",
		Category: "temperature-sensors",
		Features: []string{"type K", "inconel sheath"},
		Price:    85,
	},
	{
		ID:       "fluke-754",
		Name:     "Fluke 754 Documenting Process Calibrator",
		Category: "process-calibrators",
		Features: []string{"HART communication", "documenting", "loop power"},
		Price:    7995,
	},
	{
		ID:       "rosemount-3051",
		Name:     "Rosemount 3051 Pressure Transmitter",
		Category: "pressure-transmitters",
		Features: []string{"4-20 mA HART", "coplanar platform"},
		Price:    2150,
	},
	{
		ID:       "multimeter-cal",
		Name:     "Multimeter Calibration Service",
		Category: "calibration-services",
		Features: []string{"ISO 17025 accredited", "3 day turnaround"},
		Price:    120,
	},
	{
		ID:       "pressure-cal",
		Name:     "Pressure Gauge Calibration Service",
		Category: "calibration-services",
		Features: []string{"ISO 17025 accredited", "up to 10000 psi"},
		Price:    95,
	},
	{
		ID:       "temperature-cal",
		Name:     "Temperature Sensor Calibration Service",
		Category: "calibration-services",
		Features: []string{"ISO 17025 accredited", "-80 to 660 C"},
		Price:    140,
	},
	{
		ID:       "onsite-cal",
		Name:     "On-Site Calibration Visit",
		Category: "calibration-services",
		Features: []string{"full plant coverage", "certificates issued on the spot"},
	},
	{
		ID:       "test-leads-tl175",
		Name:     "Fluke TL175 TwistGuard Test Leads",
		Category: "accessories",
		Features: []string{"adjustable tips", "CAT IV rated"},
		Price:    45,
	},
}

// categoryComplements maps a category to categories that pair well with it.
// Symmetric in spirit, not enforced symmetric in data.
var categoryComplements = map[string][]string{
	"multimeters":            {"clamp-meters", "accessories", "calibration-services"},
	"clamp-meters":           {"multimeters", "accessories", "calibration-services"},
	"electrical-calibrators": {"multimeters", "process-calibrators", "calibration-services"},
	"pressure-calibrators":   {"pressure-gauges", "pressure-transmitters", "calibration-services"},
	"pressure-gauges":        {"pressure-calibrators", "pressure-transmitters"},
	"pressure-transmitters":  {"pressure-calibrators", "process-calibrators"},
	"temperature-calibrators": {"temperature-sensors", "calibration-services"},
	"temperature-sensors":     {"temperature-calibrators", "process-calibrators"},
	"process-calibrators":     {"pressure-transmitters", "temperature-sensors", "electrical-calibrators"},
	"calibration-services":    {"multimeters", "pressure-gauges", "temperature-sensors"},
	"accessories":             {"multimeters", "clamp-meters"},
}

// productComplements maps a product id to natural companion product ids.
var productComplements = map[string][]string{
	"fluke-87v":       {"test-leads-tl175", "multimeter-cal", "fluke-376fc"},
	"fluke-376fc":     {"fluke-87v", "test-leads-tl175"},
	"fluke-5522a":     {"fluke-87v", "fluke-754"},
	"fluke-719pro":    {"additel-681", "pressure-cal", "rosemount-3051"},
	"additel-681":     {"fluke-719pro", "pressure-cal"},
	"ametek-rtc159":   {"omega-kqxl", "temperature-cal"},
	"omega-kqxl":      {"ametek-rtc159", "temperature-cal"},
	"fluke-754":       {"rosemount-3051", "onsite-cal"},
	"rosemount-3051":  {"fluke-719pro", "fluke-754"},
	"multimeter-cal":  {"fluke-87v", "onsite-cal"},
	"pressure-cal":    {"additel-681", "onsite-cal"},
	"temperature-cal": {"omega-kqxl", "onsite-cal"},
	"test-leads-tl175": {"fluke-87v"},
}
