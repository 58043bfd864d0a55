package services

// UnitOptions lists the measurement units the item form offers.
var UnitOptions = []Unit{
	UnitInch,
	UnitFoot,
	UnitCentimeter,
	UnitMeter,
}

// CategoryOptions lists the selectable item categories.
var CategoryOptions = []Category{
	CategoryPrint,
	CategoryMaterials,
	CategoryLabor,
	CategoryTransport,
	CategoryServices,
	CategoryOther,
}

// ModeOptions lists the quoting modes.
var ModeOptions = []Mode{
	ModeGeneral,
	ModePrint,
	ModeCombined,
}

// MarginOptions are the margin presets offered next to the margin field.
var MarginOptions = []int{20, 30, 40, 50, 60}

// CommissionOptions are the commission presets.
var CommissionOptions = []int{0, 5, 10, 15}
