package mapping

import (
	"github.com/housegraph/housegraph/dates"
	"github.com/housegraph/housegraph/vocab"
)

// Default returns the built-in registry for the six UK housing and economy
// sources. It always validates; a panic here means the built-in tables are
// broken.
func Default() *Registry {
	r, err := New(
		pricePaid,
		additionalDwellings,
		boeRate,
		mortgageRate,
		schoolCount,
		unemployment,
	)
	if err != nil {
		panic(err)
	}
	return r
}

var pricePaid = &Source{
	Name:          "price_paid",
	Class:         vocab.Property,
	URITemplate:   vocab.PropNS + "Property/{id}",
	NaturalKey:    "transaction_id",
	DateField:     "date",
	LocationField: "location_name",
	DateFormats:   []DateFormat{dates.FormatISODate},
	Fields: map[string]FieldRule{
		"transaction_id": {Property: vocab.TransactionID},
		"price":          {Property: vocab.Price, Datatype: XSDInteger},
		"date":           {Property: vocab.Date, Datatype: XSDDateTime},
		"postcode":       {Property: vocab.Postcode},
		"property_type": {
			Property:    vocab.PropertyType,
			ValidValues: []string{"d", "s", "t", "f", "o"},
			ValueMap: map[string]string{
				"d": "detached",
				"s": "semi-detached",
				"t": "terraced",
				"f": "flats/maisonettes",
				"o": "other",
			},
		},
		"old_new": {
			Property:    vocab.OldNew,
			ValidValues: []string{"y", "n"},
			ValueMap: map[string]string{
				"y": "newly built",
				"n": "established residential building",
			},
		},
		"freehold_leasehold": {
			Property:    vocab.Tenure,
			ValidValues: []string{"f", "l"},
			ValueMap:    map[string]string{"f": "freehold", "l": "leasehold"},
		},
		"transaction_category": {
			Property:    vocab.TransactionCategory,
			ValidValues: []string{"a", "b"},
			ValueMap: map[string]string{
				"a": "standard transaction",
				"b": "non-standard transaction",
			},
		},
		// Only additions and changes are valid transaction records.
		"transaction_status": {
			Property:    vocab.TransactionStatus,
			ValidValues: []string{"a", "c"},
		},
		"address_1": {Property: vocab.Address1},
		"address_2": {Property: vocab.Address2},
		"location_name": {
			Property:      vocab.HasLocation,
			IsRelation:    true,
			RelationClass: vocab.Location,
		},
	},
}

var additionalDwellings = &Source{
	Name:          "additional_dwellings",
	Class:         vocab.HousingMarketIndicator,
	URITemplate:   vocab.HouseNS + "HousingMarketIndicator/{id}",
	DateField:     "date",
	LocationField: "location_name",
	DateFormats:   []DateFormat{dates.FormatYear},
	Fields: map[string]FieldRule{
		"location_name":        {Property: vocab.HasLocation},
		"date":                 {Property: vocab.Date, Datatype: XSDGYear},
		"additional_dwellings": {Property: vocab.AdditionalDwellings, Datatype: XSDDecimal},
	},
}

var boeRate = &Source{
	Name:        "boe_rate",
	Class:       vocab.NationalEconomicIndicator,
	URITemplate: vocab.EconNS + "NationalEconomicIndicator/{id}",
	DateField:   "date",
	DateFormats: []DateFormat{dates.FormatDayMonthYear},
	Fields: map[string]FieldRule{
		"date": {Property: vocab.Date, Datatype: XSDDate},
		"rate": {Property: vocab.Rate, Datatype: XSDDecimal},
	},
}

var mortgageRate = &Source{
	Name:        "mortgage_rate",
	Class:       vocab.LocalEconomicIndicator,
	URITemplate: vocab.EconNS + "LocalEconomicIndicator/{id}",
	DateField:   "date",
	DateFormats: []DateFormat{dates.FormatISOYearMonth},
	Fields: map[string]FieldRule{
		"rate_type": {Property: vocab.RateType},
		"date":      {Property: vocab.Date, Datatype: XSDGYearMonth},
		"rate":      {Property: vocab.Rate, Datatype: XSDDecimal},
	},
}

var schoolCount = &Source{
	Name:          "school_count",
	Class:         vocab.HousingMarketIndicator,
	URITemplate:   vocab.HouseNS + "HousingMarketIndicator/{id}",
	DateField:     "date",
	LocationField: "location_name",
	DateFormats:   []DateFormat{dates.FormatAcademicYear},
	Fields: map[string]FieldRule{
		"date":          {Property: vocab.Date, Datatype: XSDGYear},
		"location_name": {Property: vocab.HasLocation},
		"school_count":  {Property: vocab.SchoolCount, Datatype: XSDInteger},
	},
}

var unemployment = &Source{
	Name:        "unemployment",
	Class:       vocab.NationalEconomicIndicator,
	URITemplate: vocab.EconNS + "NationalEconomicIndicator/{id}",
	DateField:   "date",
	DateFormats: []DateFormat{
		dates.FormatYear,
		dates.FormatMonthName,
		dates.FormatQuarter,
	},
	Fields: map[string]FieldRule{
		"date":              {Property: vocab.Date, Datatype: XSDGYear},
		"unemployment_rate": {Property: vocab.UnemploymentRate, Datatype: XSDDecimal},
	},
}
