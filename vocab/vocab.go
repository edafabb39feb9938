// Package vocab contains constants of the housing-market ontology vocabulary.
package vocab

import (
	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

func init() {
	voc.RegisterPrefix(PropPrefix, PropNS)
	voc.RegisterPrefix(LocPrefix, LocNS)
	voc.RegisterPrefix(TimePrefix, TimeNS)
	voc.RegisterPrefix(EconPrefix, EconNS)
	voc.RegisterPrefix(HousePrefix, HouseNS)
}

const (
	PropNS     = `http://example.org/property#`
	PropPrefix = `prop:`

	LocNS     = `http://example.org/location#`
	LocPrefix = `loc:`

	TimeNS     = `http://example.org/time#`
	TimePrefix = `time:`

	EconNS     = `http://example.org/economic#`
	EconPrefix = `econ:`

	HouseNS     = `http://example.org/housing#`
	HousePrefix = `house:`
)

// Classes.
const (
	Property          = PropNS + "Property"
	Location          = LocNS + "Location"
	TimePoint         = TimeNS + "TimePoint"
	EconomicIndicator = EconNS + "EconomicIndicator"

	NationalEconomicIndicator = EconNS + "NationalEconomicIndicator"
	LocalEconomicIndicator    = EconNS + "LocalEconomicIndicator"
	HousingMarketIndicator    = HouseNS + "HousingMarketIndicator"

	Year         = TimeNS + "Year"
	YearMonth    = TimeNS + "YearMonth"
	FullDate     = TimeNS + "FullDate"
	AcademicYear = TimeNS + "AcademicYear"
)

// Object properties.
const (
	HasLocation          = PropNS + "hasLocation"
	SoldAt               = PropNS + "soldAt"
	HasProperty          = LocNS + "hasProperty"
	HasEconomicIndicator = LocNS + "hasEconomicIndicator"
	MeasuredAt           = EconNS + "measuredAt"
)

// Data properties.
const (
	Price               = PropNS + "price"
	PropertyType        = PropNS + "propertyType"
	NewBuild            = PropNS + "newBuild"
	OldNew              = PropNS + "oldNew"
	Tenure              = PropNS + "tenure"
	TransactionID       = PropNS + "transactionId"
	TransactionStatus   = PropNS + "transactionStatus"
	TransactionCategory = PropNS + "transactionCategory"
	Address1            = PropNS + "address1"
	Address2            = PropNS + "address2"
	Street              = PropNS + "street"
	LocationName        = PropNS + "locationName"
	Postcode            = PropNS + "postcode"

	Name = LocNS + "name"

	Date          = TimeNS + "date"
	YearValue     = TimeNS + "year"
	YearMonthVal  = TimeNS + "yearMonth"
	StartYear     = TimeNS + "startYear"
	EndYear       = TimeNS + "endYear"

	Rate             = EconNS + "rate"
	RateType         = EconNS + "rateType"
	UnemploymentRate = EconNS + "unemploymentRate"

	AdditionalDwellings = HouseNS + "additionalDwellings"
	SchoolCount         = HouseNS + "schoolCount"
)

// Full forms of the standard vocabulary terms used when emitting triples.
const (
	RDFType    = rdf.NS + "type"
	RDFSLabel  = rdfs.NS + "label"
	SubClassOf = rdfs.NS + "subClassOf"
	Domain     = rdfs.NS + "domain"
	Range      = rdfs.NS + "range"
)
