// Package xsd exports IRIs of xsd datatypes and facets used to build
// OWL 2 datatype restrictions.
package xsd

import "github.com/knakk/owl2"

// The XML schema built-in datatypes (xsd):
// https://www.w3.org/TR/owl2-syntax/#Built-in_Datatypes_and_Facets
var (
	// Core types:

	String  = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#string")
	Boolean = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#boolean")
	Decimal = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#decimal")
	Integer = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#integer")

	// IEEE floating-point numbers:

	Double = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#double")
	Float  = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#float")

	// Time and date:

	Date          = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#date")
	Time          = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#time")
	DateTime      = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#dateTime")
	DateTimeStamp = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#dateTimeStamp")

	// Recurring and partial dates:

	Year              = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#gYear")
	Month             = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#gMonth")
	Day               = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#gDay")
	YearMonth         = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#gYearMonth")
	Duration          = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#duration")
	YearMonthDuration = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#yearMonthDuration")
	DayTimeDuration   = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#dayTimeDuration")

	// Limited-range integer numbers:

	Byte               = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#byte")
	NonNegativeInteger = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#nonNegativeInteger")
	PositiveInteger    = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#positiveInteger")

	// Strings with restricted lexical space:

	Name         = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#Name")
	NCName       = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#NCName")
	Token        = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#token")
	Language     = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#language")
	HexBinary    = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#hexBinary")
	Base64Binary = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#base64Binary")
	AnyURI       = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#anyURI")
)

// RDFPlainLiteral and RDFLangString are the two rdf: datatypes the OWL 2
// built-in datatype map adds alongside the xsd: ones.
var (
	RDFPlainLiteral = owl2.MustNewIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#PlainLiteral")
	RDFLangString   = owl2.MustNewIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#langString")
)

// Constraining facet IRIs, usable as the Facet of an
// owl2.FacetRestriction.
var (
	FacetLength         = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#length")
	FacetMinLength      = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#minLength")
	FacetMaxLength      = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#maxLength")
	FacetPattern        = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#pattern")
	FacetMinInclusive   = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#minInclusive")
	FacetMinExclusive   = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#minExclusive")
	FacetMaxInclusive   = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#maxInclusive")
	FacetMaxExclusive   = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#maxExclusive")
	FacetTotalDigits    = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#totalDigits")
	FacetFractionDigits = owl2.MustNewIRI("http://www.w3.org/2001/XMLSchema#fractionDigits")
	FacetLangRange      = owl2.MustNewIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#langRange")
)
