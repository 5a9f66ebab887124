package trc

import (
	"encoding/json"
	"strings"
)

// SearchRequest is the body of a POST to the search endpoint. Zero-valued
// fields are omitted.
type SearchRequest struct {
	// ExcludeAll restricts results to systems made only of RequiredCompounds.
	ExcludeAll         bool
	RequiredCompounds  []string
	StartYear          int
	EndYear            int
	PropertySearchCode string
	CitationID         string
}

// searchBody is the wire form. Booleans travel as the strings "True"/"False".
type searchBody struct {
	ExcludeAll         string   `json:"exclude_all,omitempty"`
	RequiredCompounds  []string `json:"required_compounds,omitempty"`
	StartYear          int      `json:"start_year,omitempty"`
	EndYear            int      `json:"end_year,omitempty"`
	PropertySearchCode string   `json:"property_search_code,omitempty"`
	CitationID         string   `json:"citation_id,omitempty"`
}

func (r SearchRequest) MarshalJSON() ([]byte, error) {
	body := searchBody{
		RequiredCompounds:  r.RequiredCompounds,
		StartYear:          r.StartYear,
		EndYear:            r.EndYear,
		PropertySearchCode: r.PropertySearchCode,
		CitationID:         r.CitationID,
	}
	if r.ExcludeAll {
		body.ExcludeAll = "True"
	}
	return json.Marshal(body)
}

// SearchResponse is the decoded search result. Numbers are kept as
// json.Number so reported digits survive unchanged.
type SearchResponse struct {
	Data []Entry `json:"TRC_data"`
}

// Entry is one publication and the systems it reports on.
type Entry struct {
	Citation CitationInfo `json:"citation"`
	Systems  []System     `json:"systems"`
}

type CitationInfo struct {
	CitationID       json.Number `json:"citation_id"`
	Year             json.Number `json:"year"`
	TemperatureScale string      `json:"temperature_scale,omitempty"`
}

// System is a material composition with its data sets.
type System struct {
	CompoundIDs []string  `json:"compound_ids"`
	DataSets    []DataSet `json:"data_sets"`
}

type DataSet struct {
	DataSetID json.Number  `json:"data_set_id"`
	Variables []Variable   `json:"variables"`
	Data      []DataColumn `json:"data"`
}

type Variable struct {
	VariableID     json.Number `json:"variable_id"`
	VariableName   string      `json:"variable_name"`
	Units          string      `json:"units"`
	Representation string      `json:"representation"`
}

// Unitless reports whether the variable is a ratio or fraction, whose
// published units do not apply.
func (v Variable) Unitless() bool {
	return strings.HasPrefix(v.Representation, "R") || strings.HasPrefix(v.Representation, "X")
}

// DataColumn holds the values of one variable within a data set.
type DataColumn struct {
	VariableID json.Number `json:"variable_id"`
	DataValues []DataValue `json:"data_values"`
}

// DataValue is a single reported value. A null value decodes to "".
type DataValue struct {
	Value       json.Number `json:"value"`
	Uncertainty json.Number `json:"uncertainty,omitempty"`
}
