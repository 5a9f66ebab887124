package trc

import (
	"strings"

	"github.com/couchcryptid/thermo-data-etl/internal/domain"
)

// unitless is the unit reported for ratio and fraction representations.
const unitless = "1"

// Flatten turns a search response into one raw record per reported value of
// the given property. Values of other variables are ignored, as are null
// values. Records carry the citation's year and declared scale so the ETL
// can normalize them without a lookup.
func Flatten(resp *SearchResponse, property string) []domain.RawMeasurementRecord {
	if resp == nil {
		return nil
	}
	property = strings.ToUpper(strings.TrimSpace(property))

	var out []domain.RawMeasurementRecord
	for _, entry := range resp.Data {
		cit := entry.Citation
		for _, sys := range entry.Systems {
			for _, ds := range sys.DataSets {
				for _, v := range ds.Variables {
					if !strings.EqualFold(v.VariableName, property) {
						continue
					}
					units := v.Units
					if v.Unitless() {
						units = unitless
					}
					for _, col := range ds.Data {
						if col.VariableID != v.VariableID {
							continue
						}
						for _, dv := range col.DataValues {
							if dv.Value == "" {
								continue
							}
							out = append(out, domain.RawMeasurementRecord{
								CitationID:       cit.CitationID.String(),
								DataSetID:        ds.DataSetID.String(),
								Compounds:        sys.CompoundIDs,
								Property:         property,
								Value:            dv.Value.String(),
								Uncertainty:      dv.Uncertainty.String(),
								Units:            units,
								Year:             cit.Year.String(),
								TemperatureScale: cit.TemperatureScale,
							})
						}
					}
				}
			}
		}
	}
	return out
}
