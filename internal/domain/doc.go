// Package domain models temperature measurements harvested from the TRC
// metals and alloys property database.
//
// # Data Source
//
// The collector queries the property database search API and flattens each
// reported data value into one JSON record on the Kafka source topic:
//
//	{"citation_id":"4711","data_set_id":"88","compounds":["Cu","Ni"],
//	 "property":"TM","value":"1356.2","uncertainty":"0.5","units":"K",
//	 "year":"1952","temperature_scale":""}
//
// Numeric fields are carried as the literal text the database returned so the
// number of reported decimal places survives (see Precision below).
//
// # Conventions
//
// Property symbols follow the database's variable codes. Only temperature
// properties are normalized here:
//
//	T    temperature              TL   lower temperature
//	TU   upper temperature        TB   boiling temperature
//	TC   critical temperature     TE   eutectic temperature
//	TM   monotectic temperature   TBN  normal boiling temperature
//	TMN  normal melting temp.     TT   phase transition temperature
//	TPT  triple point temp.       TR   radiance temperature
//	TX   reference temperature    TUC  upper consolute temperature
//
// Missing values:
//
//	An empty, "NaN", or unparsable value is treated as missing and normalizes
//	to the -999.0 sentinel. An empty uncertainty is zero.
//
// Year and scale:
//
//	Publication year and temperature scale belong to the citation, not the data
//	set. When a record arrives with neither, the citation is looked up through
//	a [CitationResolver] and the event is tagged with where its context came
//	from ("record", "lookup", "failed").
//
// Precision:
//
//	Normalized values carry a "precision" field: one more decimal place than
//	the kelvin input had. Values are not rounded in the pipeline.
//
// Validation:
//
//	Normalized temperatures must lie strictly between 0 and 14000 K. Events
//	failing the check are still emitted with valid=false and a reason.
//
// # ID Generation
//
// Event IDs are deterministic SHA-256 hashes of
// citation|data set|property|value|units|year|scale, prefixed with the
// lower-cased property symbol. Replaying the same record yields the same ID,
// which the SQL sink relies on for ON CONFLICT DO NOTHING. See [generateID].
package domain
