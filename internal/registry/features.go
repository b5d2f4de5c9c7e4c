package registry

// BasicFeatures is the column order of RevisionBasic models. It must match
// the order used at training time; Assemble checks it against the
// artifact's feature_names when the artifact records them.
var BasicFeatures = []string{"N", "P", "K", "temperature", "humidity", "ph", "rainfall"}

// SoilFeatures is the column order of RevisionSoil models. Soil_Type holds
// the soil encoder's class id.
var SoilFeatures = []string{"Soil_Type", "Soil_pH", "Temperature", "Humidity", "Wind_Speed", "N", "P", "K", "Annual_Rainfall"}

// Features returns a copy of the column order for rev, or nil if rev is unknown.
func Features(rev Revision) []string {
	switch rev {
	case RevisionBasic:
		return append([]string(nil), BasicFeatures...)
	case RevisionSoil:
		return append([]string(nil), SoilFeatures...)
	default:
		return nil
	}
}
