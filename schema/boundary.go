package schema

import "encoding/json"

type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

type Feature struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// FeatureCollection is a GeoJSON document of region boundaries.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// WithIDProperty returns a copy of the collection where each feature's id is
// also stored as properties[name]. Coordinates are shared, not copied.
func (fc FeatureCollection) WithIDProperty(name string) FeatureCollection {
	features := make([]Feature, len(fc.Features))
	for i, f := range fc.Features {
		props := make(map[string]interface{}, len(f.Properties)+1)
		for k, v := range f.Properties {
			props[k] = v
		}
		props[name] = f.ID

		f.Properties = props
		features[i] = f
	}

	return FeatureCollection{
		Type:     fc.Type,
		Features: features,
	}
}
