package jsonld

import (
	"strings"
)

// GeoCoordinates is a latitude/longitude pair.
type GeoCoordinates struct {
	Latitude  float64
	Longitude float64
}

// OpeningHours covers one or more days that share the same hours, so
// "Mon-Fri 09:00-17:00" is a single entry.
type OpeningHours struct {
	Days   []string // "Monday", "Tuesday", ...
	Opens  string   // "09:00"
	Closes string   // "17:00"
}

// LocalBusinessProps describes a physical business. Type selects a
// LocalBusiness subtype such as "Restaurant"; it defaults to LocalBusiness.
type LocalBusinessProps struct {
	Type         string
	Name         string
	Description  string
	URL          string
	Image        []string
	Telephone    string
	Email        string
	PriceRange   string
	Address      PostalAddress
	Geo          *GeoCoordinates
	OpeningHours []OpeningHours
	SameAs       []string
}

// LocalBusiness builds a LocalBusiness document. Geo and OpeningHours are
// independent and omitted when unset.
func (b Builder) LocalBusiness(p LocalBusinessProps) (Document, error) {
	kind := p.Type
	if kind == "" {
		kind = "LocalBusiness"
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, &ValidationError{Type: kind, Field: "name"}
	}
	doc := Document{"@type": kind, "name": p.Name}
	setString(doc, "description", p.Description)
	if err := b.setURL(doc, "url", p.URL); err != nil {
		return nil, err
	}
	if err := b.setURLs(doc, "image", p.Image); err != nil {
		return nil, err
	}
	setString(doc, "telephone", p.Telephone)
	setString(doc, "email", p.Email)
	setString(doc, "priceRange", p.PriceRange)
	if !p.Address.empty() {
		doc["address"] = p.Address.node()
	}
	if p.Geo != nil {
		doc["geo"] = Document{
			"@type":     "GeoCoordinates",
			"latitude":  p.Geo.Latitude,
			"longitude": p.Geo.Longitude,
		}
	}
	if len(p.OpeningHours) > 0 {
		specs := make([]Document, 0, len(p.OpeningHours))
		for _, h := range p.OpeningHours {
			if len(h.Days) == 0 {
				return nil, &ValidationError{Type: "OpeningHoursSpecification", Field: "dayOfWeek"}
			}
			spec := Document{"@type": "OpeningHoursSpecification", "dayOfWeek": h.Days}
			setString(spec, "opens", h.Opens)
			setString(spec, "closes", h.Closes)
			specs = append(specs, spec)
		}
		doc["openingHoursSpecification"] = specs
	}
	setStrings(doc, "sameAs", p.SameAs)
	return WithContext(doc), nil
}
