package jsonld

import (
	"strings"
)

// Agent is a person or organization reference. A bare Name takes the node
// type of the property it fills (Person for authors, Organization for
// publishers, Brand for brands).
type Agent interface {
	node(b Builder, defaultType string) (Document, error)
}

// Name is an agent known only by its name.
type Name string

func (n Name) node(_ Builder, defaultType string) (Document, error) {
	if strings.TrimSpace(string(n)) == "" {
		return nil, &ValidationError{Type: defaultType, Field: "name"}
	}
	return Document{"@type": defaultType, "name": string(n)}, nil
}

// Person is a structured schema.org Person.
type Person struct {
	Name     string
	URL      string
	Image    string
	JobTitle string
	SameAs   []string
}

func (p Person) node(b Builder, _ string) (Document, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, &ValidationError{Type: "Person", Field: "name"}
	}
	doc := Document{"@type": "Person", "name": p.Name}
	if err := b.setURL(doc, "url", p.URL); err != nil {
		return nil, err
	}
	if err := b.setURL(doc, "image", p.Image); err != nil {
		return nil, err
	}
	setString(doc, "jobTitle", p.JobTitle)
	setStrings(doc, "sameAs", p.SameAs)
	return doc, nil
}

// Org is a structured schema.org Organization reference.
type Org struct {
	Name   string
	URL    string
	Logo   string
	SameAs []string
}

func (o Org) node(b Builder, _ string) (Document, error) {
	if strings.TrimSpace(o.Name) == "" {
		return nil, &ValidationError{Type: "Organization", Field: "name"}
	}
	doc := Document{"@type": "Organization", "name": o.Name}
	if err := b.setURL(doc, "url", o.URL); err != nil {
		return nil, err
	}
	if o.Logo != "" {
		logo, err := b.image(Image{URL: o.Logo})
		if err != nil {
			return nil, err
		}
		doc["logo"] = logo
	}
	setStrings(doc, "sameAs", o.SameAs)
	return doc, nil
}

// Image is an ImageObject. Width and Height are emitted only when positive.
type Image struct {
	URL     string
	Width   int
	Height  int
	Caption string
}

func (b Builder) image(img Image) (Document, error) {
	abs, err := b.urls.Absolute(img.URL)
	if err != nil {
		return nil, err
	}
	doc := Document{"@type": "ImageObject", "url": abs}
	if img.Width > 0 {
		doc["width"] = img.Width
	}
	if img.Height > 0 {
		doc["height"] = img.Height
	}
	setString(doc, "caption", img.Caption)
	return doc, nil
}

// PostalAddress is a schema.org PostalAddress.
type PostalAddress struct {
	Street     string
	Locality   string
	Region     string
	PostalCode string
	Country    string
}

func (a PostalAddress) empty() bool {
	return a == PostalAddress{}
}

func (a PostalAddress) node() Document {
	doc := Document{"@type": "PostalAddress"}
	setString(doc, "streetAddress", a.Street)
	setString(doc, "addressLocality", a.Locality)
	setString(doc, "addressRegion", a.Region)
	setString(doc, "postalCode", a.PostalCode)
	setString(doc, "addressCountry", a.Country)
	return doc
}

func (b Builder) setAgent(doc Document, key string, a Agent, defaultType string) error {
	if a == nil {
		return nil
	}
	n, err := a.node(b, defaultType)
	if err != nil {
		return err
	}
	doc[key] = n
	return nil
}

func (b Builder) setURL(doc Document, key, raw string) error {
	if raw == "" {
		return nil
	}
	abs, err := b.urls.Absolute(raw)
	if err != nil {
		return err
	}
	doc[key] = abs
	return nil
}

func (b Builder) setURLs(doc Document, key string, raws []string) error {
	if len(raws) == 0 {
		return nil
	}
	out := make([]string, 0, len(raws))
	for _, r := range raws {
		abs, err := b.urls.Absolute(r)
		if err != nil {
			return err
		}
		out = append(out, abs)
	}
	doc[key] = out
	return nil
}

func setString(doc Document, key, v string) {
	if v != "" {
		doc[key] = v
	}
}

func setStrings(doc Document, key string, vs []string) {
	if len(vs) > 0 {
		doc[key] = vs
	}
}

// schemaEnum expands short enumeration members such as "InStock" to their
// full schema.org URL.
func schemaEnum(v string) string {
	if v == "" || strings.Contains(v, "://") {
		return v
	}
	return Context + "/" + v
}
