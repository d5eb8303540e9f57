package jsonld

import (
	"strings"
)

// Offers is either a single Offer or an OfferList. A single Offer is emitted
// as one object, an OfferList always as an array.
type Offers interface {
	offersValue(b Builder) (any, error)
}

// Offer is one way to buy a product. Availability and ItemCondition accept
// short forms such as "InStock" or "NewCondition".
type Offer struct {
	Price           string
	PriceCurrency   string
	Availability    string
	ItemCondition   string
	URL             string
	PriceValidUntil string
	Seller          Agent
}

func (o Offer) offersValue(b Builder) (any, error) {
	return b.offer(o)
}

// OfferList is a list of offers.
type OfferList []Offer

func (l OfferList) offersValue(b Builder) (any, error) {
	out := make([]Document, 0, len(l))
	for _, o := range l {
		n, err := b.offer(o)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (b Builder) offer(o Offer) (Document, error) {
	doc := Document{"@type": "Offer"}
	setString(doc, "price", o.Price)
	setString(doc, "priceCurrency", o.PriceCurrency)
	setString(doc, "availability", schemaEnum(o.Availability))
	setString(doc, "itemCondition", schemaEnum(o.ItemCondition))
	if err := b.setURL(doc, "url", o.URL); err != nil {
		return nil, err
	}
	setString(doc, "priceValidUntil", o.PriceValidUntil)
	if err := b.setAgent(doc, "seller", o.Seller, "Organization"); err != nil {
		return nil, err
	}
	return doc, nil
}

// Rating is a single review score. Best and Worst are omitted when zero.
type Rating struct {
	Value float64
	Best  float64
	Worst float64
}

func (r Rating) node() Document {
	doc := Document{"@type": "Rating", "ratingValue": r.Value}
	if r.Best != 0 {
		doc["bestRating"] = r.Best
	}
	if r.Worst != 0 {
		doc["worstRating"] = r.Worst
	}
	return doc
}

// AggregateRating summarizes many ratings.
type AggregateRating struct {
	Value       float64
	RatingCount int
	ReviewCount int
	Best        float64
	Worst       float64
}

func (r AggregateRating) node() Document {
	doc := Document{"@type": "AggregateRating", "ratingValue": r.Value}
	if r.RatingCount > 0 {
		doc["ratingCount"] = r.RatingCount
	}
	if r.ReviewCount > 0 {
		doc["reviewCount"] = r.ReviewCount
	}
	if r.Best != 0 {
		doc["bestRating"] = r.Best
	}
	if r.Worst != 0 {
		doc["worstRating"] = r.Worst
	}
	return doc
}

// ProductProps describes a product page.
type ProductProps struct {
	Name            string
	Description     string
	URL             string
	Images          []string
	SKU             string
	GTIN            string
	MPN             string
	Brand           Agent
	Offers          Offers
	AggregateRating *AggregateRating
	Reviews         []ReviewProps
}

// Product builds a Product document.
func (b Builder) Product(p ProductProps) (Document, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, &ValidationError{Type: "Product", Field: "name"}
	}
	doc := Document{"@type": "Product", "name": p.Name}
	setString(doc, "description", p.Description)
	if err := b.setURL(doc, "url", p.URL); err != nil {
		return nil, err
	}
	if err := b.setURLs(doc, "image", p.Images); err != nil {
		return nil, err
	}
	setString(doc, "sku", p.SKU)
	setString(doc, "gtin", p.GTIN)
	setString(doc, "mpn", p.MPN)
	if err := b.setAgent(doc, "brand", p.Brand, "Brand"); err != nil {
		return nil, err
	}
	if p.Offers != nil {
		offers, err := p.Offers.offersValue(b)
		if err != nil {
			return nil, err
		}
		doc["offers"] = offers
	}
	if p.AggregateRating != nil {
		doc["aggregateRating"] = p.AggregateRating.node()
	}
	if len(p.Reviews) > 0 {
		reviews := make([]Document, 0, len(p.Reviews))
		for _, r := range p.Reviews {
			n, err := b.review(r, false)
			if err != nil {
				return nil, err
			}
			reviews = append(reviews, n)
		}
		doc["review"] = reviews
	}
	return WithContext(doc), nil
}

// Thing names the subject of a review. Type defaults to "Thing".
type Thing struct {
	Type string
	Name string
	URL  string
}

// ReviewProps describes a review. ItemReviewed is ignored when the review is
// nested inside a Product.
type ReviewProps struct {
	Name          string
	ItemReviewed  Thing
	Author        Agent
	Body          string
	Rating        *Rating
	DatePublished string
	Publisher     Agent
}

// Review builds a standalone Review document.
func (b Builder) Review(p ReviewProps) (Document, error) {
	doc, err := b.review(p, true)
	if err != nil {
		return nil, err
	}
	return WithContext(doc), nil
}

func (b Builder) review(p ReviewProps, standalone bool) (Document, error) {
	if p.Author == nil {
		return nil, &ValidationError{Type: "Review", Field: "author"}
	}
	doc := Document{"@type": "Review"}
	if standalone {
		if strings.TrimSpace(p.ItemReviewed.Name) == "" {
			return nil, &ValidationError{Type: "Review", Field: "itemReviewed"}
		}
		kind := p.ItemReviewed.Type
		if kind == "" {
			kind = "Thing"
		}
		item := Document{"@type": kind, "name": p.ItemReviewed.Name}
		if err := b.setURL(item, "url", p.ItemReviewed.URL); err != nil {
			return nil, err
		}
		doc["itemReviewed"] = item
	}
	if err := b.setAgent(doc, "author", p.Author, "Person"); err != nil {
		return nil, err
	}
	setString(doc, "name", p.Name)
	setString(doc, "reviewBody", p.Body)
	if p.Rating != nil {
		doc["reviewRating"] = p.Rating.node()
	}
	setString(doc, "datePublished", p.DatePublished)
	if err := b.setAgent(doc, "publisher", p.Publisher, "Organization"); err != nil {
		return nil, err
	}
	return doc, nil
}
